package service

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olegiv/aisite/internal/media"
	"github.com/olegiv/aisite/internal/model"
)

var samplePDF = []byte("%PDF-1.4\n1 0 obj\n<<>>\nendobj\ntrailer\n%%EOF\n")

func validInquiry() model.ContactInquiryInput {
	return model.ContactInquiryInput{
		Name:    "Jane Doe",
		Email:   " Jane@Example.com ",
		Company: "Acme",
		Message: "We would like a demo.",
	}
}

func TestSubmitContactInquiry(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	inq, err := f.intake.SubmitContactInquiry(ctx, validInquiry(), nil, "203.0.113.9")
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", inq.Email)
	assert.Empty(t, inq.Country)
	assert.False(t, inq.IsRead)

	// Duplicates are kept.
	_, err = f.intake.SubmitContactInquiry(ctx, validInquiry(), nil, "203.0.113.9")
	require.NoError(t, err)
	all, err := f.admin.ListInquiries(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestSubmitContactInquiry_CountryInference(t *testing.T) {
	f := newFixture(t)
	f.intake.countries = fixedCountry("DE")
	ctx := context.Background()

	inq, err := f.intake.SubmitContactInquiry(ctx, validInquiry(), nil, "198.51.100.1")
	require.NoError(t, err)
	assert.Equal(t, "DE", inq.Country)

	in := validInquiry()
	in.Country = "NP"
	inq, err = f.intake.SubmitContactInquiry(ctx, in, nil, "198.51.100.1")
	require.NoError(t, err)
	assert.Equal(t, "NP", inq.Country)
}

func TestSubmitContactInquiry_Attachment(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	inq, err := f.intake.SubmitContactInquiry(ctx, validInquiry(), &media.Upload{
		Filename: "brief.txt",
		Content:  strings.NewReader("project brief"),
	}, "")
	require.NoError(t, err)
	require.NotEmpty(t, inq.Attachment)
	assert.True(t, strings.HasPrefix(inq.Attachment, "contact_attachments/"))

	file, err := f.media.Open(inq.Attachment)
	require.NoError(t, err)
	defer func() { _ = file.Close() }()
	body, err := io.ReadAll(file)
	require.NoError(t, err)
	assert.Equal(t, "project brief", string(body))

	_, err = f.intake.SubmitContactInquiry(ctx, validInquiry(), &media.Upload{
		Filename: "run.exe",
		Content:  strings.NewReader("MZ"),
	}, "")
	var ve *model.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.NotEmpty(t, ve.Field("attachment"))

	_, err = f.intake.SubmitContactInquiry(ctx, validInquiry(), &media.Upload{
		Filename: "huge.txt",
		Content:  bytes.NewReader(make([]byte, 2<<20)),
	}, "")
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Field("attachment"), "1MB")
}

func TestSubmitContactInquiry_Validation(t *testing.T) {
	f := newFixture(t)

	in := validInquiry()
	in.Email = "nope"
	in.Country = "XX"
	_, err := f.intake.SubmitContactInquiry(context.Background(), in, nil, "")
	var ve *model.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.NotEmpty(t, ve.Field("email"))
	assert.NotEmpty(t, ve.Field("country"))
}

func TestSubmitFeedback(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tests := []struct {
		rating  int
		wantErr bool
	}{
		{0, true},
		{1, false},
		{5, false},
		{6, true},
	}
	for _, tt := range tests {
		fb, err := f.intake.SubmitFeedback(ctx, model.FeedbackInput{
			Name: "Sam", Email: "sam@example.com", Rating: tt.rating, Comment: "Great",
		})
		if tt.wantErr {
			var ve *model.ValidationError
			require.ErrorAs(t, err, &ve, "rating %d", tt.rating)
			assert.NotEmpty(t, ve.Field("rating"))
			continue
		}
		require.NoError(t, err)
		assert.False(t, fb.IsApproved)
	}

	testimonials, err := f.content.ListTestimonials(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, testimonials)
}

func TestSubscribeNewsletter_Idempotent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first, err := f.intake.SubscribeNewsletter(ctx, model.NewsletterInput{Email: "Reader@Example.com", Name: "Reader"})
	require.NoError(t, err)
	assert.True(t, first.Created)
	assert.Equal(t, "reader@example.com", first.Subscriber.Email)

	again, err := f.intake.SubscribeNewsletter(ctx, model.NewsletterInput{Email: "READER@example.COM", Name: "Other"})
	require.NoError(t, err)
	assert.False(t, again.Created)
	assert.Equal(t, first.Subscriber.ID, again.Subscriber.ID)
	assert.Equal(t, "Reader", again.Subscriber.Name)

	subs, err := f.admin.ListSubscribers(ctx)
	require.NoError(t, err)
	assert.Len(t, subs, 1)
}

func TestSubscribeNewsletter_DeactivatedStaysDeactivated(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	res, err := f.intake.SubscribeNewsletter(ctx, model.NewsletterInput{Email: "quiet@example.com"})
	require.NoError(t, err)
	_, err = f.admin.SetSubscriberActive(ctx, f.editorActor, res.Subscriber.ID, false)
	require.NoError(t, err)

	again, err := f.intake.SubscribeNewsletter(ctx, model.NewsletterInput{Email: "quiet@example.com"})
	require.NoError(t, err)
	assert.False(t, again.Created)
	assert.False(t, again.Subscriber.IsActive)
}

func TestSubscribeNewsletter_InvalidEmail(t *testing.T) {
	f := newFixture(t)

	_, err := f.intake.SubscribeNewsletter(context.Background(), model.NewsletterInput{Email: "not-an-email"})
	assert.True(t, model.IsValidationError(err))
}

func TestRegisterForEvent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ev, err := f.admin.CreateEvent(ctx, f.adminActor, validEvent("Summit", "2026-11-20", ""))
	require.NoError(t, err)

	in := model.RegistrationInput{Name: "Kim", Email: "kim@example.com", Company: "Initech"}
	first, err := f.intake.RegisterForEvent(ctx, ev.ID, in)
	require.NoError(t, err)
	assert.True(t, first.Created)
	assert.True(t, first.Registration.IsConfirmed)
	assert.False(t, first.Registration.Attended)

	in.Email = "KIM@example.com"
	in.Company = "Changed"
	again, err := f.intake.RegisterForEvent(ctx, ev.ID, in)
	require.NoError(t, err)
	assert.False(t, again.Created)
	assert.Equal(t, first.Registration.ID, again.Registration.ID)
	assert.Equal(t, "Initech", again.Registration.Company)

	_, err = f.intake.RegisterForEvent(ctx, ev.ID+100, in)
	assert.ErrorIs(t, err, model.ErrNotFound)

	regs, err := f.admin.ListRegistrations(ctx, ev.ID)
	require.NoError(t, err)
	assert.Len(t, regs, 1)
}

func TestDownloadArticle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	saved, err := f.admin.Upload(ctx, f.editorActor, media.KindArticlePDF, media.Upload{
		Filename: "report.pdf",
		Content:  bytes.NewReader(samplePDF),
	})
	require.NoError(t, err)

	in := validArticle("Market Outlook", model.StatusPublished)
	in.PDFFile = saved.Path
	a, err := f.admin.CreateArticle(ctx, f.editorActor, in)
	require.NoError(t, err)

	for want := int64(1); want <= 2; want++ {
		file, err := f.intake.DownloadArticle(ctx, a.ID)
		require.NoError(t, err)
		assert.Equal(t, "Market Outlook", file.Title)
		body, err := io.ReadAll(file.File)
		require.NoError(t, err)
		_ = file.File.Close()
		assert.Equal(t, samplePDF, body)

		got, err := f.admin.GetArticle(ctx, a.ID)
		require.NoError(t, err)
		assert.Equal(t, want, got.DownloadCount)
	}
}

func TestDownloadArticle_NotFound(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	noPDF, err := f.admin.CreateArticle(ctx, f.adminActor, validArticle("No file", model.StatusPublished))
	require.NoError(t, err)
	_, err = f.intake.DownloadArticle(ctx, noPDF.ID)
	assert.ErrorIs(t, err, model.ErrNotFound)

	in := validArticle("Gone", model.StatusPublished)
	in.PDFFile = "articles/pdfs/missing.pdf"
	gone, err := f.admin.CreateArticle(ctx, f.adminActor, in)
	require.NoError(t, err)
	_, err = f.intake.DownloadArticle(ctx, gone.ID)
	assert.ErrorIs(t, err, model.ErrNotFound)
	got, err := f.admin.GetArticle(ctx, gone.ID)
	require.NoError(t, err)
	assert.Zero(t, got.DownloadCount)

	_, err = f.intake.DownloadArticle(ctx, 9999)
	assert.ErrorIs(t, err, model.ErrNotFound)
}
