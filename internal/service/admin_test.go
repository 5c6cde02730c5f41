package service

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/olegiv/aisite/internal/model"
)

func TestAdmin_CapabilityMatrix(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		actor   Actor
		wantErr error
	}{
		{"admin", f.adminActor, nil},
		{"editor", f.editorActor, nil},
		{"viewer", f.viewerActor, model.ErrUnauthorized},
		{"unknown role", Actor{UserID: f.viewerActor.UserID, Role: "guest"}, model.ErrUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sol, err := f.admin.CreateSolution(ctx, tt.actor, validSolution("Solution "+tt.name))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.NoError(t, f.admin.DeleteSolution(ctx, tt.actor, sol.ID))
		})
	}

	_, err := f.admin.CreateUser(ctx, f.editorActor, model.UserInput{
		Username: "sneaky", Password: "long-enough-password", Role: model.RoleAdmin, IsActive: true,
	})
	assert.ErrorIs(t, err, model.ErrUnauthorized)
	_, err = f.admin.ListUsers(ctx, f.editorActor)
	assert.ErrorIs(t, err, model.ErrUnauthorized)
}

func TestAdmin_UnauthorizedWritesNothing(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.admin.CreateBlogPost(ctx, f.viewerActor, validBlogPost("Nope", model.StatusPublished))
	require.ErrorIs(t, err, model.ErrUnauthorized)

	posts, err := f.admin.ListBlogPosts(ctx)
	require.NoError(t, err)
	assert.Empty(t, posts)
	log, err := f.activity.List(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, log.Items)
}

func TestAdmin_ActivityRecorded(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ev, err := f.admin.CreateEvent(ctx, f.editorActor, validEvent("Workshop", "2026-11-05", ""))
	require.NoError(t, err)
	in := validEvent("Workshop II", "2026-11-06", "")
	_, err = f.admin.UpdateEvent(ctx, f.editorActor, ev.ID, in)
	require.NoError(t, err)
	require.NoError(t, f.admin.DeleteEvent(ctx, f.editorActor, ev.ID))

	page, err := f.activity.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, page.Items, 3)

	actions := map[string]bool{}
	for _, e := range page.Items {
		actions[e.Action] = true
		assert.Equal(t, string(model.EntityEvent), e.ContentType)
		assert.Equal(t, ev.ID, e.ObjectID)
		assert.Equal(t, f.editorActor.Username, e.Username)
		assert.Equal(t, f.editorActor.IP, e.IpAddress)
		assert.True(t, e.UserID.Valid)
	}
	assert.Equal(t, map[string]bool{model.ActionCreate: true, model.ActionUpdate: true, model.ActionDelete: true}, actions)

	_, err = f.admin.GetEvent(ctx, ev.ID)
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestAdmin_ValidationFailureRollsBack(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	in := validSolution("")
	_, err := f.admin.CreateSolution(ctx, f.adminActor, in)
	var ve *model.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.NotEmpty(t, ve.Field("title"))

	log, err := f.activity.List(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, log.Items)
}

func TestAdmin_MissingObject(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.admin.UpdateSolution(ctx, f.adminActor, 404, validSolution("Ghost"))
	assert.ErrorIs(t, err, model.ErrNotFound)
	assert.ErrorIs(t, f.admin.DeleteBlogPost(ctx, f.adminActor, 404), model.ErrNotFound)
	assert.ErrorIs(t, f.admin.DeleteRegistration(ctx, f.adminActor, 404), model.ErrNotFound)
}

func TestAdmin_BlogSlugs(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	long := validBlogPost("The Future of Artificial Intelligence in Modern Healthcare Systems", model.StatusDraft)
	post, err := f.admin.CreateBlogPost(ctx, f.adminActor, long)
	require.NoError(t, err)
	assert.Equal(t, "the-future-of-artificial-intelligence-in-modern-he", post.Slug)
	assert.LessOrEqual(t, len(post.Slug), MaxSlugLength)
	assert.Equal(t, int64(model.DefaultReadTime), post.ReadTime)

	_, err = f.admin.CreateBlogPost(ctx, f.adminActor, long)
	assert.ErrorIs(t, err, model.ErrConstraintViolation)

	// Keeping its own slug on update is fine.
	long.Slug = post.Slug
	_, err = f.admin.UpdateBlogPost(ctx, f.adminActor, post.ID, long)
	require.NoError(t, err)

	bad := validBlogPost("Bad slug", model.StatusDraft)
	bad.Slug = "Not A Slug"
	_, err = f.admin.CreateBlogPost(ctx, f.adminActor, bad)
	assert.True(t, model.IsValidationError(err))
}

func TestAdmin_MarkdownRendered(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	in := validBlogPost("Markdown", model.StatusDraft)
	in.Format = model.FormatMarkdown
	in.Content = "# Title\n\n<script>alert(1)</script>**bold**"
	post, err := f.admin.CreateBlogPost(ctx, f.adminActor, in)
	require.NoError(t, err)
	assert.Contains(t, post.Content, "<strong>bold</strong>")
	assert.NotContains(t, post.Content, "<script>")

	in.Format = "rtf"
	_, err = f.admin.UpdateBlogPost(ctx, f.adminActor, post.ID, in)
	assert.True(t, model.IsValidationError(err))
}

func TestAdmin_ModerateFeedback(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	fb, err := f.intake.SubmitFeedback(ctx, model.FeedbackInput{Name: "Lee", Email: "lee@example.com", Rating: 5, Comment: "Superb"})
	require.NoError(t, err)

	fb, err = f.admin.ModerateFeedback(ctx, f.editorActor, fb.ID, model.FeedbackModerationInput{IsApproved: true})
	require.NoError(t, err)
	require.True(t, fb.ApprovedBy.Valid)
	assert.Equal(t, f.editorActor.UserID, fb.ApprovedBy.Int64)

	// A later save by someone else keeps the first approver.
	fb, err = f.admin.ModerateFeedback(ctx, f.adminActor, fb.ID, model.FeedbackModerationInput{IsApproved: true, IsFeatured: true})
	require.NoError(t, err)
	assert.Equal(t, f.editorActor.UserID, fb.ApprovedBy.Int64)
	assert.True(t, fb.IsFeatured)

	testimonials, err := f.content.ListTestimonials(ctx, 0)
	require.NoError(t, err)
	require.Len(t, testimonials, 1)

	_, err = f.admin.ModerateFeedback(ctx, f.viewerActor, fb.ID, model.FeedbackModerationInput{})
	assert.ErrorIs(t, err, model.ErrUnauthorized)
}

func TestAdmin_InquiryTriage(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	inq, err := f.intake.SubmitContactInquiry(ctx, validInquiry(), nil, "")
	require.NoError(t, err)

	inq, err = f.admin.UpdateInquiry(ctx, f.editorActor, inq.ID, model.InquiryUpdateInput{IsRead: true, ResponseNotes: "Called back"})
	require.NoError(t, err)
	assert.True(t, inq.IsRead)
	assert.False(t, inq.IsResponded)
	assert.Equal(t, "Called back", inq.ResponseNotes)

	require.NoError(t, f.admin.DeleteInquiry(ctx, f.editorActor, inq.ID))
	_, err = f.admin.GetInquiry(ctx, inq.ID)
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestAdmin_RegistrationUpdateAndCascade(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ev, err := f.admin.CreateEvent(ctx, f.adminActor, validEvent("Expo", "2026-11-09", ""))
	require.NoError(t, err)
	res, err := f.intake.RegisterForEvent(ctx, ev.ID, model.RegistrationInput{Name: "Al", Email: "al@example.com"})
	require.NoError(t, err)

	reg, err := f.admin.UpdateRegistration(ctx, f.editorActor, res.Registration.ID, model.RegistrationUpdateInput{IsConfirmed: true, Attended: true})
	require.NoError(t, err)
	assert.True(t, reg.Attended)

	require.NoError(t, f.admin.DeleteEvent(ctx, f.adminActor, ev.ID))
	_, err = f.admin.ListRegistrations(ctx, ev.ID)
	assert.ErrorIs(t, err, model.ErrNotFound)
	assert.ErrorIs(t, f.admin.DeleteRegistration(ctx, f.adminActor, reg.ID), model.ErrNotFound)
}

func TestAdmin_GalleryAndTeam(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	item, err := f.admin.CreateGalleryItem(ctx, f.editorActor, model.GalleryItemInput{
		Title:       "Launch",
		Description: "Product launch",
		Image:       "gallery/launch.jpg",
		Category:    "product_launch",
		EventDate:   "2026-05-01",
		Location:    "Pokhara",
		EventName:   "Launch Day",
	})
	require.NoError(t, err)
	assert.True(t, item.UploadedBy.Valid)

	item, err = f.admin.UpdateGalleryItem(ctx, f.editorActor, item.ID, model.GalleryItemInput{
		Title: "Launch 2", Description: "d", Image: "gallery/launch.jpg", Category: "demo",
		EventDate: "2026-05-01", Location: "Pokhara", EventName: "Launch Day",
	})
	require.NoError(t, err)
	assert.Equal(t, "demo", item.Category)

	demos, err := f.content.ListGallery(ctx, "demo")
	require.NoError(t, err)
	assert.Len(t, demos, 1)

	require.NoError(t, f.admin.DeleteGalleryItem(ctx, f.editorActor, item.ID))
	all, err := f.admin.ListGallery(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	m, err := f.admin.CreateTeamMember(ctx, f.editorActor, model.TeamMemberInput{Name: "Ria", Role: "Lead", Bio: "*ML*", Format: model.FormatMarkdown, IsActive: true})
	require.NoError(t, err)
	assert.Contains(t, m.Bio, "<em>ML</em>")
	require.NoError(t, f.admin.DeleteTeamMember(ctx, f.editorActor, m.ID))
}

func TestAdmin_Users(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.admin.CreateUser(ctx, f.adminActor, model.UserInput{Username: "short", Password: "tiny", Role: model.RoleEditor})
	assert.True(t, model.IsValidationError(err))

	u, err := f.admin.CreateUser(ctx, f.adminActor, model.UserInput{
		Username: "newbie", Email: "newbie@example.com", Password: "a-very-long-password", Role: model.RoleEditor, IsActive: true,
	})
	require.NoError(t, err)
	assert.NotContains(t, u.PasswordHash, "a-very-long-password")

	_, err = f.admin.CreateUser(ctx, f.adminActor, model.UserInput{
		Username: "newbie", Password: "a-very-long-password", Role: model.RoleEditor, IsActive: true,
	})
	assert.ErrorIs(t, err, model.ErrConstraintViolation)

	_, err = f.users.Authenticate(ctx, "newbie", "a-very-long-password")
	require.NoError(t, err)

	_, err = f.admin.UpdateUser(ctx, f.adminActor, u.ID, model.UserInput{
		Username: "newbie", Password: "another-long-password", Role: model.RoleViewer, IsActive: true,
	})
	require.NoError(t, err)
	_, err = f.users.Authenticate(ctx, "newbie", "a-very-long-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	got, err := f.users.Authenticate(ctx, "newbie", "another-long-password")
	require.NoError(t, err)
	assert.Equal(t, model.RoleViewer, got.Role)

	_, err = f.admin.UpdateUser(ctx, f.adminActor, f.adminActor.UserID, model.UserInput{
		Username: f.adminActor.Username, Role: model.RoleEditor, IsActive: true,
	})
	assert.True(t, model.IsValidationError(err))
	assert.True(t, model.IsValidationError(f.admin.DeleteUser(ctx, f.adminActor, f.adminActor.UserID)))

	require.NoError(t, f.admin.DeleteUser(ctx, f.adminActor, u.ID))
	_, err = f.users.Get(ctx, u.ID)
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestAdmin_DeletedUserKeepsActivity(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.admin.CreateSolution(ctx, f.editorActor, validSolution("Kept"))
	require.NoError(t, err)
	require.NoError(t, f.admin.DeleteUser(ctx, f.adminActor, f.editorActor.UserID))

	page, err := f.activity.List(ctx, 1)
	require.NoError(t, err)
	var found bool
	for _, e := range page.Items {
		if e.ContentType == string(model.EntitySolution) {
			found = true
			assert.False(t, e.UserID.Valid)
			assert.Equal(t, f.editorActor.Username, e.Username)
		}
	}
	assert.True(t, found)
}

func TestExportInquiries(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first := validInquiry()
	first.Country = "NP"
	first.JobTitle = "cto"
	_, err := f.intake.SubmitContactInquiry(ctx, first, nil, "")
	require.NoError(t, err)
	_, err = f.intake.SubmitContactInquiry(ctx, validInquiry(), nil, "")
	require.NoError(t, err)

	data, err := f.admin.ExportInquiries(ctx, f.editorActor)
	require.NoError(t, err)

	wb, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = wb.Close() }()

	rows, err := wb.GetRows(InquirySheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, InquiryExportHeader, rows[0])

	var nepal bool
	for _, r := range rows[1:] {
		assert.Equal(t, "jane@example.com", r[2])
		if r[5] == "Nepal" {
			nepal = true
		}
	}
	assert.True(t, nepal)

	_, err = f.admin.ExportInquiries(ctx, f.viewerActor)
	assert.ErrorIs(t, err, model.ErrUnauthorized)
}
