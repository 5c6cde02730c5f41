package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olegiv/aisite/internal/model"
)

func TestSettingsLoad_DefaultWhenMissing(t *testing.T) {
	f := newFixture(t)

	got, err := f.settings.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, DefaultSiteName, got.SiteName)
	assert.Zero(t, got.ID)
	assert.Empty(t, got.ContactEmail)
}

func TestSettingsCreate_Singleton(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first, err := f.settings.Create(ctx, f.adminActor, model.SiteSettingsInput{SiteName: "First", ContactEmail: "hello@example.com"})
	require.NoError(t, err)

	_, err = f.settings.Create(ctx, f.adminActor, model.SiteSettingsInput{SiteName: "Second"})
	assert.ErrorIs(t, err, model.ErrConstraintViolation)

	got, err := f.settings.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID)
	assert.Equal(t, "First", got.SiteName)
	assert.Equal(t, "hello@example.com", got.ContactEmail)
}

func TestSettingsUpdate_NotFoundWithoutRow(t *testing.T) {
	f := newFixture(t)

	_, err := f.settings.Update(context.Background(), f.adminActor, model.SiteSettingsInput{SiteName: "X"})
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestSettingsSave_CreatesThenUpdates(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.settings.Save(ctx, f.adminActor, model.SiteSettingsInput{SiteName: "One"})
	require.NoError(t, err)
	updated, err := f.settings.Save(ctx, f.adminActor, model.SiteSettingsInput{SiteName: "Two"})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Two", updated.SiteName)
	assert.True(t, updated.UpdatedBy.Valid)
	assert.Equal(t, f.adminActor.UserID, updated.UpdatedBy.Int64)
}

func TestSettings_Capabilities(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	in := model.SiteSettingsInput{SiteName: "Nope"}

	_, err := f.settings.Create(ctx, f.editorActor, in)
	assert.ErrorIs(t, err, model.ErrUnauthorized)
	_, err = f.settings.Save(ctx, f.viewerActor, in)
	assert.ErrorIs(t, err, model.ErrUnauthorized)

	got, err := f.settings.Load(ctx)
	require.NoError(t, err)
	assert.Zero(t, got.ID)
}

func TestSettings_Validation(t *testing.T) {
	f := newFixture(t)

	_, err := f.settings.Create(context.Background(), f.adminActor, model.SiteSettingsInput{
		SiteName:    "Site",
		FacebookURL: "not a url",
	})
	var ve *model.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.NotEmpty(t, ve.Field("facebook_url"))
}

func TestAbout_DefaultThenSave(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	def, err := f.settings.LoadAbout(ctx)
	require.NoError(t, err)
	assert.Equal(t, "About AI-Solution", def.Title)
	assert.Equal(t, int64(98), def.SuccessRate)

	in := model.AboutInput{
		Title:             "About us",
		CompanyBackground: "**Founded** in 2019",
		Mission:           "Help",
		Vision:            "Grow",
		FoundedYear:       2019,
		SuccessRate:       97,
		Format:            model.FormatMarkdown,
	}
	first, err := f.settings.SaveAbout(ctx, f.adminActor, in)
	require.NoError(t, err)
	assert.Contains(t, first.CompanyBackground, "<strong>Founded</strong>")

	in.Title = "About AI"
	second, err := f.settings.SaveAbout(ctx, f.adminActor, in)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "About AI", second.Title)

	_, err = f.settings.SaveAbout(ctx, f.editorActor, in)
	assert.ErrorIs(t, err, model.ErrUnauthorized)

	in.SuccessRate = 101
	_, err = f.settings.SaveAbout(ctx, f.adminActor, in)
	assert.True(t, model.IsValidationError(err))
}
