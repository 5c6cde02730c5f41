package service

import (
	"database/sql"
	"testing"
	"time"

	"github.com/olegiv/aisite/internal/cache"
	"github.com/olegiv/aisite/internal/media"
	"github.com/olegiv/aisite/internal/model"
	"github.com/olegiv/aisite/internal/richtext"
	"github.com/olegiv/aisite/internal/testutil"
)

type fixture struct {
	db       *sql.DB
	media    *media.Store
	settings *SettingsService
	content  *ContentService
	intake   *IntakeService
	admin    *AdminService
	users    *UserService
	activity *ActivityService

	adminActor  Actor
	editorActor Actor
	viewerActor Actor
}

type fixedCountry string

func (c fixedCountry) InquiryCountry(string) string { return string(c) }

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db, cleanup := testutil.TestDB(t)
	t.Cleanup(cleanup)

	logger := testutil.TestLoggerSilent()
	renderer := richtext.New(cache.NewMemoryCache(cache.MemoryCacheOptions{}), logger)
	uploads := media.NewStore(t.TempDir(), 1<<20)
	settings := NewSettingsService(db, renderer)

	f := &fixture{
		db:       db,
		media:    uploads,
		settings: settings,
		content:  NewContentService(db, settings),
		intake:   NewIntakeService(db, uploads, fixedCountry(""), logger),
		admin:    NewAdminService(db, renderer, uploads, logger),
		users:    NewUserService(db, logger),
		activity: NewActivityService(db),
	}

	for _, u := range []struct {
		name string
		role string
		dst  *Actor
	}{
		{"root", model.RoleAdmin, &f.adminActor},
		{"writer", model.RoleEditor, &f.editorActor},
		{"reader", model.RoleViewer, &f.viewerActor},
	} {
		user := testutil.CreateUser(t, db, u.name, u.role, "correct-horse-battery")
		*u.dst = Actor{UserID: user.ID, Username: user.Username, Role: user.Role, IP: "203.0.113.7"}
	}
	return f
}

// freeze pins the clock of every service to t.
func (f *fixture) freeze(t time.Time) {
	now := func() time.Time { return t }
	f.settings.now = now
	f.intake.now = now
	f.admin.now = now
	f.users.now = now
}

func validSolution(title string) model.SolutionInput {
	return model.SolutionInput{
		Title:       title,
		Description: "Diagnostics powered by machine learning.",
		Category:    "healthcare",
		Icon:        "fa-heartbeat",
		Features:    model.StringList{"Imaging", "Triage"},
		IsActive:    true,
	}
}

func validBlogPost(title, status string) model.BlogPostInput {
	return model.BlogPostInput{
		Title:    title,
		Excerpt:  "A short look at " + title,
		Content:  "<p>Body of " + title + "</p>",
		Author:   "AI-Solution Team",
		Category: "technology",
		Status:   status,
	}
}

func validArticle(title, status string) model.ArticleInput {
	return model.ArticleInput{
		Title:    title,
		Content:  "<p>Findings</p>",
		Excerpt:  "Summary",
		Category: "Research",
		Status:   status,
	}
}

func validEvent(title, date, status string) model.EventInput {
	return model.EventInput{
		Title:       title,
		Description: "Talks and demos.",
		EventType:   "conference",
		Date:        date,
		Time:        "09:30",
		Location:    "Kathmandu",
		Capacity:    100,
		Status:      status,
	}
}
