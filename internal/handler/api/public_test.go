// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/olegiv/aisite/internal/model"
	"github.com/olegiv/aisite/internal/service"
)

func TestPublic_StatusAndChoices(t *testing.T) {
	f := newAPIFixture(t)

	w := f.get("/api/v1/status", nil)
	assertStatusCode(t, w, http.StatusOK)
	if got := unmarshalData[StatusResponse](t, w); got.Status != "ok" {
		t.Errorf("status = %q", got.Status)
	}

	w = f.get("/api/v1/choices", nil)
	assertStatusCode(t, w, http.StatusOK)
	choices := unmarshalData[map[string][]model.Choice](t, w)
	if len(choices["solution_categories"]) != len(model.SolutionCategories) {
		t.Errorf("solution_categories = %v", choices["solution_categories"])
	}
	if _, ok := choices["event_types"]; !ok {
		t.Error("event_types missing from choices")
	}
}

func TestPublic_SettingsDefaults(t *testing.T) {
	f := newAPIFixture(t)

	w := f.get("/api/v1/settings", nil)
	assertStatusCode(t, w, http.StatusOK)
	if got := unmarshalData[SiteSettingsResponse](t, w); got.SiteName != service.DefaultSiteName {
		t.Errorf("site_name = %q, want %q", got.SiteName, service.DefaultSiteName)
	}

	w = f.get("/api/v1/about", nil)
	assertStatusCode(t, w, http.StatusOK)
}

func TestPublic_Home(t *testing.T) {
	f := newAPIFixture(t)
	ctx := context.Background()
	editor := actorFor(f.editorUser)

	featured := validSolution("Featured Vision", "healthcare")
	featured.IsFeatured = true
	if _, err := f.admin.CreateSolution(ctx, editor, featured); err != nil {
		t.Fatal(err)
	}
	if _, err := f.admin.CreateSolution(ctx, editor, validSolution("Plain", "finance")); err != nil {
		t.Fatal(err)
	}
	if _, err := f.admin.CreateBlogPost(ctx, editor, validBlogPost("Hello World", model.StatusPublished)); err != nil {
		t.Fatal(err)
	}

	w := f.get("/api/v1/home", nil)
	assertStatusCode(t, w, http.StatusOK)

	home := unmarshalData[HomeResponse](t, w)
	if len(home.FeaturedSolutions) != 1 || home.FeaturedSolutions[0].Title != "Featured Vision" {
		t.Errorf("featured = %+v", home.FeaturedSolutions)
	}
	if len(home.RecentPosts) != 1 {
		t.Fatalf("recent posts = %d, want 1", len(home.RecentPosts))
	}
	if home.RecentPosts[0].Content != "" {
		t.Error("list views must not carry the post body")
	}
	if home.Testimonials == nil {
		t.Error("testimonials should encode as an empty list")
	}
}

func TestPublic_Solutions(t *testing.T) {
	f := newAPIFixture(t)
	ctx := context.Background()
	editor := actorFor(f.editorUser)

	a, err := f.admin.CreateSolution(ctx, editor, validSolution("Diagnostics", "healthcare"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.admin.CreateSolution(ctx, editor, validSolution("Triage", "healthcare")); err != nil {
		t.Fatal(err)
	}
	if _, err := f.admin.CreateSolution(ctx, editor, validSolution("Fraud", "finance")); err != nil {
		t.Fatal(err)
	}
	hidden := validSolution("Hidden", "healthcare")
	hidden.IsActive = false
	h, err := f.admin.CreateSolution(ctx, editor, hidden)
	if err != nil {
		t.Fatal(err)
	}

	w := f.get("/api/v1/solutions", nil)
	assertStatusCode(t, w, http.StatusOK)
	all, meta := unmarshalList[SolutionResponse](t, w)
	if len(all) != 3 || meta.Total != 3 {
		t.Errorf("got %d solutions (meta %d), want 3 active", len(all), meta.Total)
	}

	w = f.get("/api/v1/solutions?category=finance", nil)
	fin, _ := unmarshalList[SolutionResponse](t, w)
	if len(fin) != 1 || fin[0].CategoryLabel != "Finance" {
		t.Errorf("finance = %+v", fin)
	}

	w = f.get(fmt.Sprintf("/api/v1/solutions/%d", a.ID), nil)
	assertStatusCode(t, w, http.StatusOK)
	detail := unmarshalData[SolutionDetailResponse](t, w)
	if detail.Title != "Diagnostics" {
		t.Errorf("title = %q", detail.Title)
	}
	if len(detail.Related) != 1 || detail.Related[0].Title != "Triage" {
		t.Errorf("related = %+v", detail.Related)
	}

	w = f.get(fmt.Sprintf("/api/v1/solutions/%d", h.ID), nil)
	assertStatusCode(t, w, http.StatusNotFound)
	assertErrorResponse(t, w, "not_found")

	w = f.get("/api/v1/solutions/abc", nil)
	assertStatusCode(t, w, http.StatusBadRequest)
}

func TestPublic_Blog(t *testing.T) {
	f := newAPIFixture(t)
	ctx := context.Background()
	editor := actorFor(f.editorUser)

	for i := range service.BlogPageSize + 2 {
		if _, err := f.admin.CreateBlogPost(ctx, editor, validBlogPost(fmt.Sprintf("Post %02d", i), model.StatusPublished)); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := f.admin.CreateBlogPost(ctx, editor, validBlogPost("Secret draft", model.StatusDraft)); err != nil {
		t.Fatal(err)
	}

	w := f.get("/api/v1/blog", nil)
	assertStatusCode(t, w, http.StatusOK)
	posts, meta := unmarshalList[BlogPostResponse](t, w)
	if len(posts) != service.BlogPageSize {
		t.Errorf("page 1 has %d posts, want %d", len(posts), service.BlogPageSize)
	}
	if meta.Total != int64(service.BlogPageSize+2) || meta.Pages != 2 || !meta.HasNext || meta.HasPrev {
		t.Errorf("meta = %+v", meta)
	}

	w = f.get("/api/v1/blog?page=99", nil)
	posts, meta = unmarshalList[BlogPostResponse](t, w)
	if meta.Page != 2 || len(posts) != 2 {
		t.Errorf("past-the-end page: page %d with %d posts", meta.Page, len(posts))
	}

	w = f.get("/api/v1/blog?search=secret", nil)
	posts, _ = unmarshalList[BlogPostResponse](t, w)
	if len(posts) != 0 {
		t.Errorf("drafts must not be searchable, got %d", len(posts))
	}

	w = f.get("/api/v1/blog/post-00", nil)
	assertStatusCode(t, w, http.StatusOK)
	post := unmarshalData[BlogPostDetailResponse](t, w)
	if post.Content == "" {
		t.Error("detail view should include the body")
	}
	if post.ViewsCount != 1 {
		t.Errorf("views = %d, want 1", post.ViewsCount)
	}
	if len(post.Related) != service.RelatedLimit {
		t.Errorf("related = %d, want %d", len(post.Related), service.RelatedLimit)
	}

	w = f.get("/api/v1/blog/secret-draft", nil)
	assertStatusCode(t, w, http.StatusNotFound)
}

func TestPublic_ArticlesHidePDFPath(t *testing.T) {
	f := newAPIFixture(t)
	ctx := context.Background()

	in := model.ArticleInput{
		Title:    "State of AI",
		Content:  "<p>Findings</p>",
		Excerpt:  "Summary",
		Category: "Research",
		Status:   model.StatusPublished,
		PDFFile:  "articles/pdfs/report.pdf",
	}
	a, err := f.admin.CreateArticle(ctx, actorFor(f.editorUser), in)
	if err != nil {
		t.Fatal(err)
	}

	w := f.get("/api/v1/articles", nil)
	assertStatusCode(t, w, http.StatusOK)
	list, meta := unmarshalList[ArticleResponse](t, w)
	if len(list) != 1 || meta.Total != 1 {
		t.Fatalf("articles = %d", len(list))
	}
	if !list[0].HasPDF || list[0].PDFFile != "" {
		t.Errorf("public article = %+v", list[0])
	}

	w = f.get(fmt.Sprintf("/api/v1/articles/%d", a.ID), nil)
	assertStatusCode(t, w, http.StatusOK)
	if got := unmarshalData[ArticleResponse](t, w); got.PDFFile != "" || got.Content == "" {
		t.Errorf("article detail = %+v", got)
	}

	w = f.get(fmt.Sprintf("/api/v1/admin/articles/%d", a.ID), &f.editorUser)
	assertStatusCode(t, w, http.StatusOK)
	if got := unmarshalData[ArticleResponse](t, w); got.PDFFile != in.PDFFile {
		t.Errorf("staff pdf_file = %q, want %q", got.PDFFile, in.PDFFile)
	}
}

func TestPublic_EventsStatusFilter(t *testing.T) {
	f := newAPIFixture(t)
	ctx := context.Background()
	editor := actorFor(f.editorUser)

	up, err := f.admin.CreateEvent(ctx, editor, validEvent("Summit", "2030-01-10", model.EventStatusUpcoming))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.admin.CreateEvent(ctx, editor, validEvent("Old Expo", "2020-01-10", model.EventStatusCompleted)); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		query string
		want  int
	}{
		{"", 1},
		{"?status=all", 2},
		{"?status=completed", 1},
		{"?type=webinar&status=all", 0},
	}
	for _, tt := range tests {
		t.Run("events"+tt.query, func(t *testing.T) {
			w := f.get("/api/v1/events"+tt.query, nil)
			assertStatusCode(t, w, http.StatusOK)
			events, _ := unmarshalList[EventResponse](t, w)
			if len(events) != tt.want {
				t.Errorf("got %d events, want %d", len(events), tt.want)
			}
		})
	}

	w := f.get(fmt.Sprintf("/api/v1/events/%d", up.ID), nil)
	assertStatusCode(t, w, http.StatusOK)
	ev := unmarshalData[EventResponse](t, w)
	if ev.Date != "2030-01-10" || ev.TypeLabel != "Conference" || ev.Speakers == nil {
		t.Errorf("event = %+v", ev)
	}

	w = f.get("/api/v1/events/999", nil)
	assertStatusCode(t, w, http.StatusNotFound)
}

func TestPublic_TestimonialsOnlyApproved(t *testing.T) {
	f := newAPIFixture(t)
	ctx := context.Background()

	ok, err := f.intake.SubmitFeedback(ctx, model.FeedbackInput{Name: "Asha", Email: "asha@example.com", Rating: 5, Comment: "Great"})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.intake.SubmitFeedback(ctx, model.FeedbackInput{Name: "Bo", Email: "bo@example.com", Rating: 2, Comment: "Meh"}); err != nil {
		t.Fatal(err)
	}
	if _, err := f.admin.ModerateFeedback(ctx, actorFor(f.editorUser), ok.ID, model.FeedbackModerationInput{IsApproved: true}); err != nil {
		t.Fatal(err)
	}

	w := f.get("/api/v1/testimonials", nil)
	assertStatusCode(t, w, http.StatusOK)
	items, _ := unmarshalList[map[string]any](t, w)
	if len(items) != 1 {
		t.Fatalf("testimonials = %d, want 1", len(items))
	}
	if items[0]["name"] != "Asha" {
		t.Errorf("testimonial = %v", items[0])
	}
	if _, leaked := items[0]["email"]; leaked {
		t.Error("testimonials must not expose email addresses")
	}
}

func TestPublic_GalleryAndTeam(t *testing.T) {
	f := newAPIFixture(t)
	ctx := context.Background()
	editor := actorFor(f.editorUser)

	_, err := f.admin.CreateGalleryItem(ctx, editor, model.GalleryItemInput{
		Title:       "Keynote",
		Description: "Opening keynote",
		Image:       "gallery/keynote.jpg",
		Category:    "conference",
		EventDate:   "2025-06-01",
		Location:    "Pokhara",
		EventName:   "AI Summit",
	})
	if err != nil {
		t.Fatal(err)
	}
	_, err = f.admin.CreateTeamMember(ctx, editor, model.TeamMemberInput{Name: "Mira", Role: "CTO", Bio: "Builds things", IsActive: true})
	if err != nil {
		t.Fatal(err)
	}
	_, err = f.admin.CreateTeamMember(ctx, editor, model.TeamMemberInput{Name: "Gone", Role: "Intern", Bio: "Left", IsActive: false})
	if err != nil {
		t.Fatal(err)
	}

	w := f.get("/api/v1/gallery?category=conference", nil)
	items, _ := unmarshalList[GalleryItemResponse](t, w)
	if len(items) != 1 {
		t.Errorf("gallery = %d, want 1", len(items))
	}
	w = f.get("/api/v1/gallery?category=award", nil)
	items, _ = unmarshalList[GalleryItemResponse](t, w)
	if len(items) != 0 {
		t.Errorf("award gallery = %d, want 0", len(items))
	}

	w = f.get("/api/v1/team", nil)
	team, _ := unmarshalList[TeamMemberResponse](t, w)
	if len(team) != 1 || team[0].Name != "Mira" {
		t.Errorf("team = %+v", team)
	}
}
