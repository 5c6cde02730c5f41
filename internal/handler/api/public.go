// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/olegiv/aisite/internal/handler"
	"github.com/olegiv/aisite/internal/model"
	"github.com/olegiv/aisite/internal/service"
	"github.com/olegiv/aisite/internal/store"
)

// HomeResponse is the landing page aggregate.
type HomeResponse struct {
	Settings          SiteSettingsResponse  `json:"settings"`
	About             AboutResponse         `json:"about"`
	FeaturedSolutions []SolutionResponse    `json:"featured_solutions"`
	Testimonials      []TestimonialResponse `json:"testimonials"`
	RecentPosts       []BlogPostResponse    `json:"recent_posts"`
}

// Home handles GET /api/v1/home.
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	home, err := h.content.Home(r.Context())
	if err != nil {
		h.writeServiceError(w, r, "home page", err)
		return
	}
	WriteSuccess(w, HomeResponse{
		Settings:          siteSettingsToResponse(home.Settings),
		About:             aboutToResponse(home.About),
		FeaturedSolutions: mapSlice(home.FeaturedSolutions, solutionToResponse),
		Testimonials:      mapSlice(home.Testimonials, testimonialToResponse),
		RecentPosts:       mapSlice(home.RecentPosts, blogPostSummary),
	}, nil)
}

// GetSettings handles GET /api/v1/settings.
func (h *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	s, err := h.settings.Load(r.Context())
	if err != nil {
		h.writeServiceError(w, r, "settings", err)
		return
	}
	WriteSuccess(w, siteSettingsToResponse(s), nil)
}

// GetAbout handles GET /api/v1/about.
func (h *Handler) GetAbout(w http.ResponseWriter, r *http.Request) {
	a, err := h.settings.LoadAbout(r.Context())
	if err != nil {
		h.writeServiceError(w, r, "about", err)
		return
	}
	WriteSuccess(w, aboutToResponse(a), nil)
}

// ListTeam handles GET /api/v1/team.
func (h *Handler) ListTeam(w http.ResponseWriter, r *http.Request) {
	members, err := h.content.ListTeam(r.Context())
	if err != nil {
		h.writeServiceError(w, r, "team", err)
		return
	}
	WriteSuccess(w, mapSlice(members, teamMemberToResponse), listMeta(len(members)))
}

// ListSolutions handles GET /api/v1/solutions.
// Query parameters:
//   - category: filter by solution category
func (h *Handler) ListSolutions(w http.ResponseWriter, r *http.Request) {
	sols, err := h.content.ListSolutions(r.Context(), handler.QueryString(r, "category"))
	if err != nil {
		h.writeServiceError(w, r, "solutions", err)
		return
	}
	WriteSuccess(w, mapSlice(sols, solutionToResponse), listMeta(len(sols)))
}

// GetSolution handles GET /api/v1/solutions/{id}.
func (h *Handler) GetSolution(w http.ResponseWriter, r *http.Request) {
	id, ok := requireID(w, r, "solution")
	if !ok {
		return
	}
	sol, err := h.content.GetSolution(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, r, "solution", err)
		return
	}
	related, err := h.content.RelatedSolutions(r.Context(), sol)
	if err != nil {
		h.writeServiceError(w, r, "solution", err)
		return
	}
	WriteSuccess(w, SolutionDetailResponse{
		SolutionResponse: solutionToResponse(sol),
		Related:          mapSlice(related, solutionToResponse),
	}, nil)
}

// ListBlogPosts handles GET /api/v1/blog.
// Query parameters:
//   - category: filter by blog category
//   - search: match title, excerpt or content
//   - page: page number (default: 1)
func (h *Handler) ListBlogPosts(w http.ResponseWriter, r *http.Request) {
	page, err := h.content.ListBlogPosts(r.Context(), service.BlogFilter{
		Category: handler.QueryString(r, "category"),
		Search:   handler.QueryString(r, "search"),
		Page:     handler.QueryInt(r, "page", 1),
	})
	if err != nil {
		h.writeServiceError(w, r, "blog posts", err)
		return
	}
	WriteSuccess(w, mapSlice(page.Items, blogPostSummary), pageMeta(page))
}

// GetBlogPost handles GET /api/v1/blog/{slug}. Each GET counts as a view;
// HEAD requests do not.
func (h *Handler) GetBlogPost(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if slug == "" {
		WriteBadRequest(w, "Invalid blog post slug", nil)
		return
	}
	read := h.content.GetBlogPostBySlug
	if r.Method == http.MethodHead {
		read = h.content.PeekBlogPostBySlug
	}
	post, err := read(r.Context(), slug)
	if err != nil {
		h.writeServiceError(w, r, "blog post", err)
		return
	}
	related, err := h.content.RelatedBlogPosts(r.Context(), post)
	if err != nil {
		h.writeServiceError(w, r, "blog post", err)
		return
	}
	WriteSuccess(w, BlogPostDetailResponse{
		BlogPostResponse: blogPostToResponse(post),
		Related:          mapSlice(related, blogPostSummary),
	}, nil)
}

// ListArticles handles GET /api/v1/articles.
// Query parameters:
//   - type: filter by article type
//   - page: page number (default: 1)
func (h *Handler) ListArticles(w http.ResponseWriter, r *http.Request) {
	page, err := h.content.ListArticles(r.Context(), service.ArticleFilter{
		Type: handler.QueryString(r, "type"),
		Page: handler.QueryInt(r, "page", 1),
	})
	if err != nil {
		h.writeServiceError(w, r, "articles", err)
		return
	}
	WriteSuccess(w, mapSlice(page.Items, publicArticle), pageMeta(page))
}

// GetArticle handles GET /api/v1/articles/{id}.
func (h *Handler) GetArticle(w http.ResponseWriter, r *http.Request) {
	id, ok := requireID(w, r, "article")
	if !ok {
		return
	}
	a, err := h.content.GetArticle(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, r, "article", err)
		return
	}
	WriteSuccess(w, articleToResponse(a, false), nil)
}

// ListEvents handles GET /api/v1/events.
// Query parameters:
//   - type: filter by event type
//   - status: event status, "all" for every status (default: upcoming)
func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.content.ListEvents(r.Context(), service.EventFilter{
		Type:   handler.QueryString(r, "type"),
		Status: handler.QueryString(r, "status"),
	})
	if err != nil {
		h.writeServiceError(w, r, "events", err)
		return
	}
	WriteSuccess(w, mapSlice(events, eventToResponse), listMeta(len(events)))
}

// GetEvent handles GET /api/v1/events/{id}.
func (h *Handler) GetEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := requireID(w, r, "event")
	if !ok {
		return
	}
	e, err := h.content.GetEvent(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, r, "event", err)
		return
	}
	WriteSuccess(w, eventToResponse(e), nil)
}

// ListGallery handles GET /api/v1/gallery.
// Query parameters:
//   - category: filter by gallery category
func (h *Handler) ListGallery(w http.ResponseWriter, r *http.Request) {
	items, err := h.content.ListGallery(r.Context(), handler.QueryString(r, "category"))
	if err != nil {
		h.writeServiceError(w, r, "gallery", err)
		return
	}
	WriteSuccess(w, mapSlice(items, galleryItemToResponse), listMeta(len(items)))
}

// ListTestimonials handles GET /api/v1/testimonials.
func (h *Handler) ListTestimonials(w http.ResponseWriter, r *http.Request) {
	items, err := h.content.ListTestimonials(r.Context(), service.TestimonialsLimit)
	if err != nil {
		h.writeServiceError(w, r, "testimonials", err)
		return
	}
	WriteSuccess(w, mapSlice(items, testimonialToResponse), listMeta(len(items)))
}

// Choices handles GET /api/v1/choices.
func (h *Handler) Choices(w http.ResponseWriter, _ *http.Request) {
	WriteSuccess(w, model.AllChoices(), nil)
}

func publicArticle(a store.Article) ArticleResponse {
	resp := articleToResponse(a, false)
	resp.Content = ""
	return resp
}
