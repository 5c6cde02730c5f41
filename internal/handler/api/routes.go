// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/olegiv/aisite/internal/middleware"
)

// MountPublic registers the public read endpoints on r.
func (h *Handler) MountPublic(r chi.Router) {
	r.Get("/status", h.Status)
	r.Get("/home", h.Home)
	r.Get("/settings", h.GetSettings)
	r.Get("/about", h.GetAbout)
	r.Get("/team", h.ListTeam)
	r.Get("/choices", h.Choices)
	r.Get("/testimonials", h.ListTestimonials)

	r.Get("/solutions", h.ListSolutions)
	r.Get("/solutions/{id}", h.GetSolution)

	r.Get("/blog", h.ListBlogPosts)
	r.Get("/blog/{slug}", h.GetBlogPost)

	r.Get("/articles", h.ListArticles)
	r.Get("/articles/{id}", h.GetArticle)

	r.Get("/events", h.ListEvents)
	r.Get("/events/{id}", h.GetEvent)

	r.Get("/gallery", h.ListGallery)
}

// adminOnly lists the resources editors may not even read.
var adminOnly = map[string]bool{"/users": true}

// MountAdmin registers the staff endpoints on r. The caller installs the
// session, CSRF and editor role middleware; admin-only writes are gated here
// as well as in the services.
func (h *Handler) MountAdmin(r chi.Router) {
	r.Get("/settings", h.GetSettings)
	r.With(middleware.RequireAdmin()).Put("/settings", h.UpdateSettings)
	r.Get("/about", h.GetAbout)
	r.With(middleware.RequireAdmin()).Put("/about", h.UpdateAbout)

	r.Get("/activity", h.ListActivity)
	r.Post("/media/{kind}", h.UploadMedia)

	for prefix, res := range h.adminResources() {
		if adminOnly[prefix] {
			r.With(middleware.RequireAdmin()).Route(prefix, res.mount)
			continue
		}
		r.Route(prefix, res.mount)
	}
}
