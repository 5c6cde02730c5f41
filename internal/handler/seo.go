// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/olegiv/aisite/internal/cache"
	"github.com/olegiv/aisite/internal/seo"
	"github.com/olegiv/aisite/internal/service"
	"github.com/olegiv/aisite/internal/store"
)

// Sitemap caching.
const (
	sitemapCacheKey = "seo:sitemap"
	sitemapTTL      = time.Hour
)

// SitemapSource lists the public content that appears in the sitemap.
type SitemapSource interface {
	ListSolutions(ctx context.Context, category string) ([]store.Solution, error)
	ListBlogPosts(ctx context.Context, f service.BlogFilter) (service.Page[store.BlogPost], error)
	ListArticles(ctx context.Context, f service.ArticleFilter) (service.Page[store.Article], error)
	ListEvents(ctx context.Context, f service.EventFilter) ([]store.Event, error)
}

// SEOHandler serves sitemap.xml and robots.txt.
type SEOHandler struct {
	content     SitemapSource
	cache       cache.Cache
	siteURL     string
	disallowAll bool
	logger      *slog.Logger
}

// NewSEOHandler creates a new SEOHandler. disallowAll blocks every crawler,
// which is what development and staging deployments want.
func NewSEOHandler(content SitemapSource, c cache.Cache, siteURL string, disallowAll bool, logger *slog.Logger) *SEOHandler {
	return &SEOHandler{
		content:     content,
		cache:       c,
		siteURL:     siteURL,
		disallowAll: disallowAll,
		logger:      logger,
	}
}

// Sitemap handles GET /sitemap.xml.
func (h *SEOHandler) Sitemap(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	data, err := h.cache.Get(ctx, sitemapCacheKey)
	if err != nil {
		if !errors.Is(err, cache.ErrCacheMiss) {
			h.logger.WarnContext(ctx, "sitemap cache read failed", "error", err)
		}
		data, err = h.buildSitemap(ctx)
		if err != nil {
			h.logger.ErrorContext(ctx, "building sitemap", "error", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		if err := h.cache.Set(ctx, sitemapCacheKey, data, sitemapTTL); err != nil {
			h.logger.WarnContext(ctx, "sitemap cache write failed", "error", err)
		}
	}

	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	_, _ = w.Write(data)
}

// Robots handles GET /robots.txt.
func (h *SEOHandler) Robots(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(seo.Robots{SiteURL: h.siteURL, DisallowAll: h.disallowAll}.Build()))
}

func (h *SEOHandler) buildSitemap(ctx context.Context) ([]byte, error) {
	b := seo.NewSitemapBuilder(h.siteURL)
	b.AddHomepage()
	b.AddSections()

	solutions, err := h.content.ListSolutions(ctx, "")
	if err != nil {
		return nil, err
	}
	for _, s := range solutions {
		b.AddSolution(s.ID, s.UpdatedAt)
	}

	err = eachPage(func(page int) (int, error) {
		p, err := h.content.ListBlogPosts(ctx, service.BlogFilter{Page: page})
		for _, post := range p.Items {
			b.AddBlogPost(post.Slug, post.UpdatedAt)
		}
		return p.TotalPages, err
	})
	if err != nil {
		return nil, err
	}

	err = eachPage(func(page int) (int, error) {
		p, err := h.content.ListArticles(ctx, service.ArticleFilter{Page: page})
		for _, a := range p.Items {
			b.AddArticle(a.ID, a.UpdatedAt)
		}
		return p.TotalPages, err
	})
	if err != nil {
		return nil, err
	}

	events, err := h.content.ListEvents(ctx, service.EventFilter{Status: service.EventStatusAll})
	if err != nil {
		return nil, err
	}
	for _, e := range events {
		b.AddEvent(e.ID, e.UpdatedAt)
	}

	h.logger.DebugContext(ctx, "sitemap built", "urls", b.Len())
	return b.Build()
}

// maxSitemapPages bounds the pagination walk.
const maxSitemapPages = 1000

// eachPage calls fetch for pages 1..n where n is the page count fetch reports.
func eachPage(fetch func(page int) (int, error)) error {
	for page := 1; page <= maxSitemapPages; page++ {
		total, err := fetch(page)
		if err != nil {
			return fmt.Errorf("listing page %d: %w", page, err)
		}
		if page >= total {
			return nil
		}
	}
	return nil
}
