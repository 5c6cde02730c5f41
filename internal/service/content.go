// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/olegiv/aisite/internal/model"
	"github.com/olegiv/aisite/internal/store"
)

// Public listing sizes.
const (
	BlogPageSize      = 9
	ArticlePageSize   = 12
	RelatedLimit      = 3
	HomeSolutions     = 3
	HomeTestimonials  = 4
	HomeRecentPosts   = 3
	TestimonialsLimit = 20
)

// EventStatusAll disables the event status filter.
const EventStatusAll = "all"

// BlogFilter narrows the public blog list.
type BlogFilter struct {
	Category string
	Search   string
	Page     int
}

// ArticleFilter narrows the public article list.
type ArticleFilter struct {
	Type string
	Page int
}

// EventFilter narrows the event list. An empty Status means upcoming.
type EventFilter struct {
	Type   string
	Status string
}

// Home is the aggregate shown on the landing page.
type Home struct {
	Settings          store.SiteSetting
	About             store.AboutUs
	FeaturedSolutions []store.Solution
	Testimonials      []store.Feedback
	RecentPosts       []store.BlogPost
}

// ContentService answers the public read queries. Only active, published
// or approved rows are visible through it.
type ContentService struct {
	queries  *store.Queries
	settings *SettingsService
}

// NewContentService creates a new ContentService.
func NewContentService(db *sql.DB, settings *SettingsService) *ContentService {
	return &ContentService{queries: store.New(db), settings: settings}
}

// Home assembles the landing page content.
func (s *ContentService) Home(ctx context.Context) (Home, error) {
	var h Home
	var err error
	if h.Settings, err = s.settings.Load(ctx); err != nil {
		return Home{}, err
	}
	if h.About, err = s.settings.LoadAbout(ctx); err != nil {
		return Home{}, err
	}
	if h.FeaturedSolutions, err = s.queries.ListFeaturedSolutions(ctx, HomeSolutions); err != nil {
		return Home{}, fmt.Errorf("listing featured solutions: %w", err)
	}
	if h.Testimonials, err = s.queries.ListApprovedFeedback(ctx, HomeTestimonials); err != nil {
		return Home{}, fmt.Errorf("listing testimonials: %w", err)
	}
	if h.RecentPosts, err = s.queries.ListRecentBlogPosts(ctx, HomeRecentPosts); err != nil {
		return Home{}, fmt.Errorf("listing recent posts: %w", err)
	}
	return h, nil
}

// ListSolutions returns active solutions, optionally of one category.
func (s *ContentService) ListSolutions(ctx context.Context, category string) ([]store.Solution, error) {
	items, err := s.queries.ListActiveSolutions(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("listing solutions: %w", err)
	}
	return items, nil
}

// GetSolution returns an active solution.
func (s *ContentService) GetSolution(ctx context.Context, id int64) (store.Solution, error) {
	sol, err := s.queries.GetActiveSolution(ctx, id)
	return sol, mapStoreErr(err)
}

// RelatedSolutions returns up to three other active solutions of the same category.
func (s *ContentService) RelatedSolutions(ctx context.Context, sol store.Solution) ([]store.Solution, error) {
	return s.queries.ListRelatedSolutions(ctx, store.ListRelatedSolutionsParams{
		Category:  sol.Category,
		ExcludeID: sol.ID,
		Limit:     RelatedLimit,
	})
}

// ListBlogPosts returns a page of published posts. Search matches title,
// excerpt or content.
func (s *ContentService) ListBlogPosts(ctx context.Context, f BlogFilter) (Page[store.BlogPost], error) {
	arg := store.BlogFilterParams{Category: f.Category, Search: strings.TrimSpace(f.Search)}
	total, err := s.queries.CountPublishedBlogPosts(ctx, arg)
	if err != nil {
		return Page[store.BlogPost]{}, fmt.Errorf("counting posts: %w", err)
	}
	p := newPage[store.BlogPost](f.Page, BlogPageSize, total)
	items, err := s.queries.ListPublishedBlogPosts(ctx, arg, int64(p.PerPage), p.offset())
	if err != nil {
		return Page[store.BlogPost]{}, fmt.Errorf("listing posts: %w", err)
	}
	p.fill(items)
	return p, nil
}

// GetBlogPostBySlug returns a published post and counts the view in the
// same statement.
func (s *ContentService) GetBlogPostBySlug(ctx context.Context, slug string) (store.BlogPost, error) {
	post, err := s.queries.ViewPublishedBlogPost(ctx, slug)
	return post, mapStoreErr(err)
}

// PeekBlogPostBySlug returns a published post without counting a view.
func (s *ContentService) PeekBlogPostBySlug(ctx context.Context, slug string) (store.BlogPost, error) {
	post, err := s.queries.GetPublishedBlogPostBySlug(ctx, slug)
	return post, mapStoreErr(err)
}

// RelatedBlogPosts returns up to three other published posts of the same category.
func (s *ContentService) RelatedBlogPosts(ctx context.Context, post store.BlogPost) ([]store.BlogPost, error) {
	return s.queries.ListRelatedBlogPosts(ctx, store.ListRelatedBlogPostsParams{
		Category:  post.Category,
		ExcludeID: post.ID,
		Limit:     RelatedLimit,
	})
}

// ListArticles returns a page of published articles.
func (s *ContentService) ListArticles(ctx context.Context, f ArticleFilter) (Page[store.Article], error) {
	total, err := s.queries.CountPublishedArticles(ctx, f.Type)
	if err != nil {
		return Page[store.Article]{}, fmt.Errorf("counting articles: %w", err)
	}
	p := newPage[store.Article](f.Page, ArticlePageSize, total)
	items, err := s.queries.ListPublishedArticles(ctx, f.Type, int64(p.PerPage), p.offset())
	if err != nil {
		return Page[store.Article]{}, fmt.Errorf("listing articles: %w", err)
	}
	p.fill(items)
	return p, nil
}

// GetArticle returns a published article.
func (s *ContentService) GetArticle(ctx context.Context, id int64) (store.Article, error) {
	a, err := s.queries.GetPublishedArticle(ctx, id)
	return a, mapStoreErr(err)
}

// ListEvents returns events ordered by date and time. The status filter
// defaults to upcoming; EventStatusAll lists every status.
func (s *ContentService) ListEvents(ctx context.Context, f EventFilter) ([]store.Event, error) {
	status := f.Status
	switch status {
	case "":
		status = model.EventStatusUpcoming
	case EventStatusAll:
		status = ""
	}
	items, err := s.queries.ListEvents(ctx, f.Type, status)
	if err != nil {
		return nil, fmt.Errorf("listing events: %w", err)
	}
	return items, nil
}

// GetEvent returns an event of any status.
func (s *ContentService) GetEvent(ctx context.Context, id int64) (store.Event, error) {
	ev, err := s.queries.GetEvent(ctx, id)
	return ev, mapStoreErr(err)
}

// ListGallery returns gallery items, optionally of one category.
func (s *ContentService) ListGallery(ctx context.Context, category string) ([]store.GalleryItem, error) {
	return s.queries.ListGalleryItems(ctx, category)
}

// ListTeam returns active team members.
func (s *ContentService) ListTeam(ctx context.Context) ([]store.TeamMember, error) {
	return s.queries.ListActiveTeamMembers(ctx)
}

// ListTestimonials returns approved feedback, newest first.
func (s *ContentService) ListTestimonials(ctx context.Context, limit int) ([]store.Feedback, error) {
	if limit <= 0 {
		limit = TestimonialsLimit
	}
	return s.queries.ListApprovedFeedback(ctx, int64(limit))
}
