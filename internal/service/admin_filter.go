// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"strconv"
	"strings"

	"github.com/olegiv/aisite/internal/store"
)

// Facets describes how one admin list item can be narrowed: the values of
// its filterable fields and the text a search looks through.
type Facets struct {
	Fields map[string]string
	Text   []string
}

// ListQuery narrows an admin list. Filters must equal the item's field
// (case-insensitive); Search is a case-insensitive substring of any text.
type ListQuery struct {
	Filters map[string]string
	Search  string
}

// IsZero reports whether q matches everything.
func (q ListQuery) IsZero() bool {
	return len(q.Filters) == 0 && strings.TrimSpace(q.Search) == ""
}

// FilterKeys returns the filter names facets accepts.
func FilterKeys[T any](facets func(T) Facets) []string {
	var zero T
	fields := facets(zero).Fields
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	return keys
}

// FilterList returns the items of list that match q, in order.
func FilterList[T any](list []T, q ListQuery, facets func(T) Facets) []T {
	if q.IsZero() {
		return list
	}
	search := strings.ToLower(strings.TrimSpace(q.Search))

	out := make([]T, 0, len(list))
	for _, item := range list {
		if f := facets(item); f.match(q.Filters, search) {
			out = append(out, item)
		}
	}
	return out
}

func (f Facets) match(filters map[string]string, search string) bool {
	for k, want := range filters {
		got, ok := f.Fields[k]
		if !ok || !strings.EqualFold(got, want) {
			return false
		}
	}
	if search == "" {
		return true
	}
	for _, t := range f.Text {
		if strings.Contains(strings.ToLower(t), search) {
			return true
		}
	}
	return false
}

func flag(b bool) string { return strconv.FormatBool(b) }

// SolutionFacets filters solutions by category, featured and active.
func SolutionFacets(s store.Solution) Facets {
	return Facets{
		Fields: map[string]string{
			"category":    s.Category,
			"is_featured": flag(s.IsFeatured),
			"is_active":   flag(s.IsActive),
		},
		Text: []string{s.Title, s.Description, s.DetailedContent},
	}
}

// BlogPostFacets filters posts by status, category and featured.
func BlogPostFacets(p store.BlogPost) Facets {
	return Facets{
		Fields: map[string]string{
			"status":      p.Status,
			"category":    p.Category,
			"is_featured": flag(p.IsFeatured),
		},
		Text: []string{p.Title, p.Excerpt, p.Content},
	}
}

// ArticleFacets filters articles by status, type and featured.
func ArticleFacets(a store.Article) Facets {
	return Facets{
		Fields: map[string]string{
			"status":       a.Status,
			"article_type": a.ArticleType,
			"is_featured":  flag(a.IsFeatured),
		},
		Text: []string{a.Title, a.Excerpt},
	}
}

// EventFacets filters events by type, status and featured.
func EventFacets(e store.Event) Facets {
	return Facets{
		Fields: map[string]string{
			"event_type":  e.EventType,
			"status":      e.Status,
			"is_featured": flag(e.IsFeatured),
		},
		Text: []string{e.Title, e.Description, e.Location},
	}
}

// GalleryItemFacets filters gallery items by category and featured.
func GalleryItemFacets(g store.GalleryItem) Facets {
	return Facets{
		Fields: map[string]string{
			"category":    g.Category,
			"is_featured": flag(g.IsFeatured),
		},
		Text: []string{g.Title, g.Description, g.EventName, g.Location},
	}
}

// TeamMemberFacets filters team members by active.
func TeamMemberFacets(m store.TeamMember) Facets {
	return Facets{
		Fields: map[string]string{"is_active": flag(m.IsActive)},
		Text:   []string{m.Name, m.Role, m.Email},
	}
}

// InquiryFacets filters inquiries by triage flags, country and job title.
func InquiryFacets(i store.ContactInquiry) Facets {
	return Facets{
		Fields: map[string]string{
			"is_read":      flag(i.IsRead),
			"is_responded": flag(i.IsResponded),
			"country":      i.Country,
			"job_title":    i.JobTitle,
		},
		Text: []string{i.Name, i.Email, i.Company, i.Message},
	}
}

// FeedbackFacets filters feedback by rating and moderation flags.
func FeedbackFacets(f store.Feedback) Facets {
	return Facets{
		Fields: map[string]string{
			"rating":      strconv.FormatInt(f.Rating, 10),
			"is_approved": flag(f.IsApproved),
			"is_featured": flag(f.IsFeatured),
		},
		Text: []string{f.Name, f.Email, f.Company, f.Comment},
	}
}

// SubscriberFacets filters subscribers by active.
func SubscriberFacets(s store.NewsletterSubscriber) Facets {
	return Facets{
		Fields: map[string]string{"is_active": flag(s.IsActive)},
		Text:   []string{s.Email, s.Name},
	}
}

// UserFacets filters users by role and active.
func UserFacets(u store.User) Facets {
	return Facets{
		Fields: map[string]string{
			"role":      u.Role,
			"is_active": flag(u.IsActive),
		},
		Text: []string{u.Username, u.Email, u.FirstName, u.LastName},
	}
}
