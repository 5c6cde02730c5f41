// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package service

// Page is one page of a list result.
type Page[T any] struct {
	Items      []T   `json:"items"`
	Number     int   `json:"page"`
	PerPage    int   `json:"per_page"`
	TotalItems int64 `json:"total"`
	TotalPages int   `json:"pages"`
	HasPrev    bool  `json:"has_prev"`
	HasNext    bool  `json:"has_next"`
}

// TotalPages returns the number of pages for total items, at least 1.
func TotalPages(total int64, perPage int) int {
	if perPage <= 0 || total <= 0 {
		return 1
	}
	return int((total + int64(perPage) - 1) / int64(perPage))
}

// ClampPage moves page into [1, pages].
func ClampPage(page, pages int) int {
	if page < 1 {
		return 1
	}
	if page > pages {
		return pages
	}
	return page
}

// newPage builds an empty page for the requested number, clamped to the
// available range. Requests past the end get the last page.
func newPage[T any](requested, perPage int, total int64) Page[T] {
	pages := TotalPages(total, perPage)
	n := ClampPage(requested, pages)
	return Page[T]{
		Items:      []T{},
		Number:     n,
		PerPage:    perPage,
		TotalItems: total,
		TotalPages: pages,
		HasPrev:    n > 1,
		HasNext:    n < pages,
	}
}

func (p Page[T]) offset() int64 {
	return int64((p.Number - 1) * p.PerPage)
}

func (p *Page[T]) fill(items []T) {
	if items != nil {
		p.Items = items
	}
}
