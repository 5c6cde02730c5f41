// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package util provides small helpers shared across the site packages:
// slug generation, client address extraction, nullable column values and
// safe path handling for uploads.
package util

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/mozillazg/go-unidecode"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	slugRegex       = regexp.MustCompile(`[^a-z0-9-]+`)
	multipleHyphens = regexp.MustCompile(`-{2,}`)
)

// Slugify converts a title to a URL slug: accents are stripped, other
// scripts are transliterated to ASCII, whitespace becomes hyphens and
// anything outside [a-z0-9-] is dropped.
func Slugify(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, s)
	result = unidecode.Unidecode(result)

	result = strings.ToLower(result)
	result = strings.Join(strings.Fields(result), "-")
	result = slugRegex.ReplaceAllString(result, "")
	result = multipleHyphens.ReplaceAllString(result, "-")
	return strings.Trim(result, "-")
}

// SlugifyMax is Slugify cut to at most n bytes without a trailing hyphen.
func SlugifyMax(s string, n int) string {
	return TruncateSlug(Slugify(s), n)
}

// TruncateSlug cuts slug to at most n bytes and trims a dangling hyphen.
// Slugs are ASCII, so byte and rune length agree.
func TruncateSlug(slug string, n int) string {
	if n <= 0 || len(slug) <= n {
		return slug
	}
	return strings.TrimRight(slug[:n], "-")
}
