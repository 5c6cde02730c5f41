// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package seo

import (
	"strings"
)

// DefaultDisallow lists what crawlers never need: the JSON APIs, the
// operational probes, private contact attachments and blog search results.
var DefaultDisallow = []string{
	"/api/",
	"/health",
	"/metrics",
	"/media/contact_attachments/",
	"/blog?search=",
}

// Robots describes a robots.txt document.
type Robots struct {
	SiteURL     string   // base URL for the Sitemap line
	DisallowAll bool     // staging and development sites
	Disallow    []string // in addition to DefaultDisallow
	ExtraRules  string   // appended verbatim
}

// Build renders the document. Every rule applies to all user agents.
func (r Robots) Build() string {
	var sb strings.Builder
	sb.WriteString("User-agent: *\n")

	if r.DisallowAll {
		sb.WriteString("Disallow: /\n")
	} else {
		for _, list := range [][]string{DefaultDisallow, r.Disallow} {
			for _, p := range list {
				sb.WriteString("Disallow: " + p + "\n")
			}
		}
		sb.WriteString("Allow: /\n")
	}

	if extra := strings.TrimRight(r.ExtraRules, "\n"); extra != "" {
		sb.WriteString("\n" + extra + "\n")
	}

	// A blocked site does not advertise its sitemap.
	if r.SiteURL != "" && !r.DisallowAll {
		sb.WriteString("\nSitemap: " + strings.TrimSuffix(r.SiteURL, "/") + "/sitemap.xml\n")
	}
	return sb.String()
}
