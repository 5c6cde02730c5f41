// Package seo builds the crawler-facing documents of the public site:
// sitemap.xml and robots.txt.
package seo

import (
	"encoding/xml"
	"strconv"
	"strings"
	"time"
)

// XMLNamespace is the sitemap XML namespace.
const XMLNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

// ChangeFreq represents the change frequency of a URL.
type ChangeFreq string

// Valid change frequency values.
const (
	ChangeFreqAlways  ChangeFreq = "always"
	ChangeFreqHourly  ChangeFreq = "hourly"
	ChangeFreqDaily   ChangeFreq = "daily"
	ChangeFreqWeekly  ChangeFreq = "weekly"
	ChangeFreqMonthly ChangeFreq = "monthly"
	ChangeFreqYearly  ChangeFreq = "yearly"
	ChangeFreqNever   ChangeFreq = "never"
)

// SitemapURL represents a single URL entry in the sitemap.
type SitemapURL struct {
	Loc        string     `xml:"loc"`
	LastMod    string     `xml:"lastmod,omitempty"`
	ChangeFreq ChangeFreq `xml:"changefreq,omitempty"`
	Priority   string     `xml:"priority,omitempty"`
}

// Sitemap represents the complete sitemap document.
type Sitemap struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []SitemapURL `xml:"url"`
}

// Sections are the listing pages of the public site.
var Sections = []string{"/about", "/solutions", "/blog", "/articles", "/events", "/gallery", "/contact"}

// SitemapBuilder builds sitemap XML from site content.
type SitemapBuilder struct {
	siteURL string
	urls    []SitemapURL
}

// NewSitemapBuilder creates a new sitemap builder. A trailing slash on
// siteURL is dropped.
func NewSitemapBuilder(siteURL string) *SitemapBuilder {
	return &SitemapBuilder{
		siteURL: strings.TrimSuffix(siteURL, "/"),
		urls:    make([]SitemapURL, 0),
	}
}

// AddHomepage adds the homepage to the sitemap.
func (b *SitemapBuilder) AddHomepage() {
	b.urls = append(b.urls, SitemapURL{
		Loc:        b.siteURL + "/",
		ChangeFreq: ChangeFreqDaily,
		Priority:   "1.0",
	})
}

// AddSections adds the listing pages.
func (b *SitemapBuilder) AddSections() {
	for _, s := range Sections {
		b.add(s, time.Time{}, ChangeFreqWeekly, "0.8")
	}
}

// AddSolution adds a solution detail page.
func (b *SitemapBuilder) AddSolution(id int64, updatedAt time.Time) {
	b.add("/solutions/"+strconv.FormatInt(id, 10), updatedAt, ChangeFreqMonthly, "0.7")
}

// AddBlogPost adds a blog post page.
func (b *SitemapBuilder) AddBlogPost(slug string, updatedAt time.Time) {
	b.add("/blog/"+slug, updatedAt, ChangeFreqWeekly, "0.6")
}

// AddArticle adds an article page.
func (b *SitemapBuilder) AddArticle(id int64, updatedAt time.Time) {
	b.add("/articles/"+strconv.FormatInt(id, 10), updatedAt, ChangeFreqMonthly, "0.6")
}

// AddEvent adds an event page.
func (b *SitemapBuilder) AddEvent(id int64, updatedAt time.Time) {
	b.add("/events/"+strconv.FormatInt(id, 10), updatedAt, ChangeFreqWeekly, "0.5")
}

func (b *SitemapBuilder) add(path string, updatedAt time.Time, freq ChangeFreq, priority string) {
	url := SitemapURL{
		Loc:        b.siteURL + path,
		ChangeFreq: freq,
		Priority:   priority,
	}
	if !updatedAt.IsZero() {
		url.LastMod = updatedAt.UTC().Format(time.RFC3339)
	}
	b.urls = append(b.urls, url)
}

// Len returns the number of URLs added so far.
func (b *SitemapBuilder) Len() int {
	return len(b.urls)
}

// Build generates the sitemap XML.
func (b *SitemapBuilder) Build() ([]byte, error) {
	sitemap := Sitemap{
		XMLNS: XMLNamespace,
		URLs:  b.urls,
	}

	output := []byte(xml.Header)
	xmlBytes, err := xml.MarshalIndent(sitemap, "", "  ")
	if err != nil {
		return nil, err
	}

	return append(output, xmlBytes...), nil
}
