// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// Choice is one allowed value of an enumerated field with its display label.
type Choice struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

func inChoices(choices []Choice, v string) bool {
	for _, c := range choices {
		if c.Value == v {
			return true
		}
	}
	return false
}

// ChoiceLabel returns the label for v, or v itself when it is not listed.
func ChoiceLabel(choices []Choice, v string) string {
	for _, c := range choices {
		if c.Value == v {
			return c.Label
		}
	}
	return v
}

// Solution categories.
var SolutionCategories = []Choice{
	{Value: "healthcare", Label: "Healthcare"},
	{Value: "finance", Label: "Finance"},
	{Value: "education", Label: "Education"},
}

// Contact inquiry countries.
var Countries = []Choice{
	{Value: "US", Label: "United States"},
	{Value: "CA", Label: "Canada"},
	{Value: "UK", Label: "United Kingdom"},
	{Value: "DE", Label: "Germany"},
	{Value: "FR", Label: "France"},
	{Value: "AU", Label: "Australia"},
	{Value: "JP", Label: "Japan"},
	{Value: "KR", Label: "South Korea"},
	{Value: "SG", Label: "Singapore"},
	{Value: "IN", Label: "India"},
	{Value: "BR", Label: "Brazil"},
	{Value: "MX", Label: "Mexico"},
	{Value: "NP", Label: "Nepal"},
	{Value: "OTHER", Label: "Other"},
}

// Contact inquiry job titles.
var JobTitles = []Choice{
	{Value: "ceo", Label: "CEO/President"},
	{Value: "cto", Label: "CTO/VP Technology"},
	{Value: "director", Label: "IT Director"},
	{Value: "scientist", Label: "Data Scientist"},
	{Value: "engineer", Label: "Software Engineer"},
	{Value: "manager", Label: "Product Manager"},
	{Value: "analyst", Label: "Business Analyst"},
	{Value: "consultant", Label: "Consultant"},
	{Value: "other", Label: "Other"},
}

// Blog post statuses.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
	StatusArchived  = "archived"
)

// BlogStatuses lists the blog post lifecycle states.
var BlogStatuses = []Choice{
	{Value: StatusDraft, Label: "Draft"},
	{Value: StatusPublished, Label: "Published"},
	{Value: StatusArchived, Label: "Archived"},
}

// ArticleStatuses lists the article lifecycle states. Articles are never archived.
var ArticleStatuses = []Choice{
	{Value: StatusDraft, Label: "Draft"},
	{Value: StatusPublished, Label: "Published"},
}

// Blog post categories.
var BlogCategories = []Choice{
	{Value: "healthcare", Label: "Healthcare"},
	{Value: "finance", Label: "Finance"},
	{Value: "education", Label: "Education"},
	{Value: "technology", Label: "Technology"},
	{Value: "ethics", Label: "Ethics"},
	{Value: "tutorial", Label: "Tutorial"},
	{Value: "news", Label: "News"},
}

// DefaultArticleType is used when an article is saved without a type.
const DefaultArticleType = "industry_report"

// Article types.
var ArticleTypes = []Choice{
	{Value: "industry_report", Label: "Industry Report"},
	{Value: "research_paper", Label: "Research Paper"},
	{Value: "white_paper", Label: "White Paper"},
	{Value: "technical_paper", Label: "Technical Paper"},
	{Value: "market_analysis", Label: "Market Analysis"},
	{Value: "framework_guide", Label: "Framework Guide"},
}

// Event statuses.
const (
	EventStatusUpcoming  = "upcoming"
	EventStatusOngoing   = "ongoing"
	EventStatusCompleted = "completed"
	EventStatusCancelled = "cancelled"
)

// EventStatuses lists the event lifecycle states.
var EventStatuses = []Choice{
	{Value: EventStatusUpcoming, Label: "Upcoming"},
	{Value: EventStatusOngoing, Label: "Ongoing"},
	{Value: EventStatusCompleted, Label: "Completed"},
	{Value: EventStatusCancelled, Label: "Cancelled"},
}

// Event types.
var EventTypes = []Choice{
	{Value: "conference", Label: "Conference"},
	{Value: "workshop", Label: "Workshop"},
	{Value: "webinar", Label: "Webinar"},
	{Value: "showcase", Label: "Showcase"},
	{Value: "symposium", Label: "Symposium"},
}

// Gallery categories.
var GalleryCategories = []Choice{
	{Value: "conference", Label: "Conference"},
	{Value: "product_launch", Label: "Product Launch"},
	{Value: "workshop", Label: "Workshop"},
	{Value: "symposium", Label: "Symposium"},
	{Value: "team_event", Label: "Team Event"},
	{Value: "demo", Label: "Demo"},
	{Value: "tour", Label: "Tour"},
	{Value: "award", Label: "Award"},
	{Value: "partnership", Label: "Partnership"},
}

// Activity log actions.
const (
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
	ActionView   = "view"
)

// Actions lists the activity log actions.
var Actions = []Choice{
	{Value: ActionCreate, Label: "Created"},
	{Value: ActionUpdate, Label: "Updated"},
	{Value: ActionDelete, Label: "Deleted"},
	{Value: ActionView, Label: "Viewed"},
}

// IsValidAction reports whether a is a known activity action.
func IsValidAction(a string) bool {
	return inChoices(Actions, a)
}

// IsValidSolutionCategory reports whether c is a solution category.
func IsValidSolutionCategory(c string) bool { return inChoices(SolutionCategories, c) }

// IsValidBlogCategory reports whether c is a blog category.
func IsValidBlogCategory(c string) bool { return inChoices(BlogCategories, c) }

// IsValidArticleType reports whether t is an article type.
func IsValidArticleType(t string) bool { return inChoices(ArticleTypes, t) }

// IsValidEventType reports whether t is an event type.
func IsValidEventType(t string) bool { return inChoices(EventTypes, t) }

// IsValidEventStatus reports whether s is an event status.
func IsValidEventStatus(s string) bool { return inChoices(EventStatuses, s) }

// IsValidGalleryCategory reports whether c is a gallery category.
func IsValidGalleryCategory(c string) bool { return inChoices(GalleryCategories, c) }

// IsValidCountry reports whether c is one of the listed inquiry countries.
func IsValidCountry(c string) bool { return inChoices(Countries, c) }

// AllChoices returns every choice set keyed by field name, for front-end forms.
func AllChoices() map[string][]Choice {
	return map[string][]Choice{
		"roles":               Roles,
		"solution_categories": SolutionCategories,
		"countries":           Countries,
		"job_titles":          JobTitles,
		"blog_statuses":       BlogStatuses,
		"blog_categories":     BlogCategories,
		"article_statuses":    ArticleStatuses,
		"article_types":       ArticleTypes,
		"event_statuses":      EventStatuses,
		"event_types":         EventTypes,
		"gallery_categories":  GalleryCategories,
		"actions":             Actions,
	}
}
