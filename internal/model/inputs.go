// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// Rich text source formats accepted for HTML content fields.
const (
	FormatHTML     = "html"
	FormatMarkdown = "markdown"
)

func validFormat(v *validator, f string) {
	if f != "" && f != FormatHTML && f != FormatMarkdown {
		v.add("format", "Format must be html or markdown.")
	}
}

// SiteSettingsInput is the write model for the site settings singleton.
type SiteSettingsInput struct {
	SiteName     string `json:"site_name"`
	Logo         string `json:"logo"`
	Favicon      string `json:"favicon"`
	ContactEmail string `json:"contact_email"`
	ContactPhone string `json:"contact_phone"`
	Address      string `json:"address"`
	FacebookURL  string `json:"facebook_url"`
	TwitterURL   string `json:"twitter_url"`
	LinkedinURL  string `json:"linkedin_url"`
	InstagramURL string `json:"instagram_url"`
	YoutubeURL   string `json:"youtube_url"`
}

// Validate checks the settings input.
func (in *SiteSettingsInput) Validate() error {
	v := newValidator()
	v.required("site_name", in.SiteName)
	v.maxLen("site_name", in.SiteName, 100)
	v.optionalEmail("contact_email", in.ContactEmail)
	v.maxLen("contact_phone", in.ContactPhone, 20)
	v.optionalURL("facebook_url", in.FacebookURL)
	v.optionalURL("twitter_url", in.TwitterURL)
	v.optionalURL("linkedin_url", in.LinkedinURL)
	v.optionalURL("instagram_url", in.InstagramURL)
	v.optionalURL("youtube_url", in.YoutubeURL)
	return v.err()
}

// AboutInput is the write model for the about-us record.
type AboutInput struct {
	Title             string `json:"title"`
	CompanyBackground string `json:"company_background"`
	Mission           string `json:"mission"`
	Vision            string `json:"vision"`
	Values            string `json:"values"`
	FoundedYear       int    `json:"founded_year"`
	EmployeesCount    int    `json:"employees_count"`
	ClientsCount      int    `json:"clients_count"`
	CountriesCount    int    `json:"countries_count"`
	SuccessRate       int    `json:"success_rate"`
	Format            string `json:"format"`
}

// Validate checks the about input. success_rate is a percentage.
func (in *AboutInput) Validate() error {
	v := newValidator()
	v.required("title", in.Title)
	v.maxLen("title", in.Title, 200)
	v.required("company_background", in.CompanyBackground)
	v.required("mission", in.Mission)
	v.required("vision", in.Vision)
	v.nonNegative("founded_year", in.FoundedYear)
	v.nonNegative("employees_count", in.EmployeesCount)
	v.nonNegative("clients_count", in.ClientsCount)
	v.nonNegative("countries_count", in.CountriesCount)
	v.intRange("success_rate", in.SuccessRate, 0, 100)
	validFormat(v, in.Format)
	return v.err()
}

// SolutionInput is the write model for solutions.
type SolutionInput struct {
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	DetailedContent string     `json:"detailed_content"`
	Category        string     `json:"category"`
	Icon            string     `json:"icon"`
	Features        StringList `json:"features"`
	Benefits        StringList `json:"benefits"`
	UseCases        StringList `json:"use_cases"`
	FAQs            FAQList    `json:"faqs"`
	Image           string     `json:"image"`
	IsFeatured      bool       `json:"is_featured"`
	IsActive        bool       `json:"is_active"`
	Order           int        `json:"order"`
	Format          string     `json:"format"`
}

// Validate checks the solution input.
func (in *SolutionInput) Validate() error {
	v := newValidator()
	v.required("title", in.Title)
	v.maxLen("title", in.Title, 200)
	v.required("description", in.Description)
	v.choice("category", in.Category, SolutionCategories, false)
	v.required("icon", in.Icon)
	v.maxLen("icon", in.Icon, 50)
	v.list("features", in.Features)
	v.list("benefits", in.Benefits)
	v.list("use_cases", in.UseCases)
	v.list("faqs", in.FAQs)
	v.nonNegative("order", in.Order)
	validFormat(v, in.Format)
	return v.err()
}

// ContactInquiryInput is a public contact form submission.
type ContactInquiryInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Company  string `json:"company"`
	Country  string `json:"country"`
	JobTitle string `json:"job_title"`
	Message  string `json:"message"`
}

// Validate checks the inquiry. Country and job title may be blank.
func (in *ContactInquiryInput) Validate() error {
	v := newValidator()
	v.required("name", in.Name)
	v.maxLen("name", in.Name, 100)
	v.email("email", in.Email)
	v.maxLen("phone", in.Phone, 20)
	v.maxLen("company", in.Company, 100)
	v.choice("country", in.Country, Countries, true)
	v.choice("job_title", in.JobTitle, JobTitles, true)
	v.required("message", in.Message)
	return v.err()
}

// InquiryUpdateInput is the admin-side triage of an inquiry.
type InquiryUpdateInput struct {
	IsRead        bool   `json:"is_read"`
	IsResponded   bool   `json:"is_responded"`
	ResponseNotes string `json:"response_notes"`
}

// FeedbackInput is a public testimonial submission.
type FeedbackInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// Validate checks the feedback. Rating must be 1 to 5.
func (in *FeedbackInput) Validate() error {
	v := newValidator()
	v.required("name", in.Name)
	v.maxLen("name", in.Name, 100)
	v.email("email", in.Email)
	v.maxLen("company", in.Company, 100)
	v.intRange("rating", in.Rating, 1, 5)
	v.required("comment", in.Comment)
	return v.err()
}

// FeedbackModerationInput is the admin-side moderation of feedback.
type FeedbackModerationInput struct {
	IsApproved bool   `json:"is_approved"`
	IsFeatured bool   `json:"is_featured"`
	Avatar     string `json:"avatar"`
}

// BlogPostInput is the write model for blog posts.
type BlogPostInput struct {
	Title         string     `json:"title"`
	Slug          string     `json:"slug"`
	Excerpt       string     `json:"excerpt"`
	Content       string     `json:"content"`
	Author        string     `json:"author"`
	Category      string     `json:"category"`
	Tags          StringList `json:"tags"`
	FeaturedImage string     `json:"featured_image"`
	IsFeatured    bool       `json:"is_featured"`
	Status        string     `json:"status"`
	ReadTime      int        `json:"read_time"`
	Format        string     `json:"format"`
}

// DefaultReadTime is the read time in minutes used when none is given.
const DefaultReadTime = 5

// Normalize fills defaults before validation.
func (in *BlogPostInput) Normalize() {
	if in.Status == "" {
		in.Status = StatusDraft
	}
	if in.ReadTime == 0 {
		in.ReadTime = DefaultReadTime
	}
}

// Validate checks the blog post. The slug must already be set.
func (in *BlogPostInput) Validate() error {
	v := newValidator()
	v.required("title", in.Title)
	v.maxLen("title", in.Title, 200)
	if in.Slug == "" {
		v.add("slug", "This field is required.")
	} else if !IsValidSlug(in.Slug) {
		v.add("slug", "Enter a valid slug consisting of lowercase letters, numbers or hyphens.")
	}
	v.maxLen("slug", in.Slug, 50)
	v.required("excerpt", in.Excerpt)
	v.maxLen("excerpt", in.Excerpt, 300)
	v.required("content", in.Content)
	v.maxLen("author", in.Author, 100)
	v.choice("category", in.Category, BlogCategories, false)
	v.list("tags", in.Tags)
	v.choice("status", in.Status, BlogStatuses, false)
	if in.ReadTime < 1 {
		v.add("read_time", "Ensure this value is greater than or equal to 1.")
	}
	validFormat(v, in.Format)
	return v.err()
}

// ArticleInput is the write model for articles.
type ArticleInput struct {
	Title         string `json:"title"`
	Content       string `json:"content"`
	Excerpt       string `json:"excerpt"`
	Category      string `json:"category"`
	Status        string `json:"status"`
	ArticleType   string `json:"article_type"`
	Author        string `json:"author"`
	FeaturedImage string `json:"featured_image"`
	PDFFile       string `json:"pdf_file"`
	IsFeatured    bool   `json:"is_featured"`
	Format        string `json:"format"`
}

// Normalize fills defaults before validation.
func (in *ArticleInput) Normalize() {
	if in.Status == "" {
		in.Status = StatusDraft
	}
	if in.ArticleType == "" {
		in.ArticleType = DefaultArticleType
	}
}

// Validate checks the article input.
func (in *ArticleInput) Validate() error {
	v := newValidator()
	v.required("title", in.Title)
	v.maxLen("title", in.Title, 200)
	v.required("content", in.Content)
	v.required("excerpt", in.Excerpt)
	v.required("category", in.Category)
	v.maxLen("category", in.Category, 100)
	v.choice("status", in.Status, ArticleStatuses, false)
	v.choice("article_type", in.ArticleType, ArticleTypes, false)
	v.maxLen("author", in.Author, 100)
	validFormat(v, in.Format)
	return v.err()
}

// DefaultEventPrice is the price shown for events without one.
const DefaultEventPrice = "Free"

// EventInput is the write model for events.
type EventInput struct {
	Title           string      `json:"title"`
	Description     string      `json:"description"`
	EventType       string      `json:"event_type"`
	Date            string      `json:"date"`
	Time            string      `json:"time"`
	Location        string      `json:"location"`
	Capacity        int         `json:"capacity"`
	Price           string      `json:"price"`
	FeaturedImage   string      `json:"featured_image"`
	Speakers        SpeakerList `json:"speakers"`
	Agenda          AgendaList  `json:"agenda"`
	Status          string      `json:"status"`
	IsFeatured      bool        `json:"is_featured"`
	RegistrationURL string      `json:"registration_url"`
	Format          string      `json:"format"`
}

// Normalize fills defaults before validation.
func (in *EventInput) Normalize() {
	if in.Status == "" {
		in.Status = EventStatusUpcoming
	}
	if in.Price == "" {
		in.Price = DefaultEventPrice
	}
}

// Validate checks the event input.
func (in *EventInput) Validate() error {
	v := newValidator()
	v.required("title", in.Title)
	v.maxLen("title", in.Title, 200)
	v.required("description", in.Description)
	v.choice("event_type", in.EventType, EventTypes, false)
	v.date("date", in.Date, true)
	v.clock("time", in.Time)
	v.required("location", in.Location)
	v.maxLen("location", in.Location, 200)
	v.nonNegative("capacity", in.Capacity)
	v.maxLen("price", in.Price, 50)
	v.list("speakers", in.Speakers)
	v.list("agenda", in.Agenda)
	v.choice("status", in.Status, EventStatuses, false)
	v.optionalURL("registration_url", in.RegistrationURL)
	validFormat(v, in.Format)
	return v.err()
}

// RegistrationInput is a public event registration.
type RegistrationInput struct {
	Name                string `json:"name"`
	Email               string `json:"email"`
	Phone               string `json:"phone"`
	Company             string `json:"company"`
	JobTitle            string `json:"job_title"`
	SpecialRequirements string `json:"special_requirements"`
}

// Validate checks the registration input.
func (in *RegistrationInput) Validate() error {
	v := newValidator()
	v.required("name", in.Name)
	v.maxLen("name", in.Name, 100)
	v.email("email", in.Email)
	v.maxLen("phone", in.Phone, 20)
	v.maxLen("company", in.Company, 100)
	v.maxLen("job_title", in.JobTitle, 100)
	return v.err()
}

// RegistrationUpdateInput is the admin-side update of a registration.
type RegistrationUpdateInput struct {
	IsConfirmed bool `json:"is_confirmed"`
	Attended    bool `json:"attended"`
}

// GalleryItemInput is the write model for gallery items.
type GalleryItemInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Thumbnail   string `json:"thumbnail"`
	Category    string `json:"category"`
	EventDate   string `json:"event_date"`
	Location    string `json:"location"`
	EventName   string `json:"event_name"`
	IsFeatured  bool   `json:"is_featured"`
	Order       int    `json:"order"`
	Format      string `json:"format"`
}

// Validate checks the gallery input. An image is required.
func (in *GalleryItemInput) Validate() error {
	v := newValidator()
	v.required("title", in.Title)
	v.maxLen("title", in.Title, 200)
	v.required("description", in.Description)
	v.required("image", in.Image)
	v.choice("category", in.Category, GalleryCategories, false)
	v.date("event_date", in.EventDate, true)
	v.required("location", in.Location)
	v.maxLen("location", in.Location, 200)
	v.required("event_name", in.EventName)
	v.maxLen("event_name", in.EventName, 200)
	v.nonNegative("order", in.Order)
	validFormat(v, in.Format)
	return v.err()
}

// NewsletterInput is a public newsletter subscription.
type NewsletterInput struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Validate checks the subscription input.
func (in *NewsletterInput) Validate() error {
	v := newValidator()
	v.email("email", in.Email)
	v.maxLen("name", in.Name, 100)
	return v.err()
}

// TeamMemberInput is the write model for team members.
type TeamMemberInput struct {
	Name        string `json:"name"`
	Role        string `json:"role"`
	Bio         string `json:"bio"`
	Photo       string `json:"photo"`
	Email       string `json:"email"`
	LinkedinURL string `json:"linkedin_url"`
	Order       int    `json:"order"`
	IsActive    bool   `json:"is_active"`
	Format      string `json:"format"`
}

// Validate checks the team member input.
func (in *TeamMemberInput) Validate() error {
	v := newValidator()
	v.required("name", in.Name)
	v.maxLen("name", in.Name, 100)
	v.required("role", in.Role)
	v.maxLen("role", in.Role, 100)
	v.required("bio", in.Bio)
	v.optionalEmail("email", in.Email)
	v.optionalURL("linkedin_url", in.LinkedinURL)
	v.nonNegative("order", in.Order)
	validFormat(v, in.Format)
	return v.err()
}
