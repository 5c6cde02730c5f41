// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"time"

	"github.com/olegiv/aisite/internal/model"
	"github.com/olegiv/aisite/internal/store"
	"github.com/olegiv/aisite/internal/util"
)

// SiteSettingsResponse represents the site settings in API responses.
type SiteSettingsResponse struct {
	SiteName     string    `json:"site_name"`
	Logo         string    `json:"logo"`
	Favicon      string    `json:"favicon"`
	ContactEmail string    `json:"contact_email"`
	ContactPhone string    `json:"contact_phone"`
	Address      string    `json:"address"`
	FacebookURL  string    `json:"facebook_url"`
	TwitterURL   string    `json:"twitter_url"`
	LinkedinURL  string    `json:"linkedin_url"`
	InstagramURL string    `json:"instagram_url"`
	YoutubeURL   string    `json:"youtube_url"`
	UpdatedBy    *int64    `json:"updated_by,omitempty"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func siteSettingsToResponse(s store.SiteSetting) SiteSettingsResponse {
	return SiteSettingsResponse{
		SiteName:     s.SiteName,
		Logo:         s.Logo,
		Favicon:      s.Favicon,
		ContactEmail: s.ContactEmail,
		ContactPhone: s.ContactPhone,
		Address:      s.Address,
		FacebookURL:  s.FacebookURL,
		TwitterURL:   s.TwitterURL,
		LinkedinURL:  s.LinkedinURL,
		InstagramURL: s.InstagramURL,
		YoutubeURL:   s.YoutubeURL,
		UpdatedBy:    util.Int64Ptr(s.UpdatedBy),
		UpdatedAt:    s.UpdatedAt,
	}
}

// AboutResponse represents the about-us record in API responses.
type AboutResponse struct {
	Title             string    `json:"title"`
	CompanyBackground string    `json:"company_background"`
	Mission           string    `json:"mission"`
	Vision            string    `json:"vision"`
	Values            string    `json:"values"`
	FoundedYear       int64     `json:"founded_year"`
	EmployeesCount    int64     `json:"employees_count"`
	ClientsCount      int64     `json:"clients_count"`
	CountriesCount    int64     `json:"countries_count"`
	SuccessRate       int64     `json:"success_rate"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func aboutToResponse(a store.AboutUs) AboutResponse {
	return AboutResponse{
		Title:             a.Title,
		CompanyBackground: a.CompanyBackground,
		Mission:           a.Mission,
		Vision:            a.Vision,
		Values:            a.Values,
		FoundedYear:       a.FoundedYear,
		EmployeesCount:    a.EmployeesCount,
		ClientsCount:      a.ClientsCount,
		CountriesCount:    a.CountriesCount,
		SuccessRate:       a.SuccessRate,
		UpdatedAt:         a.UpdatedAt,
	}
}

// SolutionResponse represents a solution in API responses.
type SolutionResponse struct {
	ID              int64            `json:"id"`
	Title           string           `json:"title"`
	Description     string           `json:"description"`
	DetailedContent string           `json:"detailed_content"`
	Category        string           `json:"category"`
	CategoryLabel   string           `json:"category_label"`
	Icon            string           `json:"icon"`
	Features        model.StringList `json:"features"`
	Benefits        model.StringList `json:"benefits"`
	UseCases        model.StringList `json:"use_cases"`
	FAQs            model.FAQList    `json:"faqs"`
	Image           string           `json:"image"`
	IsFeatured      bool             `json:"is_featured"`
	IsActive        bool             `json:"is_active"`
	Order           int64            `json:"order"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

func solutionToResponse(s store.Solution) SolutionResponse {
	return SolutionResponse{
		ID:              s.ID,
		Title:           s.Title,
		Description:     s.Description,
		DetailedContent: s.DetailedContent,
		Category:        s.Category,
		CategoryLabel:   model.ChoiceLabel(model.SolutionCategories, s.Category),
		Icon:            s.Icon,
		Features:        nonNil(s.Features),
		Benefits:        nonNil(s.Benefits),
		UseCases:        nonNil(s.UseCases),
		FAQs:            nonNil(s.FAQs),
		Image:           s.Image,
		IsFeatured:      s.IsFeatured,
		IsActive:        s.IsActive,
		Order:           s.SortOrder,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

// SolutionDetailResponse is a solution with related solutions.
type SolutionDetailResponse struct {
	SolutionResponse
	Related []SolutionResponse `json:"related"`
}

// BlogPostResponse represents a blog post in API responses.
type BlogPostResponse struct {
	ID            int64            `json:"id"`
	Title         string           `json:"title"`
	Slug          string           `json:"slug"`
	Excerpt       string           `json:"excerpt"`
	Content       string           `json:"content,omitempty"`
	Author        string           `json:"author"`
	Category      string           `json:"category"`
	CategoryLabel string           `json:"category_label"`
	Tags          model.StringList `json:"tags"`
	FeaturedImage string           `json:"featured_image"`
	IsFeatured    bool             `json:"is_featured"`
	Status        string           `json:"status"`
	ReadTime      int64            `json:"read_time"`
	ViewsCount    int64            `json:"views_count"`
	PublishedAt   *time.Time       `json:"published_at,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

func blogPostToResponse(p store.BlogPost) BlogPostResponse {
	return BlogPostResponse{
		ID:            p.ID,
		Title:         p.Title,
		Slug:          p.Slug,
		Excerpt:       p.Excerpt,
		Content:       p.Content,
		Author:        p.Author,
		Category:      p.Category,
		CategoryLabel: model.ChoiceLabel(model.BlogCategories, p.Category),
		Tags:          nonNil(p.Tags),
		FeaturedImage: p.FeaturedImage,
		IsFeatured:    p.IsFeatured,
		Status:        p.Status,
		ReadTime:      p.ReadTime,
		ViewsCount:    p.ViewsCount,
		PublishedAt:   util.TimePtr(p.PublishedAt),
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

// blogPostSummary drops the body for list views.
func blogPostSummary(p store.BlogPost) BlogPostResponse {
	resp := blogPostToResponse(p)
	resp.Content = ""
	return resp
}

// BlogPostDetailResponse is a blog post with related posts.
type BlogPostDetailResponse struct {
	BlogPostResponse
	Related []BlogPostResponse `json:"related"`
}

// ArticleResponse represents an article in API responses.
type ArticleResponse struct {
	ID            int64      `json:"id"`
	Title         string     `json:"title"`
	Content       string     `json:"content,omitempty"`
	Excerpt       string     `json:"excerpt"`
	Category      string     `json:"category"`
	Status        string     `json:"status"`
	ArticleType   string     `json:"article_type"`
	TypeLabel     string     `json:"article_type_label"`
	Author        string     `json:"author"`
	FeaturedImage string     `json:"featured_image"`
	HasPDF        bool       `json:"has_pdf"`
	PDFFile       string     `json:"pdf_file,omitempty"`
	IsFeatured    bool       `json:"is_featured"`
	DownloadCount int64      `json:"download_count"`
	PublishedAt   *time.Time `json:"published_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// articleToResponse converts an article. The stored PDF path is only
// exposed to staff; visitors download through the AJAX endpoint.
func articleToResponse(a store.Article, staff bool) ArticleResponse {
	resp := ArticleResponse{
		ID:            a.ID,
		Title:         a.Title,
		Content:       a.Content,
		Excerpt:       a.Excerpt,
		Category:      a.Category,
		Status:        a.Status,
		ArticleType:   a.ArticleType,
		TypeLabel:     model.ChoiceLabel(model.ArticleTypes, a.ArticleType),
		Author:        a.Author,
		FeaturedImage: a.FeaturedImage,
		HasPDF:        a.PdfFile != "",
		IsFeatured:    a.IsFeatured,
		DownloadCount: a.DownloadCount,
		PublishedAt:   util.TimePtr(a.PublishedAt),
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
	if staff {
		resp.PDFFile = a.PdfFile
	}
	return resp
}

// EventResponse represents an event in API responses.
type EventResponse struct {
	ID              int64             `json:"id"`
	Title           string            `json:"title"`
	Description     string            `json:"description"`
	EventType       string            `json:"event_type"`
	TypeLabel       string            `json:"event_type_label"`
	Date            string            `json:"date"`
	Time            string            `json:"time"`
	Location        string            `json:"location"`
	Capacity        int64             `json:"capacity"`
	Price           string            `json:"price"`
	FeaturedImage   string            `json:"featured_image"`
	Speakers        model.SpeakerList `json:"speakers"`
	Agenda          model.AgendaList  `json:"agenda"`
	Status          string            `json:"status"`
	IsFeatured      bool              `json:"is_featured"`
	RegistrationURL string            `json:"registration_url"`
	CreatedBy       *int64            `json:"created_by,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

func eventToResponse(e store.Event) EventResponse {
	return EventResponse{
		ID:              e.ID,
		Title:           e.Title,
		Description:     e.Description,
		EventType:       e.EventType,
		TypeLabel:       model.ChoiceLabel(model.EventTypes, e.EventType),
		Date:            e.EventDate,
		Time:            e.EventTime,
		Location:        e.Location,
		Capacity:        e.Capacity,
		Price:           e.Price,
		FeaturedImage:   e.FeaturedImage,
		Speakers:        nonNil(e.Speakers),
		Agenda:          nonNil(e.Agenda),
		Status:          e.Status,
		IsFeatured:      e.IsFeatured,
		RegistrationURL: e.RegistrationURL,
		CreatedBy:       util.Int64Ptr(e.CreatedBy),
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}

// GalleryItemResponse represents a gallery item in API responses.
type GalleryItemResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	Thumbnail   string    `json:"thumbnail"`
	Category    string    `json:"category"`
	EventDate   string    `json:"event_date"`
	Location    string    `json:"location"`
	EventName   string    `json:"event_name"`
	IsFeatured  bool      `json:"is_featured"`
	Order       int64     `json:"order"`
	UploadedBy  *int64    `json:"uploaded_by,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func galleryItemToResponse(g store.GalleryItem) GalleryItemResponse {
	return GalleryItemResponse{
		ID:          g.ID,
		Title:       g.Title,
		Description: g.Description,
		Image:       g.Image,
		Thumbnail:   g.Thumbnail,
		Category:    g.Category,
		EventDate:   g.EventDate,
		Location:    g.Location,
		EventName:   g.EventName,
		IsFeatured:  g.IsFeatured,
		Order:       g.SortOrder,
		UploadedBy:  util.Int64Ptr(g.UploadedBy),
		CreatedAt:   g.CreatedAt,
	}
}

// TeamMemberResponse represents a team member in API responses.
type TeamMemberResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Role        string `json:"role"`
	Bio         string `json:"bio"`
	Photo       string `json:"photo"`
	Email       string `json:"email"`
	LinkedinURL string `json:"linkedin_url"`
	Order       int64  `json:"order"`
	IsActive    bool   `json:"is_active"`
}

func teamMemberToResponse(m store.TeamMember) TeamMemberResponse {
	return TeamMemberResponse{
		ID:          m.ID,
		Name:        m.Name,
		Role:        m.Role,
		Bio:         m.Bio,
		Photo:       m.Photo,
		Email:       m.Email,
		LinkedinURL: m.LinkedinURL,
		Order:       m.SortOrder,
		IsActive:    m.IsActive,
	}
}

// TestimonialResponse is approved feedback as shown to visitors. The
// submitter's email address is never published.
type TestimonialResponse struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Company    string    `json:"company"`
	Rating     int64     `json:"rating"`
	Comment    string    `json:"comment"`
	IsFeatured bool      `json:"is_featured"`
	Avatar     string    `json:"avatar"`
	CreatedAt  time.Time `json:"created_at"`
}

func testimonialToResponse(f store.Feedback) TestimonialResponse {
	return TestimonialResponse{
		ID:         f.ID,
		Name:       f.Name,
		Company:    f.Company,
		Rating:     f.Rating,
		Comment:    f.Comment,
		IsFeatured: f.IsFeatured,
		Avatar:     f.Avatar,
		CreatedAt:  f.CreatedAt,
	}
}

// FeedbackResponse is the staff view of feedback.
type FeedbackResponse struct {
	TestimonialResponse
	Email      string    `json:"email"`
	IsApproved bool      `json:"is_approved"`
	ApprovedBy *int64    `json:"approved_by,omitempty"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func feedbackToResponse(f store.Feedback) FeedbackResponse {
	return FeedbackResponse{
		TestimonialResponse: testimonialToResponse(f),
		Email:               f.Email,
		IsApproved:          f.IsApproved,
		ApprovedBy:          util.Int64Ptr(f.ApprovedBy),
		UpdatedAt:           f.UpdatedAt,
	}
}

// InquiryResponse represents a contact inquiry in API responses.
type InquiryResponse struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	Company       string    `json:"company"`
	Country       string    `json:"country"`
	CountryLabel  string    `json:"country_label"`
	JobTitle      string    `json:"job_title"`
	Message       string    `json:"message"`
	Attachment    string    `json:"attachment"`
	IsRead        bool      `json:"is_read"`
	IsResponded   bool      `json:"is_responded"`
	ResponseNotes string    `json:"response_notes"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func inquiryToResponse(i store.ContactInquiry) InquiryResponse {
	return InquiryResponse{
		ID:            i.ID,
		Name:          i.Name,
		Email:         i.Email,
		Phone:         i.Phone,
		Company:       i.Company,
		Country:       i.Country,
		CountryLabel:  model.ChoiceLabel(model.Countries, i.Country),
		JobTitle:      i.JobTitle,
		Message:       i.Message,
		Attachment:    i.Attachment,
		IsRead:        i.IsRead,
		IsResponded:   i.IsResponded,
		ResponseNotes: i.ResponseNotes,
		CreatedAt:     i.CreatedAt,
		UpdatedAt:     i.UpdatedAt,
	}
}

// RegistrationResponse represents an event registration in API responses.
type RegistrationResponse struct {
	ID                  int64     `json:"id"`
	EventID             int64     `json:"event_id"`
	Name                string    `json:"name"`
	Email               string    `json:"email"`
	Phone               string    `json:"phone"`
	Company             string    `json:"company"`
	JobTitle            string    `json:"job_title"`
	SpecialRequirements string    `json:"special_requirements"`
	IsConfirmed         bool      `json:"is_confirmed"`
	Attended            bool      `json:"attended"`
	CreatedAt           time.Time `json:"created_at"`
}

func registrationToResponse(r store.EventRegistration) RegistrationResponse {
	return RegistrationResponse{
		ID:                  r.ID,
		EventID:             r.EventID,
		Name:                r.Name,
		Email:               r.Email,
		Phone:               r.Phone,
		Company:             r.Company,
		JobTitle:            r.JobTitle,
		SpecialRequirements: r.SpecialRequirements,
		IsConfirmed:         r.IsConfirmed,
		Attended:            r.Attended,
		CreatedAt:           r.CreatedAt,
	}
}

// SubscriberResponse represents a newsletter subscriber in API responses.
type SubscriberResponse struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	IsActive     bool      `json:"is_active"`
	SubscribedAt time.Time `json:"subscribed_at"`
}

func subscriberToResponse(s store.NewsletterSubscriber) SubscriberResponse {
	return SubscriberResponse{
		ID:           s.ID,
		Email:        s.Email,
		Name:         s.Name,
		IsActive:     s.IsActive,
		SubscribedAt: s.SubscribedAt,
	}
}

// ActivityResponse represents an activity log entry in API responses.
type ActivityResponse struct {
	ID          int64     `json:"id"`
	UserID      *int64    `json:"user_id,omitempty"`
	Username    string    `json:"username"`
	Action      string    `json:"action"`
	ActionLabel string    `json:"action_label"`
	ContentType string    `json:"content_type"`
	ObjectID    int64     `json:"object_id"`
	ObjectRepr  string    `json:"object_repr"`
	IPAddress   string    `json:"ip_address"`
	CreatedAt   time.Time `json:"created_at"`
}

func activityToResponse(a store.ActivityLog) ActivityResponse {
	return ActivityResponse{
		ID:          a.ID,
		UserID:      util.Int64Ptr(a.UserID),
		Username:    a.Username,
		Action:      a.Action,
		ActionLabel: model.ChoiceLabel(model.Actions, a.Action),
		ContentType: a.ContentType,
		ObjectID:    a.ObjectID,
		ObjectRepr:  a.ObjectRepr,
		IPAddress:   a.IpAddress,
		CreatedAt:   a.CreatedAt,
	}
}

// nonNil returns an empty slice for nil so JSON lists encode as [].
func nonNil[S ~[]E, E any](s S) S {
	if s == nil {
		return S{}
	}
	return s
}
