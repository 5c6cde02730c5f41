package store

import (
	"database/sql"
	"time"

	"github.com/olegiv/aisite/internal/model"
)

type User struct {
	ID           int64
	Username     string
	Email        string
	FirstName    string
	LastName     string
	PasswordHash string
	Role         string
	IsActive     bool
	Phone        string
	LastLoginAt  sql.NullTime
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type SiteSetting struct {
	ID           int64
	SiteName     string
	Logo         string
	Favicon      string
	ContactEmail string
	ContactPhone string
	Address      string
	FacebookURL  string
	TwitterURL   string
	LinkedinURL  string
	InstagramURL string
	YoutubeURL   string
	UpdatedBy    sql.NullInt64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type AboutUs struct {
	ID                int64
	Title             string
	CompanyBackground string
	Mission           string
	Vision            string
	Values            string
	FoundedYear       int64
	EmployeesCount    int64
	ClientsCount      int64
	CountriesCount    int64
	SuccessRate       int64
	UpdatedBy         sql.NullInt64
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type Solution struct {
	ID              int64
	Title           string
	Description     string
	DetailedContent string
	Category        string
	Icon            string
	Features        model.StringList
	Benefits        model.StringList
	UseCases        model.StringList
	FAQs            model.FAQList
	Image           string
	IsFeatured      bool
	IsActive        bool
	SortOrder       int64
	CreatedBy       sql.NullInt64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type ContactInquiry struct {
	ID            int64
	Name          string
	Email         string
	Phone         string
	Company       string
	Country       string
	JobTitle      string
	Message       string
	Attachment    string
	IsRead        bool
	IsResponded   bool
	ResponseNotes string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type Feedback struct {
	ID         int64
	Name       string
	Email      string
	Company    string
	Rating     int64
	Comment    string
	IsApproved bool
	IsFeatured bool
	Avatar     string
	ApprovedBy sql.NullInt64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type BlogPost struct {
	ID            int64
	Title         string
	Slug          string
	Excerpt       string
	Content       string
	Author        string
	Category      string
	Tags          model.StringList
	FeaturedImage string
	IsFeatured    bool
	Status        string
	ReadTime      int64
	ViewsCount    int64
	PublishedAt   sql.NullTime
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type Article struct {
	ID            int64
	Title         string
	Content       string
	Excerpt       string
	Category      string
	Status        string
	ArticleType   string
	Author        string
	FeaturedImage string
	PdfFile       string
	IsFeatured    bool
	DownloadCount int64
	PublishedAt   sql.NullTime
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type Event struct {
	ID              int64
	Title           string
	Description     string
	EventType       string
	EventDate       string
	EventTime       string
	Location        string
	Capacity        int64
	Price           string
	FeaturedImage   string
	Speakers        model.SpeakerList
	Agenda          model.AgendaList
	Status          string
	IsFeatured      bool
	RegistrationURL string
	CreatedBy       sql.NullInt64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type EventRegistration struct {
	ID                  int64
	EventID             int64
	Name                string
	Email               string
	Phone               string
	Company             string
	JobTitle            string
	SpecialRequirements string
	IsConfirmed         bool
	Attended            bool
	CreatedAt           time.Time
}

type GalleryItem struct {
	ID          int64
	Title       string
	Description string
	Image       string
	Thumbnail   string
	Category    string
	EventDate   string
	Location    string
	EventName   string
	IsFeatured  bool
	SortOrder   int64
	UploadedBy  sql.NullInt64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type NewsletterSubscriber struct {
	ID           int64
	Email        string
	Name         string
	IsActive     bool
	SubscribedAt time.Time
}

type TeamMember struct {
	ID          int64
	Name        string
	Role        string
	Bio         string
	Photo       string
	Email       string
	LinkedinURL string
	SortOrder   int64
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type ActivityLog struct {
	ID          int64
	UserID      sql.NullInt64
	Username    string
	Action      string
	ContentType string
	ObjectID    int64
	ObjectRepr  string
	IpAddress   string
	CreatedAt   time.Time
}
