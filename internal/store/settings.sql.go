package store

import (
	"context"
	"database/sql"
	"time"
)

const siteSettingColumns = `id, site_name, logo, favicon, contact_email, contact_phone, address, facebook_url, twitter_url, linkedin_url, instagram_url, youtube_url, updated_by, created_at, updated_at`

func scanSiteSetting(row rowScanner) (SiteSetting, error) {
	var i SiteSetting
	err := row.Scan(
		&i.ID,
		&i.SiteName,
		&i.Logo,
		&i.Favicon,
		&i.ContactEmail,
		&i.ContactPhone,
		&i.Address,
		&i.FacebookURL,
		&i.TwitterURL,
		&i.LinkedinURL,
		&i.InstagramURL,
		&i.YoutubeURL,
		&i.UpdatedBy,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

// SiteSettingParams carries every writable settings column.
type SiteSettingParams struct {
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
	Now          time.Time
}

const createSiteSetting = `-- name: CreateSiteSetting :one
INSERT INTO site_settings (singleton, site_name, logo, favicon, contact_email, contact_phone, address,
    facebook_url, twitter_url, linkedin_url, instagram_url, youtube_url, updated_by, created_at, updated_at)
VALUES (1, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
RETURNING ` + siteSettingColumns

// CreateSiteSetting inserts the singleton row. A second call fails with a
// UNIQUE violation on the singleton column.
func (q *Queries) CreateSiteSetting(ctx context.Context, arg SiteSettingParams) (SiteSetting, error) {
	row := q.db.QueryRowContext(ctx, createSiteSetting,
		arg.SiteName,
		arg.Logo,
		arg.Favicon,
		arg.ContactEmail,
		arg.ContactPhone,
		arg.Address,
		arg.FacebookURL,
		arg.TwitterURL,
		arg.LinkedinURL,
		arg.InstagramURL,
		arg.YoutubeURL,
		arg.UpdatedBy,
		arg.Now,
		arg.Now,
	)
	return scanSiteSetting(row)
}

const getSiteSetting = `-- name: GetSiteSetting :one
SELECT ` + siteSettingColumns + ` FROM site_settings ORDER BY id LIMIT 1`

func (q *Queries) GetSiteSetting(ctx context.Context) (SiteSetting, error) {
	return scanSiteSetting(q.db.QueryRowContext(ctx, getSiteSetting))
}

const updateSiteSetting = `-- name: UpdateSiteSetting :one
UPDATE site_settings
SET site_name = ?, logo = ?, favicon = ?, contact_email = ?, contact_phone = ?, address = ?,
    facebook_url = ?, twitter_url = ?, linkedin_url = ?, instagram_url = ?, youtube_url = ?,
    updated_by = ?, updated_at = ?
WHERE singleton = 1
RETURNING ` + siteSettingColumns

func (q *Queries) UpdateSiteSetting(ctx context.Context, arg SiteSettingParams) (SiteSetting, error) {
	row := q.db.QueryRowContext(ctx, updateSiteSetting,
		arg.SiteName,
		arg.Logo,
		arg.Favicon,
		arg.ContactEmail,
		arg.ContactPhone,
		arg.Address,
		arg.FacebookURL,
		arg.TwitterURL,
		arg.LinkedinURL,
		arg.InstagramURL,
		arg.YoutubeURL,
		arg.UpdatedBy,
		arg.Now,
	)
	return scanSiteSetting(row)
}

const aboutColumns = `id, title, company_background, mission, vision, "values", founded_year, employees_count, clients_count, countries_count, success_rate, updated_by, created_at, updated_at`

func scanAbout(row rowScanner) (AboutUs, error) {
	var i AboutUs
	err := row.Scan(
		&i.ID,
		&i.Title,
		&i.CompanyBackground,
		&i.Mission,
		&i.Vision,
		&i.Values,
		&i.FoundedYear,
		&i.EmployeesCount,
		&i.ClientsCount,
		&i.CountriesCount,
		&i.SuccessRate,
		&i.UpdatedBy,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

// AboutParams carries every writable about-us column.
type AboutParams struct {
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
	Now               time.Time
}

const getAbout = `-- name: GetAbout :one
SELECT ` + aboutColumns + ` FROM about_us ORDER BY id LIMIT 1`

func (q *Queries) GetAbout(ctx context.Context) (AboutUs, error) {
	return scanAbout(q.db.QueryRowContext(ctx, getAbout))
}

const createAbout = `-- name: CreateAbout :one
INSERT INTO about_us (title, company_background, mission, vision, "values", founded_year, employees_count,
    clients_count, countries_count, success_rate, updated_by, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
RETURNING ` + aboutColumns

func (q *Queries) CreateAbout(ctx context.Context, arg AboutParams) (AboutUs, error) {
	row := q.db.QueryRowContext(ctx, createAbout,
		arg.Title,
		arg.CompanyBackground,
		arg.Mission,
		arg.Vision,
		arg.Values,
		arg.FoundedYear,
		arg.EmployeesCount,
		arg.ClientsCount,
		arg.CountriesCount,
		arg.SuccessRate,
		arg.UpdatedBy,
		arg.Now,
		arg.Now,
	)
	return scanAbout(row)
}

const updateAbout = `-- name: UpdateAbout :one
UPDATE about_us
SET title = ?, company_background = ?, mission = ?, vision = ?, "values" = ?, founded_year = ?,
    employees_count = ?, clients_count = ?, countries_count = ?, success_rate = ?, updated_by = ?, updated_at = ?
WHERE id = ?
RETURNING ` + aboutColumns

func (q *Queries) UpdateAbout(ctx context.Context, id int64, arg AboutParams) (AboutUs, error) {
	row := q.db.QueryRowContext(ctx, updateAbout,
		arg.Title,
		arg.CompanyBackground,
		arg.Mission,
		arg.Vision,
		arg.Values,
		arg.FoundedYear,
		arg.EmployeesCount,
		arg.ClientsCount,
		arg.CountriesCount,
		arg.SuccessRate,
		arg.UpdatedBy,
		arg.Now,
		id,
	)
	return scanAbout(row)
}
