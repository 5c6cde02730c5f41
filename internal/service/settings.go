// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/olegiv/aisite/internal/model"
	"github.com/olegiv/aisite/internal/richtext"
	"github.com/olegiv/aisite/internal/store"
	"github.com/olegiv/aisite/internal/util"
)

// DefaultSiteName is shown until the settings row is created.
const DefaultSiteName = "AI-Solution"

// DefaultSiteSettings is the unsaved settings value served when no row exists.
func DefaultSiteSettings() store.SiteSetting {
	return store.SiteSetting{SiteName: DefaultSiteName}
}

// DefaultAboutUs is the unsaved about record served when no row exists.
func DefaultAboutUs() store.AboutUs {
	return store.AboutUs{
		Title:          "About AI-Solution",
		FoundedYear:    2019,
		EmployeesCount: 50,
		ClientsCount:   500,
		CountriesCount: 25,
		SuccessRate:    98,
	}
}

// SettingsService manages the site settings singleton and the about record.
type SettingsService struct {
	db       *sql.DB
	queries  *store.Queries
	renderer *richtext.Renderer
	now      clock
}

// NewSettingsService creates a new SettingsService.
func NewSettingsService(db *sql.DB, renderer *richtext.Renderer) *SettingsService {
	return &SettingsService{
		db:       db,
		queries:  store.New(db),
		renderer: renderer,
		now:      utcNow,
	}
}

// Load returns the stored settings or DefaultSiteSettings. A missing row
// is never an error.
func (s *SettingsService) Load(ctx context.Context) (store.SiteSetting, error) {
	row, err := s.queries.GetSiteSetting(ctx)
	if store.IsNotFound(err) {
		return DefaultSiteSettings(), nil
	}
	if err != nil {
		return store.SiteSetting{}, fmt.Errorf("loading site settings: %w", err)
	}
	return row, nil
}

func settingsParams(in model.SiteSettingsInput, actor Actor, now clock) store.SiteSettingParams {
	return store.SiteSettingParams{
		SiteName:     in.SiteName,
		Logo:         in.Logo,
		Favicon:      in.Favicon,
		ContactEmail: in.ContactEmail,
		ContactPhone: in.ContactPhone,
		Address:      in.Address,
		FacebookURL:  in.FacebookURL,
		TwitterURL:   in.TwitterURL,
		LinkedinURL:  in.LinkedinURL,
		InstagramURL: in.InstagramURL,
		YoutubeURL:   in.YoutubeURL,
		UpdatedBy:    util.NullID(actor.UserID),
		Now:          now(),
	}
}

// Create inserts the settings row. When one already exists the call fails
// with ErrConstraintViolation and the stored row is left untouched.
func (s *SettingsService) Create(ctx context.Context, actor Actor, in model.SiteSettingsInput) (store.SiteSetting, error) {
	if !model.CanCreate(actor.Role, model.EntitySiteSettings) {
		return store.SiteSetting{}, model.ErrUnauthorized
	}
	if err := in.Validate(); err != nil {
		return store.SiteSetting{}, err
	}

	var out store.SiteSetting
	err := inTx(ctx, s.db, func(q *store.Queries) error {
		row, err := q.CreateSiteSetting(ctx, settingsParams(in, actor, s.now))
		if err != nil {
			return mapStoreErr(err)
		}
		out = row
		return recordActivity(ctx, q, actor, model.ActionCreate, model.EntitySiteSettings, row.ID, row.SiteName, s.now)
	})
	return out, err
}

// Update changes the existing settings row; ErrNotFound when none exists.
func (s *SettingsService) Update(ctx context.Context, actor Actor, in model.SiteSettingsInput) (store.SiteSetting, error) {
	if !model.CanEdit(actor.Role, model.EntitySiteSettings) {
		return store.SiteSetting{}, model.ErrUnauthorized
	}
	if err := in.Validate(); err != nil {
		return store.SiteSetting{}, err
	}

	var out store.SiteSetting
	err := inTx(ctx, s.db, func(q *store.Queries) error {
		row, err := q.UpdateSiteSetting(ctx, settingsParams(in, actor, s.now))
		if err != nil {
			return mapStoreErr(err)
		}
		out = row
		return recordActivity(ctx, q, actor, model.ActionUpdate, model.EntitySiteSettings, row.ID, row.SiteName, s.now)
	})
	return out, err
}

// Save updates the settings row, creating it first when missing.
func (s *SettingsService) Save(ctx context.Context, actor Actor, in model.SiteSettingsInput) (store.SiteSetting, error) {
	row, err := s.Update(ctx, actor, in)
	if errors.Is(err, model.ErrNotFound) {
		row, err = s.Create(ctx, actor, in)
		if errors.Is(err, model.ErrConstraintViolation) {
			// Lost a race with another creator; the row exists now.
			return s.Update(ctx, actor, in)
		}
	}
	return row, err
}

// LoadAbout returns the first about row or DefaultAboutUs.
func (s *SettingsService) LoadAbout(ctx context.Context) (store.AboutUs, error) {
	row, err := s.queries.GetAbout(ctx)
	if store.IsNotFound(err) {
		return DefaultAboutUs(), nil
	}
	if err != nil {
		return store.AboutUs{}, fmt.Errorf("loading about: %w", err)
	}
	return row, nil
}

// SaveAbout creates the about row when none exists, else updates the first one.
func (s *SettingsService) SaveAbout(ctx context.Context, actor Actor, in model.AboutInput) (store.AboutUs, error) {
	if !model.CanEdit(actor.Role, model.EntityAbout) {
		return store.AboutUs{}, model.ErrUnauthorized
	}
	if err := in.Validate(); err != nil {
		return store.AboutUs{}, err
	}
	for _, f := range []*string{&in.CompanyBackground, &in.Mission, &in.Vision, &in.Values} {
		if err := s.renderer.Field(ctx, in.Format, f); err != nil {
			return store.AboutUs{}, err
		}
	}

	arg := store.AboutParams{
		Title:             in.Title,
		CompanyBackground: in.CompanyBackground,
		Mission:           in.Mission,
		Vision:            in.Vision,
		Values:            in.Values,
		FoundedYear:       int64(in.FoundedYear),
		EmployeesCount:    int64(in.EmployeesCount),
		ClientsCount:      int64(in.ClientsCount),
		CountriesCount:    int64(in.CountriesCount),
		SuccessRate:       int64(in.SuccessRate),
		UpdatedBy:         util.NullID(actor.UserID),
		Now:               s.now(),
	}

	var out store.AboutUs
	err := inTx(ctx, s.db, func(q *store.Queries) error {
		action := model.ActionUpdate
		existing, err := q.GetAbout(ctx)
		switch {
		case store.IsNotFound(err):
			action = model.ActionCreate
			out, err = q.CreateAbout(ctx, arg)
		case err != nil:
			return err
		default:
			out, err = q.UpdateAbout(ctx, existing.ID, arg)
		}
		if err != nil {
			return mapStoreErr(err)
		}
		return recordActivity(ctx, q, actor, action, model.EntityAbout, out.ID, out.Title, s.now)
	})
	return out, err
}
