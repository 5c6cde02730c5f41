// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/olegiv/aisite/internal/media"
	"github.com/olegiv/aisite/internal/model"
	"github.com/olegiv/aisite/internal/store"
)

// CountryResolver infers a contact form country from a client address.
type CountryResolver interface {
	InquiryCountry(ip string) string
}

// SubscribeResult reports whether a subscription was newly created.
type SubscribeResult struct {
	Subscriber store.NewsletterSubscriber
	Created    bool
}

// RegistrationResult reports whether a registration was newly created.
type RegistrationResult struct {
	Registration store.EventRegistration
	Created      bool
}

// ArticleFile is an opened article PDF. The caller closes File.
type ArticleFile struct {
	Title string
	Path  string
	File  *os.File
}

// IntakeService accepts anonymous visitor submissions.
type IntakeService struct {
	queries   *store.Queries
	media     *media.Store
	countries CountryResolver
	logger    *slog.Logger
	now       clock
}

// NewIntakeService creates a new IntakeService. countries may be nil.
func NewIntakeService(db *sql.DB, mediaStore *media.Store, countries CountryResolver, logger *slog.Logger) *IntakeService {
	return &IntakeService{
		queries:   store.New(db),
		media:     mediaStore,
		countries: countries,
		logger:    logger,
		now:       utcNow,
	}
}

// SubmitContactInquiry validates and stores an inquiry with an optional
// attachment. A blank country is inferred from clientIP when possible.
func (s *IntakeService) SubmitContactInquiry(ctx context.Context, in model.ContactInquiryInput, attachment *media.Upload, clientIP string) (store.ContactInquiry, error) {
	in.Email = model.NormalizeEmail(in.Email)
	if err := in.Validate(); err != nil {
		return store.ContactInquiry{}, err
	}
	if in.Country == "" && s.countries != nil {
		in.Country = s.countries.InquiryCountry(clientIP)
	}

	var path string
	if attachment != nil {
		saved, err := s.media.Save(media.KindAttachment, attachment.Filename, attachment.Content)
		if err != nil {
			return store.ContactInquiry{}, uploadError("attachment", err, s.media.MaxSize())
		}
		path = saved.Path
	}

	inq, err := s.queries.CreateInquiry(ctx, store.CreateInquiryParams{
		Name:       in.Name,
		Email:      in.Email,
		Phone:      in.Phone,
		Company:    in.Company,
		Country:    in.Country,
		JobTitle:   in.JobTitle,
		Message:    in.Message,
		Attachment: path,
		CreatedAt:  s.now(),
	})
	if err != nil {
		if path != "" {
			_ = s.media.Remove(path)
		}
		return store.ContactInquiry{}, mapStoreErr(err)
	}
	s.logger.Info("contact inquiry received", "id", inq.ID, "country", inq.Country)
	return inq, nil
}

// SubmitFeedback stores a testimonial awaiting moderation.
func (s *IntakeService) SubmitFeedback(ctx context.Context, in model.FeedbackInput) (store.Feedback, error) {
	in.Email = model.NormalizeEmail(in.Email)
	if err := in.Validate(); err != nil {
		return store.Feedback{}, err
	}
	fb, err := s.queries.CreateFeedback(ctx, store.CreateFeedbackParams{
		Name:      in.Name,
		Email:     in.Email,
		Company:   in.Company,
		Rating:    int64(in.Rating),
		Comment:   in.Comment,
		CreatedAt: s.now(),
	})
	return fb, mapStoreErr(err)
}

// SubscribeNewsletter subscribes email. Subscribing again returns the
// existing row unchanged with Created false, including deactivated ones.
func (s *IntakeService) SubscribeNewsletter(ctx context.Context, in model.NewsletterInput) (SubscribeResult, error) {
	in.Email = model.NormalizeEmail(in.Email)
	if err := in.Validate(); err != nil {
		return SubscribeResult{}, err
	}

	n, err := s.queries.InsertSubscriberIfAbsent(ctx, in.Email, in.Name, s.now())
	if err != nil {
		return SubscribeResult{}, mapStoreErr(err)
	}
	sub, err := s.queries.GetSubscriberByEmail(ctx, in.Email)
	if err != nil {
		return SubscribeResult{}, mapStoreErr(err)
	}
	return SubscribeResult{Subscriber: sub, Created: n > 0}, nil
}

// RegisterForEvent registers a visitor once per event and email.
func (s *IntakeService) RegisterForEvent(ctx context.Context, eventID int64, in model.RegistrationInput) (RegistrationResult, error) {
	in.Email = model.NormalizeEmail(in.Email)
	if err := in.Validate(); err != nil {
		return RegistrationResult{}, err
	}
	if _, err := s.queries.GetEvent(ctx, eventID); err != nil {
		return RegistrationResult{}, mapStoreErr(err)
	}

	n, err := s.queries.InsertRegistrationIfAbsent(ctx, store.InsertRegistrationParams{
		EventID:             eventID,
		Name:                in.Name,
		Email:               in.Email,
		Phone:               in.Phone,
		Company:             in.Company,
		JobTitle:            in.JobTitle,
		SpecialRequirements: in.SpecialRequirements,
		CreatedAt:           s.now(),
	})
	if err != nil {
		// The event may have been deleted in between.
		return RegistrationResult{}, mapStoreErr(err)
	}
	reg, err := s.queries.GetRegistrationByEmail(ctx, eventID, in.Email)
	if err != nil {
		return RegistrationResult{}, mapStoreErr(err)
	}
	return RegistrationResult{Registration: reg, Created: n > 0}, nil
}

// OpenArticle opens the PDF of an article without counting a download.
// Articles without a PDF, or whose file is gone, are ErrNotFound.
func (s *IntakeService) OpenArticle(ctx context.Context, id int64) (ArticleFile, error) {
	a, err := s.queries.GetArticle(ctx, id)
	if err != nil {
		return ArticleFile{}, mapStoreErr(err)
	}
	if a.PdfFile == "" {
		return ArticleFile{}, model.ErrNotFound
	}

	f, err := s.media.Open(a.PdfFile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.logger.Warn("article PDF missing on disk", "article_id", id, "path", a.PdfFile)
			return ArticleFile{}, model.ErrNotFound
		}
		return ArticleFile{}, fmt.Errorf("opening article PDF: %w", err)
	}
	return ArticleFile{Title: a.Title, Path: a.PdfFile, File: f}, nil
}

// DownloadArticle opens the PDF of an article and counts the download.
func (s *IntakeService) DownloadArticle(ctx context.Context, id int64) (ArticleFile, error) {
	af, err := s.OpenArticle(ctx, id)
	if err != nil {
		return ArticleFile{}, err
	}
	if _, err := s.queries.CountArticleDownload(ctx, id); err != nil {
		_ = af.File.Close()
		return ArticleFile{}, mapStoreErr(err)
	}
	return af, nil
}

// uploadError turns a media error into a field validation error.
func uploadError(field string, err error, maxSize int64) error {
	switch {
	case errors.Is(err, media.ErrTooLarge):
		return model.NewValidationError(field, fmt.Sprintf("File size must be under %dMB.", maxSize>>20))
	case errors.Is(err, media.ErrUnsupportedType):
		return model.NewValidationError(field, "Unsupported file type.")
	case errors.Is(err, media.ErrEmpty):
		return model.NewValidationError(field, "The submitted file is empty.")
	case errors.Is(err, media.ErrUnknownKind):
		return model.NewValidationError(field, "Unknown upload kind.")
	}
	return fmt.Errorf("saving upload: %w", err)
}
