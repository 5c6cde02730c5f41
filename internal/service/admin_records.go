// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"

	"github.com/olegiv/aisite/internal/model"
	"github.com/olegiv/aisite/internal/store"
	"github.com/olegiv/aisite/internal/util"
)

// Gallery

// ListGallery returns every gallery item.
func (s *AdminService) ListGallery(ctx context.Context) ([]store.GalleryItem, error) {
	return s.queries.ListGalleryItems(ctx, "")
}

func galleryParams(in model.GalleryItemInput, now clock) store.GalleryItemParams {
	return store.GalleryItemParams{
		Title:       in.Title,
		Description: in.Description,
		Image:       in.Image,
		Thumbnail:   in.Thumbnail,
		Category:    in.Category,
		EventDate:   in.EventDate,
		Location:    in.Location,
		EventName:   in.EventName,
		IsFeatured:  in.IsFeatured,
		SortOrder:   int64(in.Order),
		Now:         now(),
	}
}

func (s *AdminService) prepareGalleryItem(ctx context.Context, in *model.GalleryItemInput) error {
	if err := in.Validate(); err != nil {
		return err
	}
	return s.renderer.Field(ctx, in.Format, &in.Description)
}

// CreateGalleryItem creates a gallery item.
func (s *AdminService) CreateGalleryItem(ctx context.Context, actor Actor, in model.GalleryItemInput) (store.GalleryItem, error) {
	var out store.GalleryItem
	err := s.mutate(ctx, actor, model.OpCreate, model.EntityGalleryItem, func(q *store.Queries) (int64, string, error) {
		if err := s.prepareGalleryItem(ctx, &in); err != nil {
			return 0, "", err
		}
		var err error
		out, err = q.CreateGalleryItem(ctx, galleryParams(in, s.now), util.NullID(actor.UserID))
		return out.ID, out.Title, err
	})
	return out, err
}

// UpdateGalleryItem replaces a gallery item's fields.
func (s *AdminService) UpdateGalleryItem(ctx context.Context, actor Actor, id int64, in model.GalleryItemInput) (store.GalleryItem, error) {
	var out store.GalleryItem
	err := s.mutate(ctx, actor, model.OpEdit, model.EntityGalleryItem, func(q *store.Queries) (int64, string, error) {
		if err := s.prepareGalleryItem(ctx, &in); err != nil {
			return 0, "", err
		}
		var err error
		out, err = q.UpdateGalleryItem(ctx, id, galleryParams(in, s.now))
		return out.ID, out.Title, err
	})
	return out, err
}

// DeleteGalleryItem deletes a gallery item and its image files.
func (s *AdminService) DeleteGalleryItem(ctx context.Context, actor Actor, id int64) error {
	var files []string
	err := s.mutate(ctx, actor, model.OpDelete, model.EntityGalleryItem, func(q *store.Queries) (int64, string, error) {
		item, err := q.GetGalleryItem(ctx, id)
		if err != nil {
			return 0, "", err
		}
		files = []string{item.Image, item.Thumbnail}
		return item.ID, item.Title, requireRows(q.DeleteGalleryItem(ctx, id))
	})
	if err == nil {
		s.removeFiles(files...)
	}
	return err
}

// Team

// ListTeam returns every team member including inactive ones.
func (s *AdminService) ListTeam(ctx context.Context) ([]store.TeamMember, error) {
	return s.queries.ListAllTeamMembers(ctx)
}

func teamParams(in model.TeamMemberInput, now clock) store.TeamMemberParams {
	return store.TeamMemberParams{
		Name:        in.Name,
		Role:        in.Role,
		Bio:         in.Bio,
		Photo:       in.Photo,
		Email:       in.Email,
		LinkedinURL: in.LinkedinURL,
		SortOrder:   int64(in.Order),
		IsActive:    in.IsActive,
		Now:         now(),
	}
}

func (s *AdminService) prepareTeamMember(ctx context.Context, in *model.TeamMemberInput) error {
	if err := in.Validate(); err != nil {
		return err
	}
	return s.renderer.Field(ctx, in.Format, &in.Bio)
}

// CreateTeamMember creates a team member.
func (s *AdminService) CreateTeamMember(ctx context.Context, actor Actor, in model.TeamMemberInput) (store.TeamMember, error) {
	var out store.TeamMember
	err := s.mutate(ctx, actor, model.OpCreate, model.EntityTeamMember, func(q *store.Queries) (int64, string, error) {
		if err := s.prepareTeamMember(ctx, &in); err != nil {
			return 0, "", err
		}
		var err error
		out, err = q.CreateTeamMember(ctx, teamParams(in, s.now))
		return out.ID, out.Name, err
	})
	return out, err
}

// UpdateTeamMember replaces a team member's fields.
func (s *AdminService) UpdateTeamMember(ctx context.Context, actor Actor, id int64, in model.TeamMemberInput) (store.TeamMember, error) {
	var out store.TeamMember
	err := s.mutate(ctx, actor, model.OpEdit, model.EntityTeamMember, func(q *store.Queries) (int64, string, error) {
		if err := s.prepareTeamMember(ctx, &in); err != nil {
			return 0, "", err
		}
		var err error
		out, err = q.UpdateTeamMember(ctx, id, teamParams(in, s.now))
		return out.ID, out.Name, err
	})
	return out, err
}

// DeleteTeamMember deletes a team member.
func (s *AdminService) DeleteTeamMember(ctx context.Context, actor Actor, id int64) error {
	var photo string
	err := s.mutate(ctx, actor, model.OpDelete, model.EntityTeamMember, func(q *store.Queries) (int64, string, error) {
		m, err := q.GetTeamMember(ctx, id)
		if err != nil {
			return 0, "", err
		}
		photo = m.Photo
		return m.ID, m.Name, requireRows(q.DeleteTeamMember(ctx, id))
	})
	if err == nil {
		s.removeFiles(photo)
	}
	return err
}

// Inquiries

// ListInquiries returns every inquiry, newest first.
func (s *AdminService) ListInquiries(ctx context.Context) ([]store.ContactInquiry, error) {
	return s.queries.ListInquiries(ctx)
}

// GetInquiry returns an inquiry.
func (s *AdminService) GetInquiry(ctx context.Context, id int64) (store.ContactInquiry, error) {
	inq, err := s.queries.GetInquiry(ctx, id)
	return inq, mapStoreErr(err)
}

// UpdateInquiry records triage state on an inquiry.
func (s *AdminService) UpdateInquiry(ctx context.Context, actor Actor, id int64, in model.InquiryUpdateInput) (store.ContactInquiry, error) {
	var out store.ContactInquiry
	err := s.mutate(ctx, actor, model.OpEdit, model.EntityInquiry, func(q *store.Queries) (int64, string, error) {
		var err error
		out, err = q.UpdateInquiry(ctx, store.UpdateInquiryParams{
			IsRead:        in.IsRead,
			IsResponded:   in.IsResponded,
			ResponseNotes: in.ResponseNotes,
			UpdatedAt:     s.now(),
			ID:            id,
		})
		return out.ID, inquiryRepr(out), err
	})
	return out, err
}

// DeleteInquiry deletes an inquiry and its attachment.
func (s *AdminService) DeleteInquiry(ctx context.Context, actor Actor, id int64) error {
	var attachment string
	err := s.mutate(ctx, actor, model.OpDelete, model.EntityInquiry, func(q *store.Queries) (int64, string, error) {
		inq, err := q.GetInquiry(ctx, id)
		if err != nil {
			return 0, "", err
		}
		attachment = inq.Attachment
		return inq.ID, inquiryRepr(inq), requireRows(q.DeleteInquiry(ctx, id))
	})
	if err == nil {
		s.removeFiles(attachment)
	}
	return err
}

func inquiryRepr(inq store.ContactInquiry) string {
	return inq.Name + " - " + inq.Company
}

// Feedback

// ListFeedback returns every feedback entry, newest first.
func (s *AdminService) ListFeedback(ctx context.Context) ([]store.Feedback, error) {
	return s.queries.ListFeedback(ctx)
}

// ModerateFeedback approves or features a feedback entry. The approving
// user is recorded the first time the entry becomes approved.
func (s *AdminService) ModerateFeedback(ctx context.Context, actor Actor, id int64, in model.FeedbackModerationInput) (store.Feedback, error) {
	var out store.Feedback
	err := s.mutate(ctx, actor, model.OpEdit, model.EntityFeedback, func(q *store.Queries) (int64, string, error) {
		existing, err := q.GetFeedback(ctx, id)
		if err != nil {
			return 0, "", err
		}
		approvedBy := existing.ApprovedBy
		if in.IsApproved && !existing.IsApproved && !approvedBy.Valid {
			approvedBy = util.NullID(actor.UserID)
		}
		out, err = q.ModerateFeedback(ctx, store.ModerateFeedbackParams{
			IsApproved: in.IsApproved,
			IsFeatured: in.IsFeatured,
			Avatar:     in.Avatar,
			ApprovedBy: approvedBy,
			UpdatedAt:  s.now(),
			ID:         id,
		})
		return out.ID, out.Name, err
	})
	return out, err
}

// DeleteFeedback deletes a feedback entry.
func (s *AdminService) DeleteFeedback(ctx context.Context, actor Actor, id int64) error {
	var avatar string
	err := s.mutate(ctx, actor, model.OpDelete, model.EntityFeedback, func(q *store.Queries) (int64, string, error) {
		fb, err := q.GetFeedback(ctx, id)
		if err != nil {
			return 0, "", err
		}
		avatar = fb.Avatar
		return fb.ID, fb.Name, requireRows(q.DeleteFeedback(ctx, id))
	})
	if err == nil {
		s.removeFiles(avatar)
	}
	return err
}

// Registrations

// ListRegistrations returns the registrations of an event.
func (s *AdminService) ListRegistrations(ctx context.Context, eventID int64) ([]store.EventRegistration, error) {
	if _, err := s.queries.GetEvent(ctx, eventID); err != nil {
		return nil, mapStoreErr(err)
	}
	return s.queries.ListRegistrationsByEvent(ctx, eventID)
}

// UpdateRegistration confirms a registration or marks attendance.
func (s *AdminService) UpdateRegistration(ctx context.Context, actor Actor, id int64, in model.RegistrationUpdateInput) (store.EventRegistration, error) {
	var out store.EventRegistration
	err := s.mutate(ctx, actor, model.OpEdit, model.EntityRegistration, func(q *store.Queries) (int64, string, error) {
		var err error
		out, err = q.UpdateRegistration(ctx, id, in.IsConfirmed, in.Attended)
		return out.ID, out.Name, err
	})
	return out, err
}

// DeleteRegistration deletes a registration.
func (s *AdminService) DeleteRegistration(ctx context.Context, actor Actor, id int64) error {
	return s.mutate(ctx, actor, model.OpDelete, model.EntityRegistration, func(q *store.Queries) (int64, string, error) {
		reg, err := q.GetRegistration(ctx, id)
		if err != nil {
			return 0, "", err
		}
		return reg.ID, reg.Name, requireRows(q.DeleteRegistration(ctx, id))
	})
}

// Newsletter

// ListSubscribers returns every newsletter subscriber.
func (s *AdminService) ListSubscribers(ctx context.Context) ([]store.NewsletterSubscriber, error) {
	return s.queries.ListSubscribers(ctx)
}

// SetSubscriberActive activates or deactivates a subscriber.
func (s *AdminService) SetSubscriberActive(ctx context.Context, actor Actor, id int64, active bool) (store.NewsletterSubscriber, error) {
	var out store.NewsletterSubscriber
	err := s.mutate(ctx, actor, model.OpEdit, model.EntityNewsletter, func(q *store.Queries) (int64, string, error) {
		var err error
		out, err = q.SetSubscriberActive(ctx, id, active)
		return out.ID, out.Email, err
	})
	return out, err
}

// DeleteSubscriber deletes a subscriber.
func (s *AdminService) DeleteSubscriber(ctx context.Context, actor Actor, id int64) error {
	return s.mutate(ctx, actor, model.OpDelete, model.EntityNewsletter, func(q *store.Queries) (int64, string, error) {
		sub, err := q.GetSubscriber(ctx, id)
		if err != nil {
			return 0, "", err
		}
		return sub.ID, sub.Email, requireRows(q.DeleteSubscriber(ctx, id))
	})
}
