// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"
	"database/sql"
	"fmt"
	"unicode/utf8"

	"github.com/olegiv/aisite/internal/model"
	"github.com/olegiv/aisite/internal/store"
	"github.com/olegiv/aisite/internal/util"
)

// maxObjectRepr matches the activity_logs.object_repr column limit.
const maxObjectRepr = 200

// ActivityPageSize is the admin activity list page size.
const ActivityPageSize = 50

// ActivityService reads the append-only audit trail. Writes happen inside
// the admin transactions through recordActivity.
type ActivityService struct {
	queries *store.Queries
}

// NewActivityService creates a new ActivityService.
func NewActivityService(db *sql.DB) *ActivityService {
	return &ActivityService{queries: store.New(db)}
}

// List returns one page of the activity log, newest first.
func (s *ActivityService) List(ctx context.Context, page int) (Page[store.ActivityLog], error) {
	total, err := s.queries.CountActivityLogs(ctx)
	if err != nil {
		return Page[store.ActivityLog]{}, fmt.Errorf("counting activity: %w", err)
	}
	p := newPage[store.ActivityLog](page, ActivityPageSize, total)
	items, err := s.queries.ListActivityLogs(ctx, int64(p.PerPage), p.offset())
	if err != nil {
		return Page[store.ActivityLog]{}, fmt.Errorf("listing activity: %w", err)
	}
	p.fill(items)
	return p, nil
}

// recordActivity appends one audit entry using q, normally inside the
// transaction of the change it describes.
func recordActivity(ctx context.Context, q *store.Queries, actor Actor, action string, entity model.Entity, objectID int64, repr string, now clock) error {
	_, err := q.CreateActivityLog(ctx, store.CreateActivityLogParams{
		UserID:      util.NullID(actor.UserID),
		Username:    actor.Username,
		Action:      action,
		ContentType: string(entity),
		ObjectID:    objectID,
		ObjectRepr:  truncateRunes(repr, maxObjectRepr),
		IpAddress:   actor.IP,
		CreatedAt:   now(),
	})
	if err != nil {
		return fmt.Errorf("recording activity: %w", err)
	}
	return nil
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n])
}
