// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import (
	"database/sql"
	"time"
)

// StampPublishedAt applies the publish-once rule: the first save with status
// "published" records now; every later save keeps the recorded time, even when
// the status moves back to draft or on to archived.
func StampPublishedAt(status string, current sql.NullTime, now time.Time) sql.NullTime {
	if current.Valid {
		return current
	}
	if status == StatusPublished {
		return sql.NullTime{Time: now, Valid: true}
	}
	return sql.NullTime{}
}
