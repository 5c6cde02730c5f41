package store

import (
	"context"
	"database/sql"
	"time"
)

const feedbackColumns = `id, name, email, company, rating, comment, is_approved, is_featured, avatar, approved_by, created_at, updated_at`

func scanFeedback(row rowScanner) (Feedback, error) {
	var i Feedback
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Email,
		&i.Company,
		&i.Rating,
		&i.Comment,
		&i.IsApproved,
		&i.IsFeatured,
		&i.Avatar,
		&i.ApprovedBy,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const createFeedback = `-- name: CreateFeedback :one
INSERT INTO feedback (name, email, company, rating, comment, is_approved, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, 0, ?, ?)
RETURNING ` + feedbackColumns

type CreateFeedbackParams struct {
	Name      string
	Email     string
	Company   string
	Rating    int64
	Comment   string
	CreatedAt time.Time
}

// CreateFeedback stores a submission; new feedback is never approved.
func (q *Queries) CreateFeedback(ctx context.Context, arg CreateFeedbackParams) (Feedback, error) {
	row := q.db.QueryRowContext(ctx, createFeedback,
		arg.Name,
		arg.Email,
		arg.Company,
		arg.Rating,
		arg.Comment,
		arg.CreatedAt,
		arg.CreatedAt,
	)
	return scanFeedback(row)
}

const getFeedback = `-- name: GetFeedback :one
SELECT ` + feedbackColumns + ` FROM feedback WHERE id = ?`

func (q *Queries) GetFeedback(ctx context.Context, id int64) (Feedback, error) {
	return scanFeedback(q.db.QueryRowContext(ctx, getFeedback, id))
}

const listFeedback = `-- name: ListFeedback :many
SELECT ` + feedbackColumns + ` FROM feedback ORDER BY created_at DESC, id DESC`

func (q *Queries) ListFeedback(ctx context.Context) ([]Feedback, error) {
	rows, err := q.db.QueryContext(ctx, listFeedback)
	return collect(rows, err, scanFeedback)
}

const listApprovedFeedback = `-- name: ListApprovedFeedback :many
SELECT ` + feedbackColumns + ` FROM feedback
WHERE is_approved = 1
ORDER BY created_at DESC, id DESC
LIMIT ?`

// ListApprovedFeedback returns approved testimonials, newest first.
func (q *Queries) ListApprovedFeedback(ctx context.Context, limit int64) ([]Feedback, error) {
	rows, err := q.db.QueryContext(ctx, listApprovedFeedback, limit)
	return collect(rows, err, scanFeedback)
}

const moderateFeedback = `-- name: ModerateFeedback :one
UPDATE feedback
SET is_approved = ?, is_featured = ?, avatar = ?, approved_by = ?, updated_at = ?
WHERE id = ?
RETURNING ` + feedbackColumns

type ModerateFeedbackParams struct {
	IsApproved bool
	IsFeatured bool
	Avatar     string
	ApprovedBy sql.NullInt64
	UpdatedAt  time.Time
	ID         int64
}

func (q *Queries) ModerateFeedback(ctx context.Context, arg ModerateFeedbackParams) (Feedback, error) {
	row := q.db.QueryRowContext(ctx, moderateFeedback,
		arg.IsApproved,
		arg.IsFeatured,
		arg.Avatar,
		arg.ApprovedBy,
		arg.UpdatedAt,
		arg.ID,
	)
	return scanFeedback(row)
}

const deleteFeedback = `-- name: DeleteFeedback :execrows
DELETE FROM feedback WHERE id = ?`

func (q *Queries) DeleteFeedback(ctx context.Context, id int64) (int64, error) {
	return execRows(ctx, q.db, deleteFeedback, id)
}
