package store

import (
	"context"
	"time"
)

const inquiryColumns = `id, name, email, phone, company, country, job_title, message, attachment, is_read, is_responded, response_notes, created_at, updated_at`

func scanInquiry(row rowScanner) (ContactInquiry, error) {
	var i ContactInquiry
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Email,
		&i.Phone,
		&i.Company,
		&i.Country,
		&i.JobTitle,
		&i.Message,
		&i.Attachment,
		&i.IsRead,
		&i.IsResponded,
		&i.ResponseNotes,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const createInquiry = `-- name: CreateInquiry :one
INSERT INTO contact_inquiries (name, email, phone, company, country, job_title, message, attachment, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
RETURNING ` + inquiryColumns

type CreateInquiryParams struct {
	Name       string
	Email      string
	Phone      string
	Company    string
	Country    string
	JobTitle   string
	Message    string
	Attachment string
	CreatedAt  time.Time
}

func (q *Queries) CreateInquiry(ctx context.Context, arg CreateInquiryParams) (ContactInquiry, error) {
	row := q.db.QueryRowContext(ctx, createInquiry,
		arg.Name,
		arg.Email,
		arg.Phone,
		arg.Company,
		arg.Country,
		arg.JobTitle,
		arg.Message,
		arg.Attachment,
		arg.CreatedAt,
		arg.CreatedAt,
	)
	return scanInquiry(row)
}

const getInquiry = `-- name: GetInquiry :one
SELECT ` + inquiryColumns + ` FROM contact_inquiries WHERE id = ?`

func (q *Queries) GetInquiry(ctx context.Context, id int64) (ContactInquiry, error) {
	return scanInquiry(q.db.QueryRowContext(ctx, getInquiry, id))
}

const listInquiries = `-- name: ListInquiries :many
SELECT ` + inquiryColumns + ` FROM contact_inquiries ORDER BY created_at DESC, id DESC`

// ListInquiries returns every inquiry, newest first.
func (q *Queries) ListInquiries(ctx context.Context) ([]ContactInquiry, error) {
	rows, err := q.db.QueryContext(ctx, listInquiries)
	return collect(rows, err, scanInquiry)
}

const updateInquiry = `-- name: UpdateInquiry :one
UPDATE contact_inquiries
SET is_read = ?, is_responded = ?, response_notes = ?, updated_at = ?
WHERE id = ?
RETURNING ` + inquiryColumns

type UpdateInquiryParams struct {
	IsRead        bool
	IsResponded   bool
	ResponseNotes string
	UpdatedAt     time.Time
	ID            int64
}

func (q *Queries) UpdateInquiry(ctx context.Context, arg UpdateInquiryParams) (ContactInquiry, error) {
	row := q.db.QueryRowContext(ctx, updateInquiry, arg.IsRead, arg.IsResponded, arg.ResponseNotes, arg.UpdatedAt, arg.ID)
	return scanInquiry(row)
}

const deleteInquiry = `-- name: DeleteInquiry :execrows
DELETE FROM contact_inquiries WHERE id = ?`

func (q *Queries) DeleteInquiry(ctx context.Context, id int64) (int64, error) {
	return execRows(ctx, q.db, deleteInquiry, id)
}
