package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/olegiv/aisite/internal/model"
)

const eventColumns = `id, title, description, event_type, event_date, event_time, location, capacity, price, featured_image, speakers, agenda, status, is_featured, registration_url, created_by, created_at, updated_at`

func scanEvent(row rowScanner) (Event, error) {
	var i Event
	err := row.Scan(
		&i.ID,
		&i.Title,
		&i.Description,
		&i.EventType,
		&i.EventDate,
		&i.EventTime,
		&i.Location,
		&i.Capacity,
		&i.Price,
		&i.FeaturedImage,
		&i.Speakers,
		&i.Agenda,
		&i.Status,
		&i.IsFeatured,
		&i.RegistrationURL,
		&i.CreatedBy,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

// EventParams carries every writable event column.
type EventParams struct {
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
	Now             time.Time
}

const createEvent = `-- name: CreateEvent :one
INSERT INTO events (title, description, event_type, event_date, event_time, location, capacity, price,
    featured_image, speakers, agenda, status, is_featured, registration_url, created_by, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
RETURNING ` + eventColumns

func (q *Queries) CreateEvent(ctx context.Context, arg EventParams, createdBy sql.NullInt64) (Event, error) {
	row := q.db.QueryRowContext(ctx, createEvent,
		arg.Title,
		arg.Description,
		arg.EventType,
		arg.EventDate,
		arg.EventTime,
		arg.Location,
		arg.Capacity,
		arg.Price,
		arg.FeaturedImage,
		arg.Speakers,
		arg.Agenda,
		arg.Status,
		arg.IsFeatured,
		arg.RegistrationURL,
		createdBy,
		arg.Now,
		arg.Now,
	)
	return scanEvent(row)
}

const updateEvent = `-- name: UpdateEvent :one
UPDATE events
SET title = ?, description = ?, event_type = ?, event_date = ?, event_time = ?, location = ?, capacity = ?,
    price = ?, featured_image = ?, speakers = ?, agenda = ?, status = ?, is_featured = ?, registration_url = ?,
    updated_at = ?
WHERE id = ?
RETURNING ` + eventColumns

func (q *Queries) UpdateEvent(ctx context.Context, id int64, arg EventParams) (Event, error) {
	row := q.db.QueryRowContext(ctx, updateEvent,
		arg.Title,
		arg.Description,
		arg.EventType,
		arg.EventDate,
		arg.EventTime,
		arg.Location,
		arg.Capacity,
		arg.Price,
		arg.FeaturedImage,
		arg.Speakers,
		arg.Agenda,
		arg.Status,
		arg.IsFeatured,
		arg.RegistrationURL,
		arg.Now,
		id,
	)
	return scanEvent(row)
}

const getEvent = `-- name: GetEvent :one
SELECT ` + eventColumns + ` FROM events WHERE id = ?`

func (q *Queries) GetEvent(ctx context.Context, id int64) (Event, error) {
	return scanEvent(q.db.QueryRowContext(ctx, getEvent, id))
}

const listEvents = `-- name: ListEvents :many
SELECT ` + eventColumns + ` FROM events
WHERE (?1 = '' OR event_type = ?1) AND (?2 = '' OR status = ?2)
ORDER BY event_date, event_time, id`

// ListEvents returns events in schedule order. Empty filters match everything.
func (q *Queries) ListEvents(ctx context.Context, eventType, status string) ([]Event, error) {
	rows, err := q.db.QueryContext(ctx, listEvents, eventType, status)
	return collect(rows, err, scanEvent)
}

const deleteEvent = `-- name: DeleteEvent :execrows
DELETE FROM events WHERE id = ?`

// DeleteEvent removes an event; its registrations go with it.
func (q *Queries) DeleteEvent(ctx context.Context, id int64) (int64, error) {
	return execRows(ctx, q.db, deleteEvent, id)
}

const registrationColumns = `id, event_id, name, email, phone, company, job_title, special_requirements, is_confirmed, attended, created_at`

func scanRegistration(row rowScanner) (EventRegistration, error) {
	var i EventRegistration
	err := row.Scan(
		&i.ID,
		&i.EventID,
		&i.Name,
		&i.Email,
		&i.Phone,
		&i.Company,
		&i.JobTitle,
		&i.SpecialRequirements,
		&i.IsConfirmed,
		&i.Attended,
		&i.CreatedAt,
	)
	return i, err
}

const insertRegistrationIfAbsent = `-- name: InsertRegistrationIfAbsent :execrows
INSERT INTO event_registrations (event_id, name, email, phone, company, job_title, special_requirements, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT (event_id, email) DO NOTHING`

type InsertRegistrationParams struct {
	EventID             int64
	Name                string
	Email               string
	Phone               string
	Company             string
	JobTitle            string
	SpecialRequirements string
	CreatedAt           time.Time
}

// InsertRegistrationIfAbsent inserts a registration unless one exists for the
// same (event, email). It returns 1 when a row was inserted and 0 otherwise.
func (q *Queries) InsertRegistrationIfAbsent(ctx context.Context, arg InsertRegistrationParams) (int64, error) {
	return execRows(ctx, q.db, insertRegistrationIfAbsent,
		arg.EventID,
		arg.Name,
		arg.Email,
		arg.Phone,
		arg.Company,
		arg.JobTitle,
		arg.SpecialRequirements,
		arg.CreatedAt,
	)
}

const getRegistrationByEmail = `-- name: GetRegistrationByEmail :one
SELECT ` + registrationColumns + ` FROM event_registrations WHERE event_id = ? AND email = ?`

func (q *Queries) GetRegistrationByEmail(ctx context.Context, eventID int64, email string) (EventRegistration, error) {
	return scanRegistration(q.db.QueryRowContext(ctx, getRegistrationByEmail, eventID, email))
}

const getRegistration = `-- name: GetRegistration :one
SELECT ` + registrationColumns + ` FROM event_registrations WHERE id = ?`

func (q *Queries) GetRegistration(ctx context.Context, id int64) (EventRegistration, error) {
	return scanRegistration(q.db.QueryRowContext(ctx, getRegistration, id))
}

const listRegistrationsByEvent = `-- name: ListRegistrationsByEvent :many
SELECT ` + registrationColumns + ` FROM event_registrations WHERE event_id = ? ORDER BY created_at DESC, id DESC`

func (q *Queries) ListRegistrationsByEvent(ctx context.Context, eventID int64) ([]EventRegistration, error) {
	rows, err := q.db.QueryContext(ctx, listRegistrationsByEvent, eventID)
	return collect(rows, err, scanRegistration)
}

const updateRegistration = `-- name: UpdateRegistration :one
UPDATE event_registrations SET is_confirmed = ?, attended = ? WHERE id = ?
RETURNING ` + registrationColumns

func (q *Queries) UpdateRegistration(ctx context.Context, id int64, isConfirmed, attended bool) (EventRegistration, error) {
	return scanRegistration(q.db.QueryRowContext(ctx, updateRegistration, isConfirmed, attended, id))
}

const deleteRegistration = `-- name: DeleteRegistration :execrows
DELETE FROM event_registrations WHERE id = ?`

func (q *Queries) DeleteRegistration(ctx context.Context, id int64) (int64, error) {
	return execRows(ctx, q.db, deleteRegistration, id)
}
