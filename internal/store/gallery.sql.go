package store

import (
	"context"
	"database/sql"
	"time"
)

const galleryColumns = `id, title, description, image, thumbnail, category, event_date, location, event_name, is_featured, sort_order, uploaded_by, created_at, updated_at`

func scanGalleryItem(row rowScanner) (GalleryItem, error) {
	var i GalleryItem
	err := row.Scan(
		&i.ID,
		&i.Title,
		&i.Description,
		&i.Image,
		&i.Thumbnail,
		&i.Category,
		&i.EventDate,
		&i.Location,
		&i.EventName,
		&i.IsFeatured,
		&i.SortOrder,
		&i.UploadedBy,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

// GalleryItemParams carries every writable gallery column.
type GalleryItemParams struct {
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
	Now         time.Time
}

const createGalleryItem = `-- name: CreateGalleryItem :one
INSERT INTO gallery_items (title, description, image, thumbnail, category, event_date, location, event_name,
    is_featured, sort_order, uploaded_by, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
RETURNING ` + galleryColumns

func (q *Queries) CreateGalleryItem(ctx context.Context, arg GalleryItemParams, uploadedBy sql.NullInt64) (GalleryItem, error) {
	row := q.db.QueryRowContext(ctx, createGalleryItem,
		arg.Title,
		arg.Description,
		arg.Image,
		arg.Thumbnail,
		arg.Category,
		arg.EventDate,
		arg.Location,
		arg.EventName,
		arg.IsFeatured,
		arg.SortOrder,
		uploadedBy,
		arg.Now,
		arg.Now,
	)
	return scanGalleryItem(row)
}

const updateGalleryItem = `-- name: UpdateGalleryItem :one
UPDATE gallery_items
SET title = ?, description = ?, image = ?, thumbnail = ?, category = ?, event_date = ?, location = ?,
    event_name = ?, is_featured = ?, sort_order = ?, updated_at = ?
WHERE id = ?
RETURNING ` + galleryColumns

func (q *Queries) UpdateGalleryItem(ctx context.Context, id int64, arg GalleryItemParams) (GalleryItem, error) {
	row := q.db.QueryRowContext(ctx, updateGalleryItem,
		arg.Title,
		arg.Description,
		arg.Image,
		arg.Thumbnail,
		arg.Category,
		arg.EventDate,
		arg.Location,
		arg.EventName,
		arg.IsFeatured,
		arg.SortOrder,
		arg.Now,
		id,
	)
	return scanGalleryItem(row)
}

const getGalleryItem = `-- name: GetGalleryItem :one
SELECT ` + galleryColumns + ` FROM gallery_items WHERE id = ?`

func (q *Queries) GetGalleryItem(ctx context.Context, id int64) (GalleryItem, error) {
	return scanGalleryItem(q.db.QueryRowContext(ctx, getGalleryItem, id))
}

const listGalleryItems = `-- name: ListGalleryItems :many
SELECT ` + galleryColumns + ` FROM gallery_items
WHERE (?1 = '' OR category = ?1)
ORDER BY event_date DESC, sort_order, id`

// ListGalleryItems returns gallery items, most recent events first.
func (q *Queries) ListGalleryItems(ctx context.Context, category string) ([]GalleryItem, error) {
	rows, err := q.db.QueryContext(ctx, listGalleryItems, category)
	return collect(rows, err, scanGalleryItem)
}

const deleteGalleryItem = `-- name: DeleteGalleryItem :execrows
DELETE FROM gallery_items WHERE id = ?`

func (q *Queries) DeleteGalleryItem(ctx context.Context, id int64) (int64, error) {
	return execRows(ctx, q.db, deleteGalleryItem, id)
}
