package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/olegiv/aisite/internal/model"
)

const solutionColumns = `id, title, description, detailed_content, category, icon, features, benefits, use_cases, faqs, image, is_featured, is_active, sort_order, created_by, created_at, updated_at`

func scanSolution(row rowScanner) (Solution, error) {
	var i Solution
	err := row.Scan(
		&i.ID,
		&i.Title,
		&i.Description,
		&i.DetailedContent,
		&i.Category,
		&i.Icon,
		&i.Features,
		&i.Benefits,
		&i.UseCases,
		&i.FAQs,
		&i.Image,
		&i.IsFeatured,
		&i.IsActive,
		&i.SortOrder,
		&i.CreatedBy,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

// SolutionParams carries every writable solution column.
type SolutionParams struct {
	Title           string
	Description     string
	DetailedContent string
	Category        string
	Icon            string
	Features        model.StringList
	Benefits        model.StringList
	UseCases        model.StringList
	FAQs            model.FAQList
	Image           string
	IsFeatured      bool
	IsActive        bool
	SortOrder       int64
	Now             time.Time
}

const createSolution = `-- name: CreateSolution :one
INSERT INTO solutions (title, description, detailed_content, category, icon, features, benefits, use_cases, faqs,
    image, is_featured, is_active, sort_order, created_by, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
RETURNING ` + solutionColumns

func (q *Queries) CreateSolution(ctx context.Context, arg SolutionParams, createdBy sql.NullInt64) (Solution, error) {
	row := q.db.QueryRowContext(ctx, createSolution,
		arg.Title,
		arg.Description,
		arg.DetailedContent,
		arg.Category,
		arg.Icon,
		arg.Features,
		arg.Benefits,
		arg.UseCases,
		arg.FAQs,
		arg.Image,
		arg.IsFeatured,
		arg.IsActive,
		arg.SortOrder,
		createdBy,
		arg.Now,
		arg.Now,
	)
	return scanSolution(row)
}

const updateSolution = `-- name: UpdateSolution :one
UPDATE solutions
SET title = ?, description = ?, detailed_content = ?, category = ?, icon = ?, features = ?, benefits = ?,
    use_cases = ?, faqs = ?, image = ?, is_featured = ?, is_active = ?, sort_order = ?, updated_at = ?
WHERE id = ?
RETURNING ` + solutionColumns

func (q *Queries) UpdateSolution(ctx context.Context, id int64, arg SolutionParams) (Solution, error) {
	row := q.db.QueryRowContext(ctx, updateSolution,
		arg.Title,
		arg.Description,
		arg.DetailedContent,
		arg.Category,
		arg.Icon,
		arg.Features,
		arg.Benefits,
		arg.UseCases,
		arg.FAQs,
		arg.Image,
		arg.IsFeatured,
		arg.IsActive,
		arg.SortOrder,
		arg.Now,
		id,
	)
	return scanSolution(row)
}

const getSolution = `-- name: GetSolution :one
SELECT ` + solutionColumns + ` FROM solutions WHERE id = ?`

func (q *Queries) GetSolution(ctx context.Context, id int64) (Solution, error) {
	return scanSolution(q.db.QueryRowContext(ctx, getSolution, id))
}

const getActiveSolution = `-- name: GetActiveSolution :one
SELECT ` + solutionColumns + ` FROM solutions WHERE id = ? AND is_active = 1`

func (q *Queries) GetActiveSolution(ctx context.Context, id int64) (Solution, error) {
	return scanSolution(q.db.QueryRowContext(ctx, getActiveSolution, id))
}

const listActiveSolutions = `-- name: ListActiveSolutions :many
SELECT ` + solutionColumns + ` FROM solutions
WHERE is_active = 1 AND (?1 = '' OR category = ?1)
ORDER BY sort_order, title`

// ListActiveSolutions returns active solutions, optionally limited to one category.
func (q *Queries) ListActiveSolutions(ctx context.Context, category string) ([]Solution, error) {
	rows, err := q.db.QueryContext(ctx, listActiveSolutions, category)
	return collect(rows, err, scanSolution)
}

const listFeaturedSolutions = `-- name: ListFeaturedSolutions :many
SELECT ` + solutionColumns + ` FROM solutions
WHERE is_active = 1 AND is_featured = 1
ORDER BY sort_order, title
LIMIT ?`

func (q *Queries) ListFeaturedSolutions(ctx context.Context, limit int64) ([]Solution, error) {
	rows, err := q.db.QueryContext(ctx, listFeaturedSolutions, limit)
	return collect(rows, err, scanSolution)
}

const listRelatedSolutions = `-- name: ListRelatedSolutions :many
SELECT ` + solutionColumns + ` FROM solutions
WHERE is_active = 1 AND category = ? AND id != ?
ORDER BY sort_order, title
LIMIT ?`

type ListRelatedSolutionsParams struct {
	Category  string
	ExcludeID int64
	Limit     int64
}

func (q *Queries) ListRelatedSolutions(ctx context.Context, arg ListRelatedSolutionsParams) ([]Solution, error) {
	rows, err := q.db.QueryContext(ctx, listRelatedSolutions, arg.Category, arg.ExcludeID, arg.Limit)
	return collect(rows, err, scanSolution)
}

const listAllSolutions = `-- name: ListAllSolutions :many
SELECT ` + solutionColumns + ` FROM solutions ORDER BY sort_order, title`

func (q *Queries) ListAllSolutions(ctx context.Context) ([]Solution, error) {
	rows, err := q.db.QueryContext(ctx, listAllSolutions)
	return collect(rows, err, scanSolution)
}

const deleteSolution = `-- name: DeleteSolution :execrows
DELETE FROM solutions WHERE id = ?`

func (q *Queries) DeleteSolution(ctx context.Context, id int64) (int64, error) {
	return execRows(ctx, q.db, deleteSolution, id)
}
