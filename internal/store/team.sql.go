package store

import (
	"context"
	"time"
)

const teamColumns = `id, name, role, bio, photo, email, linkedin_url, sort_order, is_active, created_at, updated_at`

func scanTeamMember(row rowScanner) (TeamMember, error) {
	var i TeamMember
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Role,
		&i.Bio,
		&i.Photo,
		&i.Email,
		&i.LinkedinURL,
		&i.SortOrder,
		&i.IsActive,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

// TeamMemberParams carries every writable team member column.
type TeamMemberParams struct {
	Name        string
	Role        string
	Bio         string
	Photo       string
	Email       string
	LinkedinURL string
	SortOrder   int64
	IsActive    bool
	Now         time.Time
}

const createTeamMember = `-- name: CreateTeamMember :one
INSERT INTO team_members (name, role, bio, photo, email, linkedin_url, sort_order, is_active, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
RETURNING ` + teamColumns

func (q *Queries) CreateTeamMember(ctx context.Context, arg TeamMemberParams) (TeamMember, error) {
	row := q.db.QueryRowContext(ctx, createTeamMember,
		arg.Name,
		arg.Role,
		arg.Bio,
		arg.Photo,
		arg.Email,
		arg.LinkedinURL,
		arg.SortOrder,
		arg.IsActive,
		arg.Now,
		arg.Now,
	)
	return scanTeamMember(row)
}

const updateTeamMember = `-- name: UpdateTeamMember :one
UPDATE team_members
SET name = ?, role = ?, bio = ?, photo = ?, email = ?, linkedin_url = ?, sort_order = ?, is_active = ?, updated_at = ?
WHERE id = ?
RETURNING ` + teamColumns

func (q *Queries) UpdateTeamMember(ctx context.Context, id int64, arg TeamMemberParams) (TeamMember, error) {
	row := q.db.QueryRowContext(ctx, updateTeamMember,
		arg.Name,
		arg.Role,
		arg.Bio,
		arg.Photo,
		arg.Email,
		arg.LinkedinURL,
		arg.SortOrder,
		arg.IsActive,
		arg.Now,
		id,
	)
	return scanTeamMember(row)
}

const getTeamMember = `-- name: GetTeamMember :one
SELECT ` + teamColumns + ` FROM team_members WHERE id = ?`

func (q *Queries) GetTeamMember(ctx context.Context, id int64) (TeamMember, error) {
	return scanTeamMember(q.db.QueryRowContext(ctx, getTeamMember, id))
}

const listActiveTeamMembers = `-- name: ListActiveTeamMembers :many
SELECT ` + teamColumns + ` FROM team_members WHERE is_active = 1 ORDER BY sort_order, name`

func (q *Queries) ListActiveTeamMembers(ctx context.Context) ([]TeamMember, error) {
	rows, err := q.db.QueryContext(ctx, listActiveTeamMembers)
	return collect(rows, err, scanTeamMember)
}

const listAllTeamMembers = `-- name: ListAllTeamMembers :many
SELECT ` + teamColumns + ` FROM team_members ORDER BY sort_order, name`

func (q *Queries) ListAllTeamMembers(ctx context.Context) ([]TeamMember, error) {
	rows, err := q.db.QueryContext(ctx, listAllTeamMembers)
	return collect(rows, err, scanTeamMember)
}

const deleteTeamMember = `-- name: DeleteTeamMember :execrows
DELETE FROM team_members WHERE id = ?`

func (q *Queries) DeleteTeamMember(ctx context.Context, id int64) (int64, error) {
	return execRows(ctx, q.db, deleteTeamMember, id)
}
