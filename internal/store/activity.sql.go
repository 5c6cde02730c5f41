package store

import (
	"context"
	"database/sql"
	"time"
)

const activityColumns = `id, user_id, username, action, content_type, object_id, object_repr, ip_address, created_at`

func scanActivity(row rowScanner) (ActivityLog, error) {
	var i ActivityLog
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.Username,
		&i.Action,
		&i.ContentType,
		&i.ObjectID,
		&i.ObjectRepr,
		&i.IpAddress,
		&i.CreatedAt,
	)
	return i, err
}

const createActivityLog = `-- name: CreateActivityLog :one
INSERT INTO activity_logs (user_id, username, action, content_type, object_id, object_repr, ip_address, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
RETURNING ` + activityColumns

type CreateActivityLogParams struct {
	UserID      sql.NullInt64
	Username    string
	Action      string
	ContentType string
	ObjectID    int64
	ObjectRepr  string
	IpAddress   string
	CreatedAt   time.Time
}

func (q *Queries) CreateActivityLog(ctx context.Context, arg CreateActivityLogParams) (ActivityLog, error) {
	row := q.db.QueryRowContext(ctx, createActivityLog,
		arg.UserID,
		arg.Username,
		arg.Action,
		arg.ContentType,
		arg.ObjectID,
		arg.ObjectRepr,
		arg.IpAddress,
		arg.CreatedAt,
	)
	return scanActivity(row)
}

const listActivityLogs = `-- name: ListActivityLogs :many
SELECT ` + activityColumns + ` FROM activity_logs
ORDER BY created_at DESC, id DESC
LIMIT ? OFFSET ?`

func (q *Queries) ListActivityLogs(ctx context.Context, limit, offset int64) ([]ActivityLog, error) {
	rows, err := q.db.QueryContext(ctx, listActivityLogs, limit, offset)
	return collect(rows, err, scanActivity)
}

const countActivityLogs = `-- name: CountActivityLogs :one
SELECT COUNT(*) FROM activity_logs`

func (q *Queries) CountActivityLogs(ctx context.Context) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, countActivityLogs).Scan(&count)
	return count, err
}
