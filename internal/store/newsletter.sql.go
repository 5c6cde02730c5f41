package store

import (
	"context"
	"time"
)

const subscriberColumns = `id, email, name, is_active, subscribed_at`

func scanSubscriber(row rowScanner) (NewsletterSubscriber, error) {
	var i NewsletterSubscriber
	err := row.Scan(&i.ID, &i.Email, &i.Name, &i.IsActive, &i.SubscribedAt)
	return i, err
}

const insertSubscriberIfAbsent = `-- name: InsertSubscriberIfAbsent :execrows
INSERT INTO newsletter_subscribers (email, name, subscribed_at)
VALUES (?, ?, ?)
ON CONFLICT (email) DO NOTHING`

// InsertSubscriberIfAbsent returns 1 when a row was inserted and 0 when the
// email is already subscribed.
func (q *Queries) InsertSubscriberIfAbsent(ctx context.Context, email, name string, at time.Time) (int64, error) {
	return execRows(ctx, q.db, insertSubscriberIfAbsent, email, name, at)
}

const getSubscriberByEmail = `-- name: GetSubscriberByEmail :one
SELECT ` + subscriberColumns + ` FROM newsletter_subscribers WHERE email = ?`

func (q *Queries) GetSubscriberByEmail(ctx context.Context, email string) (NewsletterSubscriber, error) {
	return scanSubscriber(q.db.QueryRowContext(ctx, getSubscriberByEmail, email))
}

const getSubscriber = `-- name: GetSubscriber :one
SELECT ` + subscriberColumns + ` FROM newsletter_subscribers WHERE id = ?`

func (q *Queries) GetSubscriber(ctx context.Context, id int64) (NewsletterSubscriber, error) {
	return scanSubscriber(q.db.QueryRowContext(ctx, getSubscriber, id))
}

const listSubscribers = `-- name: ListSubscribers :many
SELECT ` + subscriberColumns + ` FROM newsletter_subscribers ORDER BY subscribed_at DESC, id DESC`

func (q *Queries) ListSubscribers(ctx context.Context) ([]NewsletterSubscriber, error) {
	rows, err := q.db.QueryContext(ctx, listSubscribers)
	return collect(rows, err, scanSubscriber)
}

const setSubscriberActive = `-- name: SetSubscriberActive :one
UPDATE newsletter_subscribers SET is_active = ? WHERE id = ?
RETURNING ` + subscriberColumns

func (q *Queries) SetSubscriberActive(ctx context.Context, id int64, active bool) (NewsletterSubscriber, error) {
	return scanSubscriber(q.db.QueryRowContext(ctx, setSubscriberActive, active, id))
}

const deleteSubscriber = `-- name: DeleteSubscriber :execrows
DELETE FROM newsletter_subscribers WHERE id = ?`

func (q *Queries) DeleteSubscriber(ctx context.Context, id int64) (int64, error) {
	return execRows(ctx, q.db, deleteSubscriber, id)
}
