package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/olegiv/aisite/internal/model"
)

const blogPostColumns = `id, title, slug, excerpt, content, author, category, tags, featured_image, is_featured, status, read_time, views_count, published_at, created_at, updated_at`

func scanBlogPost(row rowScanner) (BlogPost, error) {
	var i BlogPost
	err := row.Scan(
		&i.ID,
		&i.Title,
		&i.Slug,
		&i.Excerpt,
		&i.Content,
		&i.Author,
		&i.Category,
		&i.Tags,
		&i.FeaturedImage,
		&i.IsFeatured,
		&i.Status,
		&i.ReadTime,
		&i.ViewsCount,
		&i.PublishedAt,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

// BlogPostParams carries every writable blog post column.
type BlogPostParams struct {
	Title         string
	Slug          string
	Excerpt       string
	Content       string
	Author        string
	Category      string
	Tags          model.StringList
	FeaturedImage string
	IsFeatured    bool
	Status        string
	ReadTime      int64
	PublishedAt   sql.NullTime
	Now           time.Time
}

const createBlogPost = `-- name: CreateBlogPost :one
INSERT INTO blog_posts (title, slug, excerpt, content, author, category, tags, featured_image, is_featured,
    status, read_time, published_at, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
RETURNING ` + blogPostColumns

func (q *Queries) CreateBlogPost(ctx context.Context, arg BlogPostParams) (BlogPost, error) {
	row := q.db.QueryRowContext(ctx, createBlogPost,
		arg.Title,
		arg.Slug,
		arg.Excerpt,
		arg.Content,
		arg.Author,
		arg.Category,
		arg.Tags,
		arg.FeaturedImage,
		arg.IsFeatured,
		arg.Status,
		arg.ReadTime,
		arg.PublishedAt,
		arg.Now,
		arg.Now,
	)
	return scanBlogPost(row)
}

const updateBlogPost = `-- name: UpdateBlogPost :one
UPDATE blog_posts
SET title = ?, slug = ?, excerpt = ?, content = ?, author = ?, category = ?, tags = ?, featured_image = ?,
    is_featured = ?, status = ?, read_time = ?, published_at = ?, updated_at = ?
WHERE id = ?
RETURNING ` + blogPostColumns

func (q *Queries) UpdateBlogPost(ctx context.Context, id int64, arg BlogPostParams) (BlogPost, error) {
	row := q.db.QueryRowContext(ctx, updateBlogPost,
		arg.Title,
		arg.Slug,
		arg.Excerpt,
		arg.Content,
		arg.Author,
		arg.Category,
		arg.Tags,
		arg.FeaturedImage,
		arg.IsFeatured,
		arg.Status,
		arg.ReadTime,
		arg.PublishedAt,
		arg.Now,
		id,
	)
	return scanBlogPost(row)
}

const getBlogPost = `-- name: GetBlogPost :one
SELECT ` + blogPostColumns + ` FROM blog_posts WHERE id = ?`

func (q *Queries) GetBlogPost(ctx context.Context, id int64) (BlogPost, error) {
	return scanBlogPost(q.db.QueryRowContext(ctx, getBlogPost, id))
}

const viewPublishedBlogPost = `-- name: ViewPublishedBlogPost :one
UPDATE blog_posts
SET views_count = views_count + 1
WHERE slug = ? AND status = 'published'
RETURNING ` + blogPostColumns

// ViewPublishedBlogPost increments the view counter of a published post and
// returns it in one statement. Drafts and archived posts yield sql.ErrNoRows.
func (q *Queries) ViewPublishedBlogPost(ctx context.Context, slug string) (BlogPost, error) {
	return scanBlogPost(q.db.QueryRowContext(ctx, viewPublishedBlogPost, slug))
}

const getPublishedBlogPostBySlug = `-- name: GetPublishedBlogPostBySlug :one
SELECT ` + blogPostColumns + ` FROM blog_posts WHERE slug = ? AND status = 'published'`

// GetPublishedBlogPostBySlug reads a published post without counting a view.
func (q *Queries) GetPublishedBlogPostBySlug(ctx context.Context, slug string) (BlogPost, error) {
	return scanBlogPost(q.db.QueryRowContext(ctx, getPublishedBlogPostBySlug, slug))
}

const publishedBlogFilter = `
WHERE status = 'published'
  AND (?1 = '' OR category = ?1)
  AND (?2 = '' OR title LIKE ?2 ESCAPE '\' OR excerpt LIKE ?2 ESCAPE '\' OR content LIKE ?2 ESCAPE '\')`

const listPublishedBlogPosts = `-- name: ListPublishedBlogPosts :many
SELECT ` + blogPostColumns + ` FROM blog_posts` + publishedBlogFilter + `
ORDER BY published_at DESC, created_at DESC, id DESC
LIMIT ?3 OFFSET ?4`

const countPublishedBlogPosts = `-- name: CountPublishedBlogPosts :one
SELECT COUNT(*) FROM blog_posts` + publishedBlogFilter

// BlogFilterParams narrows the published blog listing. Search matches title,
// excerpt or content as a case-insensitive substring.
type BlogFilterParams struct {
	Category string
	Search   string
}

func (p BlogFilterParams) pattern() string {
	if p.Search == "" {
		return ""
	}
	return "%" + escapeLike(p.Search) + "%"
}

func (q *Queries) ListPublishedBlogPosts(ctx context.Context, arg BlogFilterParams, limit, offset int64) ([]BlogPost, error) {
	rows, err := q.db.QueryContext(ctx, listPublishedBlogPosts, arg.Category, arg.pattern(), limit, offset)
	return collect(rows, err, scanBlogPost)
}

func (q *Queries) CountPublishedBlogPosts(ctx context.Context, arg BlogFilterParams) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, countPublishedBlogPosts, arg.Category, arg.pattern()).Scan(&count)
	return count, err
}

const listRelatedBlogPosts = `-- name: ListRelatedBlogPosts :many
SELECT ` + blogPostColumns + ` FROM blog_posts
WHERE status = 'published' AND category = ? AND id != ?
ORDER BY published_at DESC, created_at DESC, id DESC
LIMIT ?`

type ListRelatedBlogPostsParams struct {
	Category  string
	ExcludeID int64
	Limit     int64
}

func (q *Queries) ListRelatedBlogPosts(ctx context.Context, arg ListRelatedBlogPostsParams) ([]BlogPost, error) {
	rows, err := q.db.QueryContext(ctx, listRelatedBlogPosts, arg.Category, arg.ExcludeID, arg.Limit)
	return collect(rows, err, scanBlogPost)
}

const listRecentBlogPosts = `-- name: ListRecentBlogPosts :many
SELECT ` + blogPostColumns + ` FROM blog_posts
WHERE status = 'published'
ORDER BY published_at DESC, created_at DESC, id DESC
LIMIT ?`

func (q *Queries) ListRecentBlogPosts(ctx context.Context, limit int64) ([]BlogPost, error) {
	rows, err := q.db.QueryContext(ctx, listRecentBlogPosts, limit)
	return collect(rows, err, scanBlogPost)
}

const listAllBlogPosts = `-- name: ListAllBlogPosts :many
SELECT ` + blogPostColumns + ` FROM blog_posts
ORDER BY published_at DESC, created_at DESC, id DESC`

func (q *Queries) ListAllBlogPosts(ctx context.Context) ([]BlogPost, error) {
	rows, err := q.db.QueryContext(ctx, listAllBlogPosts)
	return collect(rows, err, scanBlogPost)
}

const blogSlugExists = `-- name: BlogSlugExists :one
SELECT EXISTS(SELECT 1 FROM blog_posts WHERE slug = ? AND id != ?)`

// BlogSlugExists reports whether another post already uses slug.
func (q *Queries) BlogSlugExists(ctx context.Context, slug string, excludeID int64) (bool, error) {
	var exists bool
	err := q.db.QueryRowContext(ctx, blogSlugExists, slug, excludeID).Scan(&exists)
	return exists, err
}

const deleteBlogPost = `-- name: DeleteBlogPost :execrows
DELETE FROM blog_posts WHERE id = ?`

func (q *Queries) DeleteBlogPost(ctx context.Context, id int64) (int64, error) {
	return execRows(ctx, q.db, deleteBlogPost, id)
}
