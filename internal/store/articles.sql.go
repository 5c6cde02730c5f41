package store

import (
	"context"
	"database/sql"
	"time"
)

const articleColumns = `id, title, content, excerpt, category, status, article_type, author, featured_image, pdf_file, is_featured, download_count, published_at, created_at, updated_at`

func scanArticle(row rowScanner) (Article, error) {
	var i Article
	err := row.Scan(
		&i.ID,
		&i.Title,
		&i.Content,
		&i.Excerpt,
		&i.Category,
		&i.Status,
		&i.ArticleType,
		&i.Author,
		&i.FeaturedImage,
		&i.PdfFile,
		&i.IsFeatured,
		&i.DownloadCount,
		&i.PublishedAt,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

// ArticleParams carries every writable article column.
type ArticleParams struct {
	Title         string
	Content       string
	Excerpt       string
	Category      string
	Status        string
	ArticleType   string
	Author        string
	FeaturedImage string
	PdfFile       string
	IsFeatured    bool
	PublishedAt   sql.NullTime
	Now           time.Time
}

const createArticle = `-- name: CreateArticle :one
INSERT INTO articles (title, content, excerpt, category, status, article_type, author, featured_image, pdf_file,
    is_featured, published_at, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
RETURNING ` + articleColumns

func (q *Queries) CreateArticle(ctx context.Context, arg ArticleParams) (Article, error) {
	row := q.db.QueryRowContext(ctx, createArticle,
		arg.Title,
		arg.Content,
		arg.Excerpt,
		arg.Category,
		arg.Status,
		arg.ArticleType,
		arg.Author,
		arg.FeaturedImage,
		arg.PdfFile,
		arg.IsFeatured,
		arg.PublishedAt,
		arg.Now,
		arg.Now,
	)
	return scanArticle(row)
}

const updateArticle = `-- name: UpdateArticle :one
UPDATE articles
SET title = ?, content = ?, excerpt = ?, category = ?, status = ?, article_type = ?, author = ?,
    featured_image = ?, pdf_file = ?, is_featured = ?, published_at = ?, updated_at = ?
WHERE id = ?
RETURNING ` + articleColumns

func (q *Queries) UpdateArticle(ctx context.Context, id int64, arg ArticleParams) (Article, error) {
	row := q.db.QueryRowContext(ctx, updateArticle,
		arg.Title,
		arg.Content,
		arg.Excerpt,
		arg.Category,
		arg.Status,
		arg.ArticleType,
		arg.Author,
		arg.FeaturedImage,
		arg.PdfFile,
		arg.IsFeatured,
		arg.PublishedAt,
		arg.Now,
		id,
	)
	return scanArticle(row)
}

const getArticle = `-- name: GetArticle :one
SELECT ` + articleColumns + ` FROM articles WHERE id = ?`

func (q *Queries) GetArticle(ctx context.Context, id int64) (Article, error) {
	return scanArticle(q.db.QueryRowContext(ctx, getArticle, id))
}

const getPublishedArticle = `-- name: GetPublishedArticle :one
SELECT ` + articleColumns + ` FROM articles WHERE id = ? AND status = 'published'`

func (q *Queries) GetPublishedArticle(ctx context.Context, id int64) (Article, error) {
	return scanArticle(q.db.QueryRowContext(ctx, getPublishedArticle, id))
}

const listPublishedArticles = `-- name: ListPublishedArticles :many
SELECT ` + articleColumns + ` FROM articles
WHERE status = 'published' AND (?1 = '' OR article_type = ?1)
ORDER BY published_at DESC, id DESC
LIMIT ?2 OFFSET ?3`

func (q *Queries) ListPublishedArticles(ctx context.Context, articleType string, limit, offset int64) ([]Article, error) {
	rows, err := q.db.QueryContext(ctx, listPublishedArticles, articleType, limit, offset)
	return collect(rows, err, scanArticle)
}

const countPublishedArticles = `-- name: CountPublishedArticles :one
SELECT COUNT(*) FROM articles WHERE status = 'published' AND (?1 = '' OR article_type = ?1)`

func (q *Queries) CountPublishedArticles(ctx context.Context, articleType string) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, countPublishedArticles, articleType).Scan(&count)
	return count, err
}

const listAllArticles = `-- name: ListAllArticles :many
SELECT ` + articleColumns + ` FROM articles ORDER BY published_at DESC, id DESC`

func (q *Queries) ListAllArticles(ctx context.Context) ([]Article, error) {
	rows, err := q.db.QueryContext(ctx, listAllArticles)
	return collect(rows, err, scanArticle)
}

const countArticleDownload = `-- name: CountArticleDownload :one
UPDATE articles
SET download_count = download_count + 1
WHERE id = ? AND pdf_file != ''
RETURNING ` + articleColumns

// CountArticleDownload increments the download counter of an article that has
// a file attached and returns the updated row. Articles without a file are left
// untouched and yield sql.ErrNoRows.
func (q *Queries) CountArticleDownload(ctx context.Context, id int64) (Article, error) {
	return scanArticle(q.db.QueryRowContext(ctx, countArticleDownload, id))
}

const deleteArticle = `-- name: DeleteArticle :execrows
DELETE FROM articles WHERE id = ?`

func (q *Queries) DeleteArticle(ctx context.Context, id int64) (int64, error) {
	return execRows(ctx, q.db, deleteArticle, id)
}
