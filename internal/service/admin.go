// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/olegiv/aisite/internal/media"
	"github.com/olegiv/aisite/internal/model"
	"github.com/olegiv/aisite/internal/richtext"
	"github.com/olegiv/aisite/internal/store"
	"github.com/olegiv/aisite/internal/util"
)

// MaxSlugLength is the blog slug column limit.
const MaxSlugLength = 50

// AdminService performs staff mutations. Every call checks the actor's
// capability, validates the input and writes the change together with its
// activity log entry in one transaction.
type AdminService struct {
	db       *sql.DB
	queries  *store.Queries
	renderer *richtext.Renderer
	media    *media.Store
	logger   *slog.Logger
	now      clock
}

// NewAdminService creates a new AdminService.
func NewAdminService(db *sql.DB, renderer *richtext.Renderer, mediaStore *media.Store, logger *slog.Logger) *AdminService {
	return &AdminService{
		db:       db,
		queries:  store.New(db),
		renderer: renderer,
		media:    mediaStore,
		logger:   logger,
		now:      utcNow,
	}
}

var opActions = map[model.Operation]string{
	model.OpCreate: model.ActionCreate,
	model.OpEdit:   model.ActionUpdate,
	model.OpDelete: model.ActionDelete,
}

// mutate runs fn in a transaction after the capability check and logs the
// object fn reports.
func (s *AdminService) mutate(ctx context.Context, actor Actor, op model.Operation, entity model.Entity, fn func(q *store.Queries) (int64, string, error)) error {
	if !model.Can(actor.Role, op, entity) {
		return model.ErrUnauthorized
	}
	return inTx(ctx, s.db, func(q *store.Queries) error {
		id, repr, err := fn(q)
		if err != nil {
			return mapStoreErr(err)
		}
		return recordActivity(ctx, q, actor, opActions[op], entity, id, repr, s.now)
	})
}

// removeFiles deletes uploads left behind by a deleted row.
func (s *AdminService) removeFiles(paths ...string) {
	for _, p := range paths {
		if p == "" {
			continue
		}
		if err := s.media.Remove(p); err != nil {
			s.logger.Warn("failed to remove upload", "path", p, "error", err)
		}
	}
}

// Upload stores a media file for later use in an entity field.
func (s *AdminService) Upload(ctx context.Context, actor Actor, kind media.Kind, up media.Upload) (*media.Saved, error) {
	if !model.CanCreate(actor.Role, model.EntityMedia) {
		return nil, model.ErrUnauthorized
	}
	saved, err := s.media.Save(kind, up.Filename, up.Content)
	if err != nil {
		return nil, uploadError("file", err, s.media.MaxSize())
	}
	s.logger.Info("media uploaded", "kind", kind, "path", saved.Path, "user", actor.Username)
	return saved, nil
}

// Solutions

func solutionParams(in model.SolutionInput, now clock) store.SolutionParams {
	return store.SolutionParams{
		Title:           in.Title,
		Description:     in.Description,
		DetailedContent: in.DetailedContent,
		Category:        in.Category,
		Icon:            in.Icon,
		Features:        in.Features,
		Benefits:        in.Benefits,
		UseCases:        in.UseCases,
		FAQs:            in.FAQs,
		Image:           in.Image,
		IsFeatured:      in.IsFeatured,
		IsActive:        in.IsActive,
		SortOrder:       int64(in.Order),
		Now:             now(),
	}
}

// ListSolutions returns every solution including inactive ones.
func (s *AdminService) ListSolutions(ctx context.Context) ([]store.Solution, error) {
	return s.queries.ListAllSolutions(ctx)
}

// GetSolution returns a solution of any state.
func (s *AdminService) GetSolution(ctx context.Context, id int64) (store.Solution, error) {
	sol, err := s.queries.GetSolution(ctx, id)
	return sol, mapStoreErr(err)
}

// CreateSolution creates a solution.
func (s *AdminService) CreateSolution(ctx context.Context, actor Actor, in model.SolutionInput) (store.Solution, error) {
	var out store.Solution
	err := s.mutate(ctx, actor, model.OpCreate, model.EntitySolution, func(q *store.Queries) (int64, string, error) {
		if err := s.prepareSolution(ctx, &in); err != nil {
			return 0, "", err
		}
		var err error
		out, err = q.CreateSolution(ctx, solutionParams(in, s.now), util.NullID(actor.UserID))
		return out.ID, out.Title, err
	})
	return out, err
}

// UpdateSolution replaces a solution's fields.
func (s *AdminService) UpdateSolution(ctx context.Context, actor Actor, id int64, in model.SolutionInput) (store.Solution, error) {
	var out store.Solution
	err := s.mutate(ctx, actor, model.OpEdit, model.EntitySolution, func(q *store.Queries) (int64, string, error) {
		if err := s.prepareSolution(ctx, &in); err != nil {
			return 0, "", err
		}
		var err error
		out, err = q.UpdateSolution(ctx, id, solutionParams(in, s.now))
		return out.ID, out.Title, err
	})
	return out, err
}

func (s *AdminService) prepareSolution(ctx context.Context, in *model.SolutionInput) error {
	if err := in.Validate(); err != nil {
		return err
	}
	return s.renderer.Field(ctx, in.Format, &in.DetailedContent)
}

// DeleteSolution deletes a solution.
func (s *AdminService) DeleteSolution(ctx context.Context, actor Actor, id int64) error {
	var image string
	err := s.mutate(ctx, actor, model.OpDelete, model.EntitySolution, func(q *store.Queries) (int64, string, error) {
		sol, err := q.GetSolution(ctx, id)
		if err != nil {
			return 0, "", err
		}
		image = sol.Image
		return sol.ID, sol.Title, requireRows(q.DeleteSolution(ctx, id))
	})
	if err == nil {
		s.removeFiles(image)
	}
	return err
}

// Blog posts

// ListBlogPosts returns every post including drafts.
func (s *AdminService) ListBlogPosts(ctx context.Context) ([]store.BlogPost, error) {
	return s.queries.ListAllBlogPosts(ctx)
}

// GetBlogPost returns a post of any status.
func (s *AdminService) GetBlogPost(ctx context.Context, id int64) (store.BlogPost, error) {
	p, err := s.queries.GetBlogPost(ctx, id)
	return p, mapStoreErr(err)
}

// CreateBlogPost creates a post. A missing slug is derived from the title;
// a slug in use is ErrConstraintViolation.
func (s *AdminService) CreateBlogPost(ctx context.Context, actor Actor, in model.BlogPostInput) (store.BlogPost, error) {
	var out store.BlogPost
	err := s.mutate(ctx, actor, model.OpCreate, model.EntityBlogPost, func(q *store.Queries) (int64, string, error) {
		now := s.now()
		if err := s.prepareBlogPost(ctx, q, &in, 0); err != nil {
			return 0, "", err
		}
		var err error
		out, err = q.CreateBlogPost(ctx, blogPostParams(in, model.StampPublishedAt(in.Status, sql.NullTime{}, now), now))
		return out.ID, out.Title, err
	})
	return out, err
}

// UpdateBlogPost replaces a post's fields. published_at is set once, the
// first time the post is saved as published.
func (s *AdminService) UpdateBlogPost(ctx context.Context, actor Actor, id int64, in model.BlogPostInput) (store.BlogPost, error) {
	var out store.BlogPost
	err := s.mutate(ctx, actor, model.OpEdit, model.EntityBlogPost, func(q *store.Queries) (int64, string, error) {
		existing, err := q.GetBlogPost(ctx, id)
		if err != nil {
			return 0, "", err
		}
		now := s.now()
		if err := s.prepareBlogPost(ctx, q, &in, id); err != nil {
			return 0, "", err
		}
		out, err = q.UpdateBlogPost(ctx, id, blogPostParams(in, model.StampPublishedAt(in.Status, existing.PublishedAt, now), now))
		return out.ID, out.Title, err
	})
	return out, err
}

func (s *AdminService) prepareBlogPost(ctx context.Context, q *store.Queries, in *model.BlogPostInput, id int64) error {
	in.Normalize()
	if in.Slug == "" {
		in.Slug = util.SlugifyMax(in.Title, MaxSlugLength)
	}
	if err := in.Validate(); err != nil {
		return err
	}
	taken, err := q.BlogSlugExists(ctx, in.Slug, id)
	if err != nil {
		return err
	}
	if taken {
		return model.ErrConstraintViolation
	}
	return s.renderer.Field(ctx, in.Format, &in.Content)
}

func blogPostParams(in model.BlogPostInput, publishedAt sql.NullTime, now time.Time) store.BlogPostParams {
	return store.BlogPostParams{
		Title:         in.Title,
		Slug:          in.Slug,
		Excerpt:       in.Excerpt,
		Content:       in.Content,
		Author:        in.Author,
		Category:      in.Category,
		Tags:          in.Tags,
		FeaturedImage: in.FeaturedImage,
		IsFeatured:    in.IsFeatured,
		Status:        in.Status,
		ReadTime:      int64(in.ReadTime),
		PublishedAt:   publishedAt,
		Now:           now,
	}
}

// DeleteBlogPost deletes a post.
func (s *AdminService) DeleteBlogPost(ctx context.Context, actor Actor, id int64) error {
	var image string
	err := s.mutate(ctx, actor, model.OpDelete, model.EntityBlogPost, func(q *store.Queries) (int64, string, error) {
		p, err := q.GetBlogPost(ctx, id)
		if err != nil {
			return 0, "", err
		}
		image = p.FeaturedImage
		return p.ID, p.Title, requireRows(q.DeleteBlogPost(ctx, id))
	})
	if err == nil {
		s.removeFiles(image)
	}
	return err
}

// Articles

// ListArticles returns every article including drafts.
func (s *AdminService) ListArticles(ctx context.Context) ([]store.Article, error) {
	return s.queries.ListAllArticles(ctx)
}

// GetArticle returns an article of any status.
func (s *AdminService) GetArticle(ctx context.Context, id int64) (store.Article, error) {
	a, err := s.queries.GetArticle(ctx, id)
	return a, mapStoreErr(err)
}

// CreateArticle creates an article.
func (s *AdminService) CreateArticle(ctx context.Context, actor Actor, in model.ArticleInput) (store.Article, error) {
	var out store.Article
	err := s.mutate(ctx, actor, model.OpCreate, model.EntityArticle, func(q *store.Queries) (int64, string, error) {
		now := s.now()
		if err := s.prepareArticle(ctx, &in); err != nil {
			return 0, "", err
		}
		var err error
		out, err = q.CreateArticle(ctx, articleParams(in, model.StampPublishedAt(in.Status, sql.NullTime{}, now), now))
		return out.ID, out.Title, err
	})
	return out, err
}

// UpdateArticle replaces an article's fields under the publish-once rule.
func (s *AdminService) UpdateArticle(ctx context.Context, actor Actor, id int64, in model.ArticleInput) (store.Article, error) {
	var out store.Article
	err := s.mutate(ctx, actor, model.OpEdit, model.EntityArticle, func(q *store.Queries) (int64, string, error) {
		existing, err := q.GetArticle(ctx, id)
		if err != nil {
			return 0, "", err
		}
		now := s.now()
		if err := s.prepareArticle(ctx, &in); err != nil {
			return 0, "", err
		}
		out, err = q.UpdateArticle(ctx, id, articleParams(in, model.StampPublishedAt(in.Status, existing.PublishedAt, now), now))
		return out.ID, out.Title, err
	})
	return out, err
}

func (s *AdminService) prepareArticle(ctx context.Context, in *model.ArticleInput) error {
	in.Normalize()
	if err := in.Validate(); err != nil {
		return err
	}
	return s.renderer.Field(ctx, in.Format, &in.Content)
}

func articleParams(in model.ArticleInput, publishedAt sql.NullTime, now time.Time) store.ArticleParams {
	return store.ArticleParams{
		Title:         in.Title,
		Content:       in.Content,
		Excerpt:       in.Excerpt,
		Category:      in.Category,
		Status:        in.Status,
		ArticleType:   in.ArticleType,
		Author:        in.Author,
		FeaturedImage: in.FeaturedImage,
		PdfFile:       in.PDFFile,
		IsFeatured:    in.IsFeatured,
		PublishedAt:   publishedAt,
		Now:           now,
	}
}

// DeleteArticle deletes an article and its files.
func (s *AdminService) DeleteArticle(ctx context.Context, actor Actor, id int64) error {
	var files []string
	err := s.mutate(ctx, actor, model.OpDelete, model.EntityArticle, func(q *store.Queries) (int64, string, error) {
		a, err := q.GetArticle(ctx, id)
		if err != nil {
			return 0, "", err
		}
		files = []string{a.FeaturedImage, a.PdfFile}
		return a.ID, a.Title, requireRows(q.DeleteArticle(ctx, id))
	})
	if err == nil {
		s.removeFiles(files...)
	}
	return err
}

// Events

// ListEvents returns every event.
func (s *AdminService) ListEvents(ctx context.Context) ([]store.Event, error) {
	return s.queries.ListEvents(ctx, "", "")
}

// GetEvent returns an event.
func (s *AdminService) GetEvent(ctx context.Context, id int64) (store.Event, error) {
	ev, err := s.queries.GetEvent(ctx, id)
	return ev, mapStoreErr(err)
}

func eventParams(in model.EventInput, now clock) store.EventParams {
	return store.EventParams{
		Title:           in.Title,
		Description:     in.Description,
		EventType:       in.EventType,
		EventDate:       in.Date,
		EventTime:       in.Time,
		Location:        in.Location,
		Capacity:        int64(in.Capacity),
		Price:           in.Price,
		FeaturedImage:   in.FeaturedImage,
		Speakers:        in.Speakers,
		Agenda:          in.Agenda,
		Status:          in.Status,
		IsFeatured:      in.IsFeatured,
		RegistrationURL: in.RegistrationURL,
		Now:             now(),
	}
}

func (s *AdminService) prepareEvent(ctx context.Context, in *model.EventInput) error {
	in.Normalize()
	if err := in.Validate(); err != nil {
		return err
	}
	return s.renderer.Field(ctx, in.Format, &in.Description)
}

// CreateEvent creates an event.
func (s *AdminService) CreateEvent(ctx context.Context, actor Actor, in model.EventInput) (store.Event, error) {
	var out store.Event
	err := s.mutate(ctx, actor, model.OpCreate, model.EntityEvent, func(q *store.Queries) (int64, string, error) {
		if err := s.prepareEvent(ctx, &in); err != nil {
			return 0, "", err
		}
		var err error
		out, err = q.CreateEvent(ctx, eventParams(in, s.now), util.NullID(actor.UserID))
		return out.ID, out.Title, err
	})
	return out, err
}

// UpdateEvent replaces an event's fields.
func (s *AdminService) UpdateEvent(ctx context.Context, actor Actor, id int64, in model.EventInput) (store.Event, error) {
	var out store.Event
	err := s.mutate(ctx, actor, model.OpEdit, model.EntityEvent, func(q *store.Queries) (int64, string, error) {
		if err := s.prepareEvent(ctx, &in); err != nil {
			return 0, "", err
		}
		var err error
		out, err = q.UpdateEvent(ctx, id, eventParams(in, s.now))
		return out.ID, out.Title, err
	})
	return out, err
}

// DeleteEvent deletes an event; its registrations go with it.
func (s *AdminService) DeleteEvent(ctx context.Context, actor Actor, id int64) error {
	var image string
	err := s.mutate(ctx, actor, model.OpDelete, model.EntityEvent, func(q *store.Queries) (int64, string, error) {
		ev, err := q.GetEvent(ctx, id)
		if err != nil {
			return 0, "", err
		}
		image = ev.FeaturedImage
		return ev.ID, ev.Title, requireRows(q.DeleteEvent(ctx, id))
	})
	if err == nil {
		s.removeFiles(image)
	}
	return err
}
