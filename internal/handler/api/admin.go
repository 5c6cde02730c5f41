// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/olegiv/aisite/internal/handler"
	"github.com/olegiv/aisite/internal/media"
	"github.com/olegiv/aisite/internal/model"
	"github.com/olegiv/aisite/internal/service"
	"github.com/olegiv/aisite/internal/store"
)

// resource serves the admin CRUD endpoints of one entity type. A nil
// operation leaves its route unmounted.
type resource[T, In, Out any] struct {
	h      *Handler
	name   string
	extra  func(r chi.Router)
	list   func(ctx context.Context, actor service.Actor) ([]T, error)
	get    func(ctx context.Context, id int64) (T, error)
	create func(ctx context.Context, actor service.Actor, in In) (T, error)
	update func(ctx context.Context, actor service.Actor, id int64, in In) (T, error)
	remove func(ctx context.Context, actor service.Actor, id int64) error
	render func(T) Out
	facets func(T) service.Facets
}

// mount registers the configured operations on r.
func (res *resource[T, In, Out]) mount(r chi.Router) {
	if res.extra != nil {
		res.extra(r)
	}
	if res.list != nil {
		r.Get("/", res.List)
	}
	if res.create != nil {
		r.Post("/", res.Create)
	}
	if res.get != nil {
		r.Get("/{id}", res.Get)
	}
	if res.update != nil {
		r.Put("/{id}", res.Update)
		r.Patch("/{id}", res.Update)
	}
	if res.remove != nil {
		r.Delete("/{id}", res.Delete)
	}
}

// List handles GET /.
func (res *resource[T, In, Out]) List(w http.ResponseWriter, r *http.Request) {
	actor, ok := res.h.requireActor(w, r)
	if !ok {
		return
	}
	items, err := res.list(r.Context(), actor)
	if err != nil {
		res.h.writeServiceError(w, r, res.name, err)
		return
	}
	if res.facets != nil {
		items = service.FilterList(items, listQuery(r, service.FilterKeys(res.facets)), res.facets)
	}
	WriteSuccess(w, mapSlice(items, res.render), listMeta(len(items)))
}

// listQuery reads ?search= and the given filter parameters.
func listQuery(r *http.Request, keys []string) service.ListQuery {
	q := service.ListQuery{Search: handler.QueryString(r, "search")}
	for _, k := range keys {
		if v := handler.QueryString(r, k); v != "" {
			if q.Filters == nil {
				q.Filters = make(map[string]string)
			}
			q.Filters[k] = v
		}
	}
	return q
}

// Get handles GET /{id}.
func (res *resource[T, In, Out]) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := requireID(w, r, res.name)
	if !ok {
		return
	}
	item, err := res.get(r.Context(), id)
	if err != nil {
		res.h.writeServiceError(w, r, res.name, err)
		return
	}
	WriteSuccess(w, res.render(item), nil)
}

// Create handles POST /.
func (res *resource[T, In, Out]) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := res.h.requireActor(w, r)
	if !ok {
		return
	}
	in, ok := decodeBody[In](w, r)
	if !ok {
		return
	}
	item, err := res.create(r.Context(), actor, in)
	if err != nil {
		res.h.writeServiceError(w, r, res.name, err)
		return
	}
	WriteCreated(w, res.render(item))
}

// Update handles PUT and PATCH /{id}. The body replaces every field.
func (res *resource[T, In, Out]) Update(w http.ResponseWriter, r *http.Request) {
	actor, ok := res.h.requireActor(w, r)
	if !ok {
		return
	}
	id, ok := requireID(w, r, res.name)
	if !ok {
		return
	}
	in, ok := decodeBody[In](w, r)
	if !ok {
		return
	}
	item, err := res.update(r.Context(), actor, id, in)
	if err != nil {
		res.h.writeServiceError(w, r, res.name, err)
		return
	}
	WriteSuccess(w, res.render(item), nil)
}

// Delete handles DELETE /{id}.
func (res *resource[T, In, Out]) Delete(w http.ResponseWriter, r *http.Request) {
	actor, ok := res.h.requireActor(w, r)
	if !ok {
		return
	}
	id, ok := requireID(w, r, res.name)
	if !ok {
		return
	}
	if err := res.remove(r.Context(), actor, id); err != nil {
		res.h.writeServiceError(w, r, res.name, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// withoutActor adapts a list function that does not need the actor.
func withoutActor[T any](fn func(context.Context) ([]T, error)) func(context.Context, service.Actor) ([]T, error) {
	return func(ctx context.Context, _ service.Actor) ([]T, error) {
		return fn(ctx)
	}
}

// SubscriberUpdateRequest toggles a newsletter subscription.
type SubscriberUpdateRequest struct {
	IsActive bool `json:"is_active"`
}

func (h *Handler) adminResources() map[string]interface{ mount(chi.Router) } {
	a := h.admin
	staffArticle := func(x store.Article) ArticleResponse { return articleToResponse(x, true) }

	return map[string]interface{ mount(chi.Router) }{
		"/solutions": &resource[store.Solution, model.SolutionInput, SolutionResponse]{
			h: h, name: "solution",
			list: withoutActor(a.ListSolutions), get: a.GetSolution,
			create: a.CreateSolution, update: a.UpdateSolution, remove: a.DeleteSolution,
			render: solutionToResponse,
			facets: service.SolutionFacets,
		},
		"/blog": &resource[store.BlogPost, model.BlogPostInput, BlogPostResponse]{
			h: h, name: "blog post",
			list: withoutActor(a.ListBlogPosts), get: a.GetBlogPost,
			create: a.CreateBlogPost, update: a.UpdateBlogPost, remove: a.DeleteBlogPost,
			render: blogPostToResponse,
			facets: service.BlogPostFacets,
		},
		"/articles": &resource[store.Article, model.ArticleInput, ArticleResponse]{
			h: h, name: "article",
			list: withoutActor(a.ListArticles), get: a.GetArticle,
			create: a.CreateArticle, update: a.UpdateArticle, remove: a.DeleteArticle,
			render: staffArticle,
			facets: service.ArticleFacets,
		},
		"/events": &resource[store.Event, model.EventInput, EventResponse]{
			h: h, name: "event",
			extra: func(r chi.Router) {
				r.Get("/{id}/registrations", h.ListRegistrations)
			},
			list: withoutActor(a.ListEvents), get: a.GetEvent,
			create: a.CreateEvent, update: a.UpdateEvent, remove: a.DeleteEvent,
			render: eventToResponse,
			facets: service.EventFacets,
		},
		"/gallery": &resource[store.GalleryItem, model.GalleryItemInput, GalleryItemResponse]{
			h: h, name: "gallery item",
			list:   withoutActor(a.ListGallery),
			create: a.CreateGalleryItem, update: a.UpdateGalleryItem, remove: a.DeleteGalleryItem,
			render: galleryItemToResponse,
			facets: service.GalleryItemFacets,
		},
		"/team": &resource[store.TeamMember, model.TeamMemberInput, TeamMemberResponse]{
			h: h, name: "team member",
			list:   withoutActor(a.ListTeam),
			create: a.CreateTeamMember, update: a.UpdateTeamMember, remove: a.DeleteTeamMember,
			render: teamMemberToResponse,
			facets: service.TeamMemberFacets,
		},
		"/inquiries": &resource[store.ContactInquiry, model.InquiryUpdateInput, InquiryResponse]{
			h: h, name: "inquiry",
			extra: func(r chi.Router) {
				r.Get("/export.xlsx", h.ExportInquiries)
			},
			list: withoutActor(a.ListInquiries), get: a.GetInquiry,
			update: a.UpdateInquiry, remove: a.DeleteInquiry,
			render: inquiryToResponse,
			facets: service.InquiryFacets,
		},
		"/feedback": &resource[store.Feedback, model.FeedbackModerationInput, FeedbackResponse]{
			h: h, name: "feedback",
			list:   withoutActor(a.ListFeedback),
			update: a.ModerateFeedback, remove: a.DeleteFeedback,
			render: feedbackToResponse,
			facets: service.FeedbackFacets,
		},
		"/registrations": &resource[store.EventRegistration, model.RegistrationUpdateInput, RegistrationResponse]{
			h: h, name: "registration",
			update: a.UpdateRegistration, remove: a.DeleteRegistration,
			render: registrationToResponse,
		},
		"/subscribers": &resource[store.NewsletterSubscriber, SubscriberUpdateRequest, SubscriberResponse]{
			h: h, name: "subscriber",
			list: withoutActor(a.ListSubscribers),
			update: func(ctx context.Context, actor service.Actor, id int64, in SubscriberUpdateRequest) (store.NewsletterSubscriber, error) {
				return a.SetSubscriberActive(ctx, actor, id, in.IsActive)
			},
			remove: a.DeleteSubscriber,
			render: subscriberToResponse,
			facets: service.SubscriberFacets,
		},
		"/users": &resource[store.User, model.UserInput, handler.UserResponse]{
			h: h, name: "user",
			list:   a.ListUsers,
			create: a.CreateUser, update: a.UpdateUser, remove: a.DeleteUser,
			render: handler.NewUserResponse,
			facets: service.UserFacets,
		},
	}
}

// ListRegistrations handles GET /api/v1/admin/events/{id}/registrations.
func (h *Handler) ListRegistrations(w http.ResponseWriter, r *http.Request) {
	id, ok := requireID(w, r, "event")
	if !ok {
		return
	}
	regs, err := h.admin.ListRegistrations(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, r, "event", err)
		return
	}
	WriteSuccess(w, mapSlice(regs, registrationToResponse), listMeta(len(regs)))
}

// UpdateSettings handles PUT /api/v1/admin/settings.
func (h *Handler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.requireActor(w, r)
	if !ok {
		return
	}
	in, ok := decodeBody[model.SiteSettingsInput](w, r)
	if !ok {
		return
	}
	s, err := h.settings.Save(r.Context(), actor, in)
	if err != nil {
		h.writeServiceError(w, r, "settings", err)
		return
	}
	WriteSuccess(w, siteSettingsToResponse(s), nil)
}

// UpdateAbout handles PUT /api/v1/admin/about.
func (h *Handler) UpdateAbout(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.requireActor(w, r)
	if !ok {
		return
	}
	in, ok := decodeBody[model.AboutInput](w, r)
	if !ok {
		return
	}
	a, err := h.settings.SaveAbout(r.Context(), actor, in)
	if err != nil {
		h.writeServiceError(w, r, "about", err)
		return
	}
	WriteSuccess(w, aboutToResponse(a), nil)
}

// ListActivity handles GET /api/v1/admin/activity.
// Query parameters:
//   - page: page number (default: 1)
func (h *Handler) ListActivity(w http.ResponseWriter, r *http.Request) {
	page, err := h.activity.List(r.Context(), handler.QueryInt(r, "page", 1))
	if err != nil {
		h.writeServiceError(w, r, "activity", err)
		return
	}
	WriteSuccess(w, mapSlice(page.Items, activityToResponse), pageMeta(page))
}

// xlsxContentType is the media type of Office Open XML workbooks.
const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportInquiries handles GET /api/v1/admin/inquiries/export.xlsx.
func (h *Handler) ExportInquiries(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.requireActor(w, r)
	if !ok {
		return
	}
	data, err := h.admin.ExportInquiries(r.Context(), actor)
	if err != nil {
		h.writeServiceError(w, r, "export", err)
		return
	}
	filename := fmt.Sprintf("inquiries-%s.xlsx", time.Now().UTC().Format("20060102"))
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.Header().Set("Content-Length", fmt.Sprint(len(data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// uploadField is the multipart field carrying the uploaded file.
const uploadField = "file"

// UploadMedia handles POST /api/v1/admin/media/{kind}.
func (h *Handler) UploadMedia(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.requireActor(w, r)
	if !ok {
		return
	}
	kind, err := media.ParseKind(chi.URLParam(r, "kind"))
	if err != nil {
		WriteNotFound(w, "Unknown media kind")
		return
	}

	if err := handler.ParseMultipart(w, r, h.maxUpload); err != nil {
		if handler.IsBodyTooLarge(err) {
			WriteValidationError(w, map[string]string{
				uploadField: fmt.Sprintf("File size must be under %dMB.", h.maxUpload>>20),
			})
			return
		}
		WriteBadRequest(w, "Invalid multipart body", nil)
		return
	}
	up, closer, err := handler.FormUpload(r, uploadField)
	if err != nil {
		WriteBadRequest(w, "Invalid file upload", nil)
		return
	}
	if up == nil {
		WriteValidationError(w, map[string]string{uploadField: "Please select a file to upload."})
		return
	}
	defer func() { _ = closer.Close() }()

	saved, err := h.admin.Upload(r.Context(), actor, kind, *up)
	if err != nil {
		h.writeServiceError(w, r, "media", err)
		return
	}
	WriteCreated(w, saved)
}
