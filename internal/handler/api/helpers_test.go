// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/olegiv/aisite/internal/cache"
	"github.com/olegiv/aisite/internal/media"
	"github.com/olegiv/aisite/internal/middleware"
	"github.com/olegiv/aisite/internal/model"
	"github.com/olegiv/aisite/internal/richtext"
	"github.com/olegiv/aisite/internal/service"
	"github.com/olegiv/aisite/internal/store"
	"github.com/olegiv/aisite/internal/testutil"
)

const maxTestUpload = 1 << 20

// apiFixture wires the API over a migrated test database.
type apiFixture struct {
	handler *Handler
	router  http.Handler
	admin   *service.AdminService
	intake  *service.IntakeService
	media   *media.Store

	adminUser  store.User
	editorUser store.User
	viewerUser store.User
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()

	db, cleanup := testutil.TestDB(t)
	t.Cleanup(cleanup)

	logger := testutil.TestLoggerSilent()
	renderer := richtext.New(cache.NewMemoryCache(cache.MemoryCacheOptions{}), logger)
	uploads := media.NewStore(t.TempDir(), maxTestUpload)
	settings := service.NewSettingsService(db, renderer)
	admin := service.NewAdminService(db, renderer, uploads, logger)

	h := NewHandler(Services{
		Content:  service.NewContentService(db, settings),
		Settings: settings,
		Admin:    admin,
		Activity: service.NewActivityService(db),
	}, logger, false, maxTestUpload)

	r := chi.NewRouter()
	r.Route("/api/v1", func(r chi.Router) {
		h.MountPublic(r)
		r.Route("/admin", h.MountAdmin)
	})

	return &apiFixture{
		handler:    h,
		router:     r,
		admin:      admin,
		intake:     service.NewIntakeService(db, uploads, nil, logger),
		media:      uploads,
		adminUser:  testutil.CreateUser(t, db, "root", model.RoleAdmin, "correct-horse-battery"),
		editorUser: testutil.CreateUser(t, db, "writer", model.RoleEditor, "correct-horse-battery"),
		viewerUser: testutil.CreateUser(t, db, "reader", model.RoleViewer, "correct-horse-battery"),
	}
}

// actorFor returns the service actor for u.
func actorFor(u store.User) service.Actor {
	return service.Actor{UserID: u.ID, Username: u.Username, Role: u.Role, IP: "192.0.2.1"}
}

// do serves req, optionally as the given session user.
func (f *apiFixture) do(req *http.Request, user *store.User) *httptest.ResponseRecorder {
	if user != nil {
		req = req.WithContext(context.WithValue(req.Context(), middleware.ContextKeyUser, *user))
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func (f *apiFixture) get(path string, user *store.User) *httptest.ResponseRecorder {
	return f.do(httptest.NewRequest(http.MethodGet, path, nil), user)
}

func (f *apiFixture) send(method, path string, body any, user *store.User) *httptest.ResponseRecorder {
	var r io.Reader = http.NoBody
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			panic(err)
		}
		r = strings.NewReader(string(data))
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")
	return f.do(req, user)
}

// dataResponse is a generic wrapper for API responses with a "data" field.
type dataResponse[T any] struct {
	Data T `json:"data"`
}

// listResponse is a generic wrapper for API list responses with data and meta.
type listResponse[T any] struct {
	Data []T   `json:"data"`
	Meta *Meta `json:"meta"`
}

// unmarshalData unmarshals a JSON response body into the specified type.
func unmarshalData[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var resp dataResponse[T]
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response %q: %v", w.Body.String(), err)
	}
	return resp.Data
}

// unmarshalList unmarshals a JSON list response body into the specified type.
func unmarshalList[T any](t *testing.T, w *httptest.ResponseRecorder) ([]T, *Meta) {
	t.Helper()
	var resp listResponse[T]
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response %q: %v", w.Body.String(), err)
	}
	return resp.Data, resp.Meta
}

func validSolution(title, category string) model.SolutionInput {
	return model.SolutionInput{
		Title:       title,
		Description: "Machine learning for " + title,
		Category:    category,
		Icon:        "fa-robot",
		Features:    model.StringList{"Forecasting"},
		IsActive:    true,
	}
}

func validBlogPost(title, status string) model.BlogPostInput {
	return model.BlogPostInput{
		Title:    title,
		Excerpt:  "About " + title,
		Content:  "<p>Body of " + title + "</p>",
		Author:   "AI-Solution Team",
		Category: "technology",
		Status:   status,
	}
}

func validEvent(title, date, status string) model.EventInput {
	return model.EventInput{
		Title:       title,
		Description: "Talks and demos.",
		EventType:   "conference",
		Date:        date,
		Time:        "10:00",
		Location:    "Kathmandu",
		Capacity:    50,
		Status:      status,
	}
}
