// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"context"
	"database/sql"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/olegiv/aisite/internal/middleware"
	"github.com/olegiv/aisite/internal/store"
	"github.com/olegiv/aisite/internal/testutil"
)

const browserUA = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/126.0.0.0 Safari/537.36"

// testDB creates a migrated file-backed database closed at test end.
func testDB(t *testing.T) *sql.DB {
	t.Helper()
	db, cleanup := testutil.TestDB(t)
	t.Cleanup(cleanup)
	return db
}

// assertStatus checks an HTTP status code.
func assertStatus(t *testing.T, got, want int) {
	t.Helper()
	if got != want {
		t.Errorf("status = %d; want %d", got, want)
	}
}

// withUser puts user into the request context the way LoadUser does.
func withUser(r *http.Request, user store.User) *http.Request {
	ctx := context.WithValue(r.Context(), middleware.ContextKeyUser, user)
	return r.WithContext(ctx)
}

// withBot marks the request as coming from a crawler.
func withBot(r *http.Request) *http.Request {
	ctx := context.WithValue(r.Context(), middleware.ContextKeyBot, true)
	return r.WithContext(ctx)
}

// withURLParam sets a chi URL parameter on the request.
func withURLParam(r *http.Request, key string, value int64) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, strconv.FormatInt(value, 10))
	return r.WithContext(contextWithRoute(r, rctx))
}

func contextWithRoute(r *http.Request, rctx *chi.Context) context.Context {
	return context.WithValue(r.Context(), chi.RouteCtxKey, rctx)
}

func staffUser(role string) store.User {
	now := time.Now().UTC()
	return store.User{
		ID:        1,
		Username:  role + "-user",
		Email:     role + "@example.com",
		Role:      role,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
