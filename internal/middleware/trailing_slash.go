// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package middleware

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// StripTrailingSlash routes "/api/feedback/" and "/api/feedback" to the
// same handler. The public forms post to the slash-terminated paths, and a
// redirect would turn their POSTs into GETs, so the path is rewritten for
// routing instead. The root path "/" is left alone.
func StripTrailingSlash(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePath != "" {
			path = rctx.RoutePath
		}
		if len(path) > 1 && strings.HasSuffix(path, "/") {
			trimmed := strings.TrimRight(path, "/")
			if trimmed == "" {
				trimmed = "/"
			}
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				rctx.RoutePath = trimmed
			} else {
				r.URL.Path = trimmed
			}
		}
		next.ServeHTTP(w, r)
	})
}
