// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/olegiv/aisite/internal/cache"
	"github.com/olegiv/aisite/internal/config"
	"github.com/olegiv/aisite/internal/handler"
	"github.com/olegiv/aisite/internal/handler/api"
	"github.com/olegiv/aisite/internal/metrics"
	"github.com/olegiv/aisite/internal/middleware"
	"github.com/olegiv/aisite/internal/service"
)

// services bundles the domain services the router hands to handlers.
type services struct {
	content  *service.ContentService
	settings *service.SettingsService
	admin    *service.AdminService
	activity *service.ActivityService
	users    *service.UserService
	intake   *service.IntakeService
}

type routerDeps struct {
	cfg             *config.Config
	logger          *slog.Logger
	db              *sql.DB
	cache           cache.Cache
	svc             services
	bot             handler.Responder
	sessionManager  *scs.SessionManager
	loginProtection *middleware.LoginProtection
}

// REST API rate limit per client IP.
const (
	apiRate  = 20
	apiBurst = 40
)

func newRouter(d routerDeps) http.Handler {
	cfg := d.cfg

	healthHandler := handler.NewHealthHandler(d.db, d.cache, cfg.UploadsDir)
	seoHandler := handler.NewSEOHandler(d.svc.content, d.cache, cfg.SiteURL, cfg.IsDevelopment(), d.logger)
	ajaxHandler := handler.NewAjaxHandler(d.svc.intake, d.bot, d.logger, cfg.TrustProxy, cfg.MaxUploadBytes())
	authHandler := handler.NewAuthHandler(d.svc.users, d.sessionManager, d.loginProtection, d.logger, cfg.TrustProxy)
	apiHandler := api.NewHandler(api.Services{
		Content:  d.svc.content,
		Settings: d.svc.settings,
		Admin:    d.svc.admin,
		Activity: d.svc.activity,
	}, d.logger, cfg.TrustProxy, cfg.MaxUploadBytes())

	intakeLimiter := middleware.NewIPRateLimiter(cfg.IntakeRate, cfg.IntakeBurst, cfg.TrustProxy)
	apiLimiter := middleware.NewIPRateLimiter(apiRate, apiBurst, cfg.TrustProxy)
	csrfMiddleware := middleware.CSRF(middleware.DefaultCSRFConfig([]byte(cfg.SessionSecret), cfg.SiteURL, cfg.IsDevelopment()))

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(middleware.RequestContext)
	r.Use(accessLog(d.logger))
	r.Use(chimw.Recoverer)
	if cfg.MetricsEnabled {
		r.Use(metrics.Middleware)
	}
	r.Use(middleware.SecurityHeaders(middleware.DefaultSecurityHeadersConfig(cfg.IsDevelopment())))
	r.Use(middleware.StripTrailingSlash)
	r.Use(chimw.Compress(5))
	r.Use(chimw.GetHead)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(d.sessionManager.LoadAndSave)
	r.Use(middleware.LoadUser(d.sessionManager, d.svc.users))

	r.Get("/health", healthHandler.Health)
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)
	if cfg.MetricsEnabled {
		r.Handle("/metrics", metrics.Handler())
	}

	r.Get("/sitemap.xml", seoHandler.Sitemap)
	r.Get("/robots.txt", seoHandler.Robots)

	// Uploaded media. Contact attachments are private to staff.
	media := http.StripPrefix("/media/", http.FileServer(http.Dir(cfg.UploadsDir)))
	r.With(middleware.RequireEditor(), middleware.NoStore).Handle("/media/contact_attachments/*", media)
	r.With(middleware.StaticCache(middleware.MediaCacheMaxAge)).Handle("/media/*", media)

	// Public site forms.
	r.Group(func(r chi.Router) {
		r.Use(middleware.DetectBots)
		r.Use(intakeLimiter.IntakeMiddleware())
		r.Post("/api/feedback", ajaxHandler.Feedback)
		r.Post("/api/newsletter", ajaxHandler.Newsletter)
		r.Post("/api/chatbot", ajaxHandler.Chatbot)
		r.Get("/api/download-article/{id}", ajaxHandler.DownloadArticle)
		r.Post("/api/register-event/{id}", ajaxHandler.RegisterEvent)
		r.Post("/api/contact", ajaxHandler.Contact)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(apiLimiter.Middleware())
		apiHandler.MountPublic(r)

		r.Route("/auth", func(r chi.Router) {
			r.Use(csrfMiddleware)
			r.Use(middleware.NoStore)
			r.With(d.loginProtection.Middleware()).Post("/login", authHandler.Login)
			r.Post("/logout", authHandler.Logout)
			r.With(middleware.RequireAuth).Get("/me", authHandler.Me)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(csrfMiddleware)
			r.Use(middleware.RequireEditor())
			r.Use(middleware.NoStore)
			apiHandler.MountAdmin(r)
		})
	})
	slog.Info("REST API v1 mounted at /api/v1")

	return r
}

// accessLog writes one record per request through the structured logger.
func accessLog(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			level := slog.LevelInfo
			if ww.Status() >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			logger.Log(r.Context(), level, "request",
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
			)
		})
	}
}
