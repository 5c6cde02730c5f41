// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/olegiv/aisite/internal/cache"
	"github.com/olegiv/aisite/internal/chatbot"
	"github.com/olegiv/aisite/internal/config"
	"github.com/olegiv/aisite/internal/geoip"
	"github.com/olegiv/aisite/internal/logging"
	"github.com/olegiv/aisite/internal/media"
	"github.com/olegiv/aisite/internal/metrics"
	"github.com/olegiv/aisite/internal/middleware"
	"github.com/olegiv/aisite/internal/richtext"
	"github.com/olegiv/aisite/internal/scheduler"
	"github.com/olegiv/aisite/internal/service"
	"github.com/olegiv/aisite/internal/session"
	"github.com/olegiv/aisite/internal/store"
	"github.com/olegiv/aisite/internal/version"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	flag.BoolVar(showVersion, "v", false, "Show version information (shorthand)")
	showHelp := flag.Bool("help", false, "Show help information")
	flag.BoolVar(showHelp, "h", false, "Show help information (shorthand)")

	flag.Usage = func() {
		_, _ = fmt.Fprintf(os.Stderr, "aisite - AI-Solution website backend\n\n")
		_, _ = fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		_, _ = fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		_, _ = fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		_, _ = fmt.Fprintf(os.Stderr, "  AISITE_SESSION_SECRET    Session encryption key (required, min 32 bytes)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  AISITE_DB_PATH           SQLite database path (default: ./data/aisite.db)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  AISITE_SERVER_PORT       Server port (default: 8080)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  AISITE_ENV               Environment: development|production (default: development)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  AISITE_SITE_URL          Public site URL used in sitemap.xml\n")
		_, _ = fmt.Fprintf(os.Stderr, "  AISITE_UPLOADS_DIR       Media directory (default: ./uploads)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  AISITE_REDIS_URL         Redis URL for the shared cache (optional)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  AISITE_GEOIP_DB_PATH     GeoLite2-Country.mmdb for contact form countries (optional)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  AISITE_ADMIN_PASSWORD    Bootstrap admin password, used on an empty database\n")
	}

	flag.Parse()

	if *showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if *showVersion {
		_, _ = fmt.Println("aisite " + version.Get().String())
		os.Exit(0)
	}

	if err := run(); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// Load .env file if present (development)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(os.Stdout, cfg.SlogLevel())
	slog.SetDefault(logger)
	slog.Info("starting aisite", "version", version.Get().Version, "env", cfg.Env)

	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}
	if err := os.MkdirAll(cfg.UploadsDir, 0o755); err != nil {
		return fmt.Errorf("creating uploads directory: %w", err)
	}

	slog.Info("initializing database", "path", cfg.DBPath)
	db, err := store.NewDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("initializing database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			slog.Error("error closing database connection", "error", err)
		}
	}()

	slog.Info("running database migrations")
	if err := store.Migrate(db); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}

	ctx := context.Background()
	if err := store.SeedAdmin(ctx, db, cfg.AdminUsername, cfg.AdminPassword); err != nil {
		return fmt.Errorf("seeding admin: %w", err)
	}
	slog.Info("database ready")

	if cfg.MetricsEnabled {
		if err := metrics.RegisterDB(db, "aisite"); err != nil {
			slog.Warn("registering db metrics", "error", err)
		}
	}

	appCache := cache.New(cache.Config{
		RedisURL:   cfg.RedisURL,
		Prefix:     cfg.CachePrefix,
		DefaultTTL: cfg.CacheTTLDuration(),
		MaxSize:    cfg.CacheMaxSize,
	}, logger)
	defer func() {
		if err := appCache.Close(); err != nil {
			slog.Error("error closing cache", "error", err)
		}
	}()

	countries, err := geoip.Open(cfg.GeoIPDBPath)
	if err != nil {
		// The contact form works without country inference.
		slog.Warn("geoip database unavailable", "path", cfg.GeoIPDBPath, "error", err)
	} else if countries.Enabled() {
		slog.Info("geoip enabled", "path", cfg.GeoIPDBPath)
	}
	defer func() { _ = countries.Close() }()

	sched := scheduler.New(countries, scheduler.Config{GeoIPReload: cfg.GeoIPReloadSchedule}, logger)
	if err := sched.Start(); err != nil {
		return fmt.Errorf("starting scheduler: %w", err)
	}
	defer sched.Stop()

	renderer := richtext.New(appCache, logger)
	mediaStore := media.NewStore(cfg.UploadsDir, cfg.MaxUploadBytes())

	settings := service.NewSettingsService(db, renderer)
	svc := services{
		content:  service.NewContentService(db, settings),
		settings: settings,
		admin:    service.NewAdminService(db, renderer, mediaStore, logger),
		activity: service.NewActivityService(db),
		users:    service.NewUserService(db, logger),
		intake:   service.NewIntakeService(db, mediaStore, countries, logger),
	}

	sessionManager := session.New(db, cfg.IsDevelopment())

	lpCfg := middleware.DefaultLoginProtectionConfig()
	lpCfg.TrustProxy = cfg.TrustProxy
	loginProtection := middleware.NewLoginProtection(lpCfg)
	defer loginProtection.Stop()

	r := newRouter(routerDeps{
		cfg:             cfg,
		logger:          logger,
		db:              db,
		cache:           appCache,
		svc:             svc,
		bot:             chatbot.Default(),
		sessionManager:  sessionManager,
		loginProtection: loginProtection,
	})

	srv := &http.Server{
		Addr:              cfg.ServerAddr(),
		Handler:           r,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second, // uploads and exports
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("starting server", "addr", cfg.ServerAddr(), "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)
	}

	slog.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	slog.Info("server stopped")
	return nil
}
