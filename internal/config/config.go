// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package config loads the site configuration from AISITE_* environment variables.
package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// knownWeakSecrets contains default/example secrets that must be rejected.
var knownWeakSecrets = []string{
	"change-me-to-32-byte-secret-key!",
	"REPLACE_WITH_YOUR_OWN_SECRET_KEY!",
}

// Config holds the application configuration loaded from environment variables.
type Config struct {
	DBPath        string `env:"AISITE_DB_PATH" envDefault:"./data/aisite.db"`
	SessionSecret string `env:"AISITE_SESSION_SECRET,required"`
	ServerHost    string `env:"AISITE_SERVER_HOST" envDefault:"localhost"`
	ServerPort    int    `env:"AISITE_SERVER_PORT" envDefault:"8080"`
	Env           string `env:"AISITE_ENV" envDefault:"development"`
	LogLevel      string `env:"AISITE_LOG_LEVEL" envDefault:"info"`
	SiteURL       string `env:"AISITE_SITE_URL" envDefault:"http://localhost:8080"`
	UploadsDir    string `env:"AISITE_UPLOADS_DIR" envDefault:"./uploads"`
	MaxUploadMB   int    `env:"AISITE_MAX_UPLOAD_MB" envDefault:"10"`

	// Behind a reverse proxy, client IPs come from X-Real-IP / X-Forwarded-For.
	TrustProxy bool `env:"AISITE_TRUST_PROXY" envDefault:"false"`

	// Cache configuration
	RedisURL     string `env:"AISITE_REDIS_URL"`                         // Optional Redis URL for the render cache
	CachePrefix  string `env:"AISITE_CACHE_PREFIX" envDefault:"aisite:"` // Redis key prefix
	CacheTTL     int    `env:"AISITE_CACHE_TTL" envDefault:"3600"`       // Default cache TTL in seconds
	CacheMaxSize int    `env:"AISITE_CACHE_MAX_SIZE" envDefault:"10000"` // Max memory cache entries

	// GeoIP configuration
	GeoIPDBPath string `env:"AISITE_GEOIP_DB_PATH"` // Path to GeoLite2-Country.mmdb file

	// Public form rate limiting, per client IP
	IntakeRate  float64 `env:"AISITE_INTAKE_RATE" envDefault:"1"`
	IntakeBurst int     `env:"AISITE_INTAKE_BURST" envDefault:"5"`

	// Bootstrap admin, created only on an empty users table
	AdminUsername string `env:"AISITE_ADMIN_USERNAME" envDefault:"admin"`
	AdminPassword string `env:"AISITE_ADMIN_PASSWORD"`

	MetricsEnabled bool `env:"AISITE_METRICS_ENABLED" envDefault:"true"`

	// GeoIP database reload (cron syntax); empty disables it
	GeoIPReloadSchedule string `env:"AISITE_GEOIP_RELOAD_SCHEDULE" envDefault:"@daily"`
}

// IsDevelopment returns true if the application is running in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// ServerAddr returns the full server address in host:port format.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.ServerHost, c.ServerPort)
}

// UseRedisCache returns true if Redis caching is configured.
func (c Config) UseRedisCache() bool {
	return c.RedisURL != ""
}

// GeoIPEnabled returns true if GeoIP database is configured.
func (c Config) GeoIPEnabled() bool {
	return c.GeoIPDBPath != ""
}

// MaxUploadBytes returns the upload limit in bytes.
func (c Config) MaxUploadBytes() int64 {
	return int64(c.MaxUploadMB) << 20
}

// CacheTTLDuration returns the default cache TTL.
func (c Config) CacheTTLDuration() time.Duration {
	return time.Duration(c.CacheTTL) * time.Second
}

// SlogLevel maps LogLevel onto a slog level. Unknown values mean info.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

// MinSessionSecretLength is the minimum required length for the session secret.
// AES-256 requires 32 bytes minimum for secure encryption.
const MinSessionSecretLength = 32

// Load parses environment variables and returns a Config struct.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if len(cfg.SessionSecret) < MinSessionSecretLength {
		return nil, fmt.Errorf("AISITE_SESSION_SECRET must be at least %d bytes long, got %d bytes; "+
			"generate a secure secret with: openssl rand -base64 32",
			MinSessionSecretLength, len(cfg.SessionSecret))
	}

	for _, weak := range knownWeakSecrets {
		if cfg.SessionSecret == weak {
			return nil, fmt.Errorf("AISITE_SESSION_SECRET is a known default value and must not be used; " +
				"generate a secure secret with: openssl rand -base64 32")
		}
	}

	if cfg.MaxUploadMB < 1 {
		return nil, fmt.Errorf("AISITE_MAX_UPLOAD_MB must be at least 1, got %d", cfg.MaxUploadMB)
	}
	if cfg.IntakeRate <= 0 || cfg.IntakeBurst < 1 {
		return nil, fmt.Errorf("AISITE_INTAKE_RATE and AISITE_INTAKE_BURST must be positive")
	}
	cfg.SiteURL = strings.TrimRight(cfg.SiteURL, "/")

	// Warn about low-entropy secrets
	if !hasMinimumEntropy(cfg.SessionSecret) {
		slog.Warn("AISITE_SESSION_SECRET has low character diversity; " +
			"consider generating a random secret with: openssl rand -base64 32")
	}

	return cfg, nil
}

// hasMinimumEntropy checks that a secret contains at least 3 character classes
// (lowercase, uppercase, digits, special characters).
func hasMinimumEntropy(s string) bool {
	charTypes := 0
	if strings.ContainsAny(s, "abcdefghijklmnopqrstuvwxyz") {
		charTypes++
	}
	if strings.ContainsAny(s, "ABCDEFGHIJKLMNOPQRSTUVWXYZ") {
		charTypes++
	}
	if strings.ContainsAny(s, "0123456789") {
		charTypes++
	}
	if strings.ContainsAny(s, "!@#$%^&*()-_=+[]{}|;:,.<>?/~`'\"\\") {
		charTypes++
	}
	return charTypes >= 3
}
