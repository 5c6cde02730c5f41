// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package scheduler runs the site's periodic housekeeping jobs.
package scheduler

import (
	"fmt"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// DefaultGeoIPReload is the default GeoIP reload schedule.
const DefaultGeoIPReload = "@daily"

// Reloader reopens an on-disk database when it has been replaced.
type Reloader interface {
	Reload() error
}

// Config holds the job schedules in cron syntax. An empty schedule
// disables the job.
type Config struct {
	GeoIPReload string
}

// Scheduler runs infrastructure jobs. It never touches domain records.
type Scheduler struct {
	geo    Reloader
	cfg    Config
	cron   *cron.Cron
	logger *slog.Logger
}

// New creates a new scheduler instance. geo may be nil.
func New(geo Reloader, cfg Config, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		geo:    geo,
		cfg:    cfg,
		cron:   cron.New(),
		logger: logger,
	}
}

// Start registers the configured jobs and starts the cron loop.
func (s *Scheduler) Start() error {
	if s.cfg.GeoIPReload != "" && s.geo != nil {
		_, err := s.cron.AddFunc(s.cfg.GeoIPReload, func() {
			if err := s.geo.Reload(); err != nil {
				s.logger.Warn("failed to reload geoip database", "error", err)
			}
		})
		if err != nil {
			return fmt.Errorf("geoip reload schedule %q: %w", s.cfg.GeoIPReload, err)
		}
	}

	s.cron.Start()
	s.logger.Info("scheduler started", "jobs", len(s.cron.Entries()))
	return nil
}

// Stop gracefully stops the scheduler, waiting for running jobs.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("scheduler stopped")
}
