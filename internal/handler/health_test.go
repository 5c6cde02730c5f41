// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"

	"github.com/olegiv/aisite/internal/cache"
	"github.com/olegiv/aisite/internal/model"
)

func newTestHealthHandler(t *testing.T) *HealthHandler {
	t.Helper()
	return NewHealthHandler(testDB(t), nil, t.TempDir())
}

func decodeMap(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	return resp
}

func TestHealthHandler_Health_Public(t *testing.T) {
	handler := newTestHealthHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/health?verbose=true", nil)
	w := httptest.NewRecorder()

	handler.Health(w, req)

	assertStatus(t, w.Code, http.StatusOK)
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q; want application/json", ct)
	}

	resp := decodeMap(t, w)
	if resp["status"] != "healthy" {
		t.Errorf("status = %v; want healthy", resp["status"])
	}
	for _, key := range []string{"uptime", "version", "checks", "timestamp", "system"} {
		if _, ok := resp[key]; ok {
			t.Errorf("public response should not contain %q", key)
		}
	}
}

func TestHealthHandler_Health_Roles(t *testing.T) {
	tests := []struct {
		name       string
		role       string
		verbose    bool
		wantChecks bool
		wantSystem bool
		wantUptime bool
	}{
		{name: "viewer sees public response", role: model.RoleViewer},
		{name: "editor sees version", role: model.RoleEditor, verbose: true, wantUptime: true},
		{name: "admin sees checks", role: model.RoleAdmin, wantChecks: true, wantUptime: true},
		{name: "admin verbose sees system", role: model.RoleAdmin, verbose: true, wantChecks: true, wantSystem: true, wantUptime: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := newTestHealthHandler(t)

			url := "/health"
			if tt.verbose {
				url += "?verbose=true"
			}
			req := withUser(httptest.NewRequest(http.MethodGet, url, nil), staffUser(tt.role))
			w := httptest.NewRecorder()

			handler.Health(w, req)

			assertStatus(t, w.Code, http.StatusOK)
			resp := decodeMap(t, w)

			if _, ok := resp["uptime"]; ok != tt.wantUptime {
				t.Errorf("uptime present = %v; want %v", ok, tt.wantUptime)
			}
			if _, ok := resp["checks"]; ok != tt.wantChecks {
				t.Errorf("checks present = %v; want %v", ok, tt.wantChecks)
			}
			if _, ok := resp["system"]; ok != tt.wantSystem {
				t.Errorf("system present = %v; want %v", ok, tt.wantSystem)
			}
			if tt.wantChecks {
				checks := resp["checks"].(map[string]any)
				if _, ok := checks["database"]; !ok {
					t.Error("checks should contain database")
				}
				if _, ok := checks["disk"]; !ok {
					t.Error("checks should contain disk")
				}
			}
		})
	}
}

func TestHealthHandler_Health_UnhealthyDatabase(t *testing.T) {
	db := testDB(t)
	handler := NewHealthHandler(db, nil, t.TempDir())
	_ = db.Close()

	req := withUser(httptest.NewRequest(http.MethodGet, "/health", nil), staffUser(model.RoleAdmin))
	w := httptest.NewRecorder()

	handler.Health(w, req)

	assertStatus(t, w.Code, http.StatusServiceUnavailable)
	resp := decodeMap(t, w)
	if resp["status"] != "degraded" {
		t.Errorf("status = %v; want degraded", resp["status"])
	}
	checks := resp["checks"].(map[string]any)
	dbCheck := checks["database"].(map[string]any)
	if dbCheck["status"] != "unhealthy" {
		t.Errorf("database status = %v; want unhealthy", dbCheck["status"])
	}
}

func TestHealthHandler_Health_RedisCache(t *testing.T) {
	mr := miniredis.RunT(t)

	opts := cache.DefaultRedisCacheOptions()
	opts.URL = "redis://" + mr.Addr()
	rc, err := cache.NewRedisCache(opts)
	if err != nil {
		t.Fatalf("NewRedisCache: %v", err)
	}
	t.Cleanup(func() { _ = rc.Close() })

	handler := NewHealthHandler(testDB(t), rc, t.TempDir())

	req := withUser(httptest.NewRequest(http.MethodGet, "/health", nil), staffUser(model.RoleAdmin))
	w := httptest.NewRecorder()
	handler.Health(w, req)

	assertStatus(t, w.Code, http.StatusOK)
	resp := decodeMap(t, w)
	checks := resp["checks"].(map[string]any)
	cacheCheck, ok := checks["cache"].(map[string]any)
	if !ok {
		t.Fatal("checks should contain cache")
	}
	if cacheCheck["status"] != "healthy" {
		t.Errorf("cache status = %v; want healthy", cacheCheck["status"])
	}
	if _, ok := resp["cache"]; !ok {
		t.Error("admin response should contain cache stats")
	}

	mr.Close()

	w = httptest.NewRecorder()
	handler.Health(w, req)
	assertStatus(t, w.Code, http.StatusServiceUnavailable)
}

func TestHealthHandler_Health_MemoryCacheSkipsPing(t *testing.T) {
	mc := cache.NewMemoryCache(cache.MemoryCacheOptions{})
	t.Cleanup(func() { _ = mc.Close() })

	handler := NewHealthHandler(testDB(t), mc, t.TempDir())

	req := withUser(httptest.NewRequest(http.MethodGet, "/health", nil), staffUser(model.RoleAdmin))
	w := httptest.NewRecorder()
	handler.Health(w, req)

	assertStatus(t, w.Code, http.StatusOK)
	checks := decodeMap(t, w)["checks"].(map[string]any)
	if _, ok := checks["cache"]; ok {
		t.Error("memory cache should not be pinged")
	}
}

// testHealthProbe tests a health probe endpoint for expected status response.
func testHealthProbe(t *testing.T, path string, handlerFn func(http.ResponseWriter, *http.Request), expectedStatus string) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()

	handlerFn(w, req)

	assertStatus(t, w.Code, http.StatusOK)

	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if resp["status"] != expectedStatus {
		t.Errorf("status = %q; want %s", resp["status"], expectedStatus)
	}
}

func TestHealthHandler_Liveness(t *testing.T) {
	handler := newTestHealthHandler(t)
	testHealthProbe(t, "/health/live", handler.Liveness, "alive")
}

func TestHealthHandler_Readiness(t *testing.T) {
	handler := newTestHealthHandler(t)
	testHealthProbe(t, "/health/ready", handler.Readiness, "ready")
}

func TestHealthHandler_Readiness_NotReady(t *testing.T) {
	tests := []struct {
		name        string
		staff       bool
		wantMessage bool
	}{
		{name: "anonymous", staff: false, wantMessage: false},
		{name: "staff", staff: true, wantMessage: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := testDB(t)
			handler := NewHealthHandler(db, nil, t.TempDir())
			_ = db.Close()

			req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
			if tt.staff {
				req = withUser(req, staffUser(model.RoleEditor))
			}
			w := httptest.NewRecorder()

			handler.Readiness(w, req)

			assertStatus(t, w.Code, http.StatusServiceUnavailable)
			var resp map[string]string
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("failed to unmarshal response: %v", err)
			}
			if resp["status"] != "not_ready" {
				t.Errorf("status = %q; want not_ready", resp["status"])
			}
			if _, ok := resp["message"]; ok != tt.wantMessage {
				t.Errorf("message present = %v; want %v", ok, tt.wantMessage)
			}
		})
	}
}

func TestHealthHandler_DiskCheck(t *testing.T) {
	t.Run("missing uploads directory is healthy", func(t *testing.T) {
		handler := NewHealthHandler(testDB(t), nil, filepath.Join(t.TempDir(), "missing"))
		check := handler.checkDiskSpace()
		if check.Status != "healthy" {
			t.Errorf("status = %q; want healthy", check.Status)
		}
	})

	t.Run("existing directory reports free space", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.MkdirAll(filepath.Join(dir, "gallery"), 0o755); err != nil {
			t.Fatal(err)
		}
		handler := NewHealthHandler(testDB(t), nil, dir)
		check := handler.checkDiskSpace()
		if check.Status == "unhealthy" {
			t.Errorf("status = %q; message = %q", check.Status, check.Message)
		}
		if check.Message == "" {
			t.Error("message should report available space")
		}
	})
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		input uint64
		want  string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{1024, "1.00 KB"},
		{1536, "1.50 KB"},
		{1048576, "1.00 MB"},
		{1073741824, "1.00 GB"},
	}

	for _, tt := range tests {
		if got := formatBytes(tt.input); got != tt.want {
			t.Errorf("formatBytes(%d) = %q; want %q", tt.input, got, tt.want)
		}
	}
}

func TestHealthHandler_StartTime(t *testing.T) {
	before := time.Now()
	handler := newTestHealthHandler(t)

	if handler.startTime.Before(before) {
		t.Error("start time should not precede construction")
	}
}
