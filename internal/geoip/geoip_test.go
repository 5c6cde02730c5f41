// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package geoip

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFormCountry(t *testing.T) {
	tests := []struct {
		iso  string
		want string
	}{
		{"US", "US"},
		{"GB", "UK"},
		{"NP", "NP"},
		{"ES", ""},
		{"OTHER", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := FormCountry(tt.iso); got != tt.want {
			t.Errorf("FormCountry(%q) = %q, want %q", tt.iso, got, tt.want)
		}
	}
}

func TestOpen_Disabled(t *testing.T) {
	g, err := Open("")
	if err != nil {
		t.Fatalf("Open(\"\") error = %v", err)
	}
	defer func() { _ = g.Close() }()

	if g.Enabled() {
		t.Error("Enabled() = true without a database")
	}
	if got := g.Country("8.8.8.8"); got != "" {
		t.Errorf("Country() = %q, want empty", got)
	}
	if got := g.InquiryCountry("8.8.8.8"); got != "" {
		t.Errorf("InquiryCountry() = %q, want empty", got)
	}
	if err := g.Reload(); err != nil {
		t.Errorf("Reload() error = %v", err)
	}
}

func TestOpen_MissingFile(t *testing.T) {
	g, err := Open(filepath.Join(t.TempDir(), "missing.mmdb"))
	if err == nil {
		t.Fatal("Open() with missing file should fail")
	}
	if g == nil || g.Enabled() {
		t.Error("a failed Open should still return a disabled Lookup")
	}
}

func TestOpen_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.mmdb")
	if err := os.WriteFile(path, []byte("not a maxmind database"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Open(path); err == nil {
		t.Error("Open() with garbage file should fail")
	}
}

func TestCountry_PrivateAndInvalid(t *testing.T) {
	g, _ := Open("")
	for _, ip := range []string{"", "garbage", "10.0.0.1", "127.0.0.1", "::1"} {
		if got := g.Country(ip); got != "" {
			t.Errorf("Country(%q) = %q, want empty", ip, got)
		}
	}
}
