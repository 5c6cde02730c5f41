// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import (
	"errors"
	"testing"
)

// assertFieldError checks that err is a ValidationError naming field, or nil when field is empty.
func assertFieldError(t *testing.T, err error, field string) {
	t.Helper()
	if field == "" {
		if err != nil {
			t.Errorf("Validate() error = %v, want nil", err)
		}
		return
	}
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("Validate() error = %v, want *ValidationError", err)
	}
	if ve.Field(field) == "" {
		t.Errorf("Validate() fields = %v, want error on %q", ve.Fields, field)
	}
}

// assertStringSliceEqual asserts that two string slices are equal.
func assertStringSliceEqual(t *testing.T, testName string, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Errorf("%s: got %v, want %v", testName, got, want)
		return
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("%s: [%d] = %q, want %q", testName, i, got[i], want[i])
		}
	}
}
