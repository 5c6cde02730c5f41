// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import (
	"fmt"
	"net/mail"
	"net/url"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

var (
	usernamePattern = regexp.MustCompile(`^[\w.@+-]+$`)
	slugPattern     = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
)

// Date and time layouts used by event and gallery fields.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// validator collects field errors; the first message per field wins.
type validator struct {
	fields map[string]string
}

func newValidator() *validator {
	return &validator{fields: make(map[string]string)}
}

func (v *validator) add(field, msg string) {
	if _, ok := v.fields[field]; !ok {
		v.fields[field] = msg
	}
}

func (v *validator) required(field, value string) {
	if strings.TrimSpace(value) == "" {
		v.add(field, "This field is required.")
	}
}

func (v *validator) maxLen(field, value string, n int) {
	if utf8.RuneCountInString(value) > n {
		v.add(field, fmt.Sprintf("Ensure this value has at most %d characters.", n))
	}
}

func (v *validator) email(field, value string) {
	if strings.TrimSpace(value) == "" {
		v.add(field, "This field is required.")
		return
	}
	if !IsValidEmail(value) {
		v.add(field, "Enter a valid email address.")
	}
}

func (v *validator) optionalEmail(field, value string) {
	if value != "" && !IsValidEmail(value) {
		v.add(field, "Enter a valid email address.")
	}
}

func (v *validator) optionalURL(field, value string) {
	if value == "" {
		return
	}
	u, err := url.Parse(value)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		v.add(field, "Enter a valid URL.")
	}
}

func (v *validator) choice(field, value string, choices []Choice, allowBlank bool) {
	if value == "" {
		if !allowBlank {
			v.add(field, "This field is required.")
		}
		return
	}
	if !inChoices(choices, value) {
		v.add(field, fmt.Sprintf("Select a valid choice. %s is not one of the available choices.", value))
	}
}

func (v *validator) intRange(field string, value, lo, hi int) {
	if value < lo || value > hi {
		v.add(field, fmt.Sprintf("Ensure this value is between %d and %d.", lo, hi))
	}
}

func (v *validator) nonNegative(field string, value int) {
	if value < 0 {
		v.add(field, "Ensure this value is greater than or equal to 0.")
	}
}

func (v *validator) date(field, value string, required bool) {
	if value == "" {
		if required {
			v.add(field, "This field is required.")
		}
		return
	}
	if _, err := time.Parse(DateLayout, value); err != nil {
		v.add(field, "Enter a valid date (YYYY-MM-DD).")
	}
}

func (v *validator) clock(field, value string) {
	if value == "" {
		v.add(field, "This field is required.")
		return
	}
	if _, err := time.Parse(TimeLayout, value); err != nil {
		v.add(field, "Enter a valid time (HH:MM).")
	}
}

func (v *validator) list(field string, l interface{ Validate() error }) {
	if err := l.Validate(); err != nil {
		v.add(field, err.Error())
	}
}

func (v *validator) err() error {
	if len(v.fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: v.fields}
}

// IsValidEmail reports whether s is a single bare email address.
func IsValidEmail(s string) bool {
	if s == "" || len(s) > 254 {
		return false
	}
	addr, err := mail.ParseAddress(s)
	if err != nil {
		return false
	}
	// Reject "Name <addr>" forms; only the bare address is accepted.
	if addr.Address != s {
		return false
	}
	domain := s[strings.LastIndex(s, "@")+1:]
	return strings.Contains(domain, ".") && !strings.HasSuffix(domain, ".")
}

// IsValidSlug reports whether s is a lowercase hyphenated slug.
func IsValidSlug(s string) bool {
	return slugPattern.MatchString(s)
}

// NormalizeEmail trims and lowercases an email address.
func NormalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
