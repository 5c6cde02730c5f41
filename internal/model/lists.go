// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// StringList is an ordered list of strings persisted as a JSON array.
type StringList []string

// FAQ is a question/answer pair shown on a solution page.
type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// FAQList is an ordered list of FAQs persisted as a JSON array.
type FAQList []FAQ

// Speaker is an event speaker.
type Speaker struct {
	Name  string `json:"name"`
	Title string `json:"title,omitempty"`
	Bio   string `json:"bio,omitempty"`
}

// SpeakerList is an ordered list of speakers persisted as a JSON array.
type SpeakerList []Speaker

// AgendaItem is one slot of an event agenda.
type AgendaItem struct {
	Time        string `json:"time,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// AgendaList is an ordered list of agenda items persisted as a JSON array.
type AgendaList []AgendaItem

// scanJSON decodes a JSON column value into dst. NULL and empty values decode to nothing.
func scanJSON(src any, dst any) error {
	var data []byte
	switch v := src.(type) {
	case nil:
		return nil
	case string:
		data = []byte(v)
	case []byte:
		data = v
	default:
		return fmt.Errorf("unsupported JSON column type %T", src)
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil
	}
	return json.Unmarshal(data, dst)
}

// valueJSON encodes v for storage. Nil lists are stored as "[]".
func valueJSON(v any, isNil bool) (driver.Value, error) {
	if isNil {
		return "[]", nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (l *StringList) Scan(src any) error {
	var out []string
	if err := scanJSON(src, &out); err != nil {
		return fmt.Errorf("scanning string list: %w", err)
	}
	*l = out
	return nil
}

// Value implements driver.Valuer.
func (l StringList) Value() (driver.Value, error) { return valueJSON([]string(l), l == nil) }

// Validate rejects blank entries.
func (l StringList) Validate() error {
	for i, s := range l {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("item %d is empty", i+1)
		}
	}
	return nil
}

// Scan implements sql.Scanner.
func (l *FAQList) Scan(src any) error {
	var out []FAQ
	if err := scanJSON(src, &out); err != nil {
		return fmt.Errorf("scanning faq list: %w", err)
	}
	*l = out
	return nil
}

// Value implements driver.Valuer.
func (l FAQList) Value() (driver.Value, error) { return valueJSON([]FAQ(l), l == nil) }

// Validate requires a question and an answer on every entry.
func (l FAQList) Validate() error {
	for i, f := range l {
		if strings.TrimSpace(f.Question) == "" || strings.TrimSpace(f.Answer) == "" {
			return fmt.Errorf("faq %d needs both a question and an answer", i+1)
		}
	}
	return nil
}

// Scan implements sql.Scanner.
func (l *SpeakerList) Scan(src any) error {
	var out []Speaker
	if err := scanJSON(src, &out); err != nil {
		return fmt.Errorf("scanning speaker list: %w", err)
	}
	*l = out
	return nil
}

// Value implements driver.Valuer.
func (l SpeakerList) Value() (driver.Value, error) { return valueJSON([]Speaker(l), l == nil) }

// Validate requires a name on every speaker.
func (l SpeakerList) Validate() error {
	for i, s := range l {
		if strings.TrimSpace(s.Name) == "" {
			return fmt.Errorf("speaker %d needs a name", i+1)
		}
	}
	return nil
}

// Scan implements sql.Scanner.
func (l *AgendaList) Scan(src any) error {
	var out []AgendaItem
	if err := scanJSON(src, &out); err != nil {
		return fmt.Errorf("scanning agenda: %w", err)
	}
	*l = out
	return nil
}

// Value implements driver.Valuer.
func (l AgendaList) Value() (driver.Value, error) { return valueJSON([]AgendaItem(l), l == nil) }

// Validate requires a title on every agenda item.
func (l AgendaList) Validate() error {
	for i, a := range l {
		if strings.TrimSpace(a.Title) == "" {
			return fmt.Errorf("agenda item %d needs a title", i+1)
		}
	}
	return nil
}

// ErrInvalidList is returned when a list field cannot be decoded from request input.
var ErrInvalidList = errors.New("invalid list")

// ParseStringList accepts either a JSON array or newline-separated text, the
// two shapes admin forms submit for list fields.
func ParseStringList(s string) (StringList, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return StringList{}, nil
	}
	if strings.HasPrefix(s, "[") {
		var out StringList
		if err := json.Unmarshal([]byte(s), &out); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidList, err)
		}
		return out, nil
	}
	var out StringList
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out, nil
}
