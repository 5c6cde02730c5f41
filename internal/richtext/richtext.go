// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package richtext turns staff-authored content into safe HTML. Markdown is
// converted with goldmark, and every result passes the bluemonday UGC policy
// before it is stored. Rendered output is cached by content hash.
package richtext

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/olegiv/aisite/internal/cache"
	"github.com/olegiv/aisite/internal/model"
)

const (
	keyPrefix = "richtext:"
	cacheTTL  = 24 * time.Hour
)

// Renderer renders and sanitizes rich text fields.
type Renderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
	cache  cache.Cache
	logger *slog.Logger
}

// New creates a Renderer. c may be nil to disable caching.
func New(c cache.Cache, logger *slog.Logger) *Renderer {
	return &Renderer{
		md:     goldmark.New(goldmark.WithExtensions(extension.GFM)),
		policy: bluemonday.UGCPolicy(),
		cache:  c,
		logger: logger,
	}
}

// Render returns sanitized HTML for source. An empty format means HTML.
func (r *Renderer) Render(ctx context.Context, format, source string) (string, error) {
	if source == "" {
		return "", nil
	}
	if format == "" {
		format = model.FormatHTML
	}
	if format != model.FormatHTML && format != model.FormatMarkdown {
		return "", model.NewValidationError("format", "Format must be html or markdown.")
	}

	key := cacheKey(format, source)
	if r.cache != nil {
		cached, err := r.cache.Get(ctx, key)
		if err == nil {
			return string(cached), nil
		}
		if !errors.Is(err, cache.ErrCacheMiss) {
			r.logger.Warn("richtext cache read failed", "error", err)
		}
	}

	html := source
	if format == model.FormatMarkdown {
		var buf bytes.Buffer
		if err := r.md.Convert([]byte(source), &buf); err != nil {
			return "", fmt.Errorf("converting markdown: %w", err)
		}
		html = buf.String()
	}
	out := r.policy.Sanitize(html)

	if r.cache != nil {
		if err := r.cache.Set(ctx, key, []byte(out), cacheTTL); err != nil {
			r.logger.Warn("richtext cache write failed", "error", err)
		}
	}
	return out, nil
}

// Field renders *dst in place.
func (r *Renderer) Field(ctx context.Context, format string, dst *string) error {
	out, err := r.Render(ctx, format, *dst)
	if err != nil {
		return err
	}
	*dst = out
	return nil
}

func cacheKey(format, source string) string {
	sum := sha256.Sum256([]byte(format + "\x00" + source))
	return keyPrefix + hex.EncodeToString(sum[:])
}
