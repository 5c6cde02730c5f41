// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/mileusna/useragent"
)

// ContextKeyBot marks requests whose user agent identifies a crawler or
// script.
const ContextKeyBot ContextKey = "bot"

// scriptAgents are user agent prefixes of HTTP libraries that useragent
// does not flag as bots.
var scriptAgents = []string{
	"curl/",
	"wget/",
	"python-requests/",
	"python-urllib/",
	"go-http-client/",
	"java/",
	"okhttp/",
	"libwww-perl/",
	"scrapy/",
}

// IsBotUserAgent reports whether ua belongs to a crawler, a headless client
// or a scripting library. An empty user agent counts as a bot.
func IsBotUserAgent(ua string) bool {
	ua = strings.TrimSpace(ua)
	if ua == "" {
		return true
	}
	lower := strings.ToLower(ua)
	for _, prefix := range scriptAgents {
		if strings.HasPrefix(lower, prefix) {
			return true
		}
	}
	if strings.Contains(lower, "headlesschrome") {
		return true
	}
	return useragent.Parse(ua).Bot
}

// DetectBots flags bot requests in the context. It never blocks: the form
// handlers answer bots with a success-shaped response without storing
// anything.
func DetectBots(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if IsBotUserAgent(r.UserAgent()) {
			r = r.WithContext(context.WithValue(r.Context(), ContextKeyBot, true))
		}
		next.ServeHTTP(w, r)
	})
}

// IsBot reports whether DetectBots flagged the request.
func IsBot(r *http.Request) bool {
	bot, _ := r.Context().Value(ContextKeyBot).(bool)
	return bot
}
