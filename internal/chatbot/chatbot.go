// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package chatbot answers visitor questions from an ordered keyword table.
package chatbot

import "strings"

// Fallback is returned when no keyword matches.
const Fallback = "I'm sorry, I didn't understand that. Could you please rephrase your question or contact our support team?"

// Entry maps a lower-case keyword to its canned reply.
type Entry struct {
	Keyword string
	Reply   string
}

// Responder matches messages against a fixed table. It holds no mutable
// state and is safe for concurrent use.
type Responder struct {
	table []Entry
}

// New returns a Responder over table. The first matching entry wins.
func New(table []Entry) *Responder {
	t := make([]Entry, len(table))
	copy(t, table)
	return &Responder{table: t}
}

// Default returns a Responder over DefaultTable.
func Default() *Responder {
	return New(DefaultTable)
}

// Respond returns the reply of the first entry whose keyword occurs in the
// lower-cased message, or Fallback.
func (r *Responder) Respond(message string) string {
	msg := strings.ToLower(message)
	for _, e := range r.table {
		if strings.Contains(msg, e.Keyword) {
			return e.Reply
		}
	}
	return Fallback
}
