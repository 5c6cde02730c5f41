// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"encoding/json"
	"net/http"
)

// Messages shared by the AJAX endpoints.
const (
	MsgGenericError  = "An error occurred. Please try again."
	MsgInvalidInput  = "Please correct the errors below."
	MsgInvalidEmail  = "Please enter a valid email address."
	MsgChatbotError  = "Sorry, I encountered an error. Please try again."
	MsgEventNotFound = "Event not found."
)

// AjaxResponse is the envelope returned by the public form endpoints.
type AjaxResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// writeJSON writes v as JSON with the given status code.
func writeJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

// writeJSONSuccess writes {success:true,message}.
func writeJSONSuccess(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusOK, AjaxResponse{Success: true, Message: message})
}

// writeJSONFailure writes {success:false,message}. The AJAX endpoints
// answer 200 even on failure; the front end reads the success flag.
func writeJSONFailure(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusOK, AjaxResponse{Success: false, Message: message})
}

// writeJSONInvalid writes {success:false,message,errors}.
func writeJSONInvalid(w http.ResponseWriter, message string, fields map[string]string) {
	writeJSON(w, http.StatusOK, AjaxResponse{Success: false, Message: message, Errors: fields})
}

// writeJSONError writes a non-200 {success:false,message}.
func writeJSONError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, AjaxResponse{Success: false, Message: message})
}
