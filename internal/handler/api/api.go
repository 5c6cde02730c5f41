// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package api provides the REST API: the public read endpoints used by the
// site front end and the session-authenticated admin endpoints.
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/olegiv/aisite/internal/handler"
	"github.com/olegiv/aisite/internal/model"
	"github.com/olegiv/aisite/internal/service"
)

// Handler holds shared dependencies for all API handlers.
type Handler struct {
	content    *service.ContentService
	settings   *service.SettingsService
	admin      *service.AdminService
	activity   *service.ActivityService
	logger     *slog.Logger
	trustProxy bool
	maxUpload  int64
}

// Services groups the services the API reads from and writes to.
type Services struct {
	Content  *service.ContentService
	Settings *service.SettingsService
	Admin    *service.AdminService
	Activity *service.ActivityService
}

// NewHandler creates a new API handler. maxUpload bounds multipart uploads.
func NewHandler(svc Services, logger *slog.Logger, trustProxy bool, maxUpload int64) *Handler {
	return &Handler{
		content:    svc.Content,
		settings:   svc.Settings,
		admin:      svc.Admin,
		activity:   svc.Activity,
		logger:     logger,
		trustProxy: trustProxy,
		maxUpload:  maxUpload,
	}
}

// Response is the standard API response wrapper.
type Response struct {
	Data any   `json:"data"`
	Meta *Meta `json:"meta,omitempty"`
}

// Meta contains pagination and other metadata.
type Meta struct {
	Total   int64 `json:"total"`
	Page    int   `json:"page,omitempty"`
	PerPage int   `json:"per_page,omitempty"`
	Pages   int   `json:"pages,omitempty"`
	HasPrev bool  `json:"has_prev,omitempty"`
	HasNext bool  `json:"has_next,omitempty"`
}

// pageMeta converts a service page to response metadata.
func pageMeta[T any](p service.Page[T]) *Meta {
	return &Meta{
		Total:   p.TotalItems,
		Page:    p.Number,
		PerPage: p.PerPage,
		Pages:   p.TotalPages,
		HasPrev: p.HasPrev,
		HasNext: p.HasNext,
	}
}

// listMeta describes an unpaginated list.
func listMeta(n int) *Meta {
	return &Meta{Total: int64(n)}
}

// ErrorResponse is the standard API error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information.
type ErrorDetail struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

// WriteJSON writes a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// WriteSuccess writes a successful JSON response.
func WriteSuccess(w http.ResponseWriter, data any, meta *Meta) {
	resp := Response{
		Data: data,
		Meta: meta,
	}
	WriteJSON(w, http.StatusOK, resp)
}

// WriteCreated writes a 201 Created JSON response.
func WriteCreated(w http.ResponseWriter, data any) {
	resp := Response{
		Data: data,
	}
	WriteJSON(w, http.StatusCreated, resp)
}

// WriteError writes an error JSON response.
func WriteError(w http.ResponseWriter, statusCode int, code, message string, details map[string]string) {
	resp := ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
			Details: details,
		},
	}
	WriteJSON(w, statusCode, resp)
}

// WriteBadRequest writes a 400 Bad Request response.
func WriteBadRequest(w http.ResponseWriter, message string, details map[string]string) {
	WriteError(w, http.StatusBadRequest, "bad_request", message, details)
}

// WriteNotFound writes a 404 Not Found response.
func WriteNotFound(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusNotFound, "not_found", message, nil)
}

// WriteUnauthorized writes a 401 Unauthorized response.
func WriteUnauthorized(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusUnauthorized, "unauthorized", message, nil)
}

// WriteForbidden writes a 403 Forbidden response.
func WriteForbidden(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusForbidden, "forbidden", message, nil)
}

// WriteConflict writes a 409 Conflict response.
func WriteConflict(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusConflict, "conflict", message, nil)
}

// WriteInternalError writes a 500 Internal Server Error response.
func WriteInternalError(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusInternalServerError, "internal_error", message, nil)
}

// WriteValidationError writes a 422 Unprocessable Entity response with field errors.
func WriteValidationError(w http.ResponseWriter, fieldErrors map[string]string) {
	WriteError(w, http.StatusUnprocessableEntity, "validation_error", "Validation failed", fieldErrors)
}

// StatusResponse contains API status information.
type StatusResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// Status returns the API status.
func (h *Handler) Status(w http.ResponseWriter, _ *http.Request) {
	WriteSuccess(w, StatusResponse{
		Status:  "ok",
		Version: "v1",
	}, nil)
}

// writeServiceError maps a service error onto the API error envelope.
// entityName is used for not-found messages.
func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, entityName string, err error) {
	var ve *model.ValidationError
	switch {
	case errors.As(err, &ve):
		WriteValidationError(w, ve.Fields)
	case errors.Is(err, model.ErrNotFound):
		WriteNotFound(w, capitalizeFirst(entityName)+" not found")
	case errors.Is(err, model.ErrConstraintViolation):
		WriteConflict(w, capitalizeFirst(entityName)+" conflicts with an existing record")
	case errors.Is(err, model.ErrUnauthorized):
		WriteForbidden(w, "Insufficient permissions")
	default:
		h.logger.ErrorContext(r.Context(), "api request failed", "entity", entityName, "error", err)
		WriteInternalError(w, "Failed to process "+entityName)
	}
}

// requireActor returns the acting staff user or writes 401.
func (h *Handler) requireActor(w http.ResponseWriter, r *http.Request) (service.Actor, bool) {
	actor, ok := handler.ActorFromRequest(r, h.trustProxy)
	if !ok {
		WriteUnauthorized(w, "Authentication required")
	}
	return actor, ok
}

// decodeBody decodes a JSON request body into a new T.
// Returns false if decoding failed (response written).
func decodeBody[T any](w http.ResponseWriter, r *http.Request) (T, bool) {
	var in T
	if err := handler.DecodeJSON(w, r, &in); err != nil {
		WriteBadRequest(w, "Invalid request body", nil)
		return in, false
	}
	return in, true
}

// requireID parses the {id} URL parameter.
// Returns false if the ID is invalid (response written).
func requireID(w http.ResponseWriter, r *http.Request, entityName string) (int64, bool) {
	id, err := handler.ParseIDParam(r)
	if err != nil {
		WriteBadRequest(w, "Invalid "+entityName+" ID", nil)
		return 0, false
	}
	return id, true
}

// capitalizeFirst returns s with the first letter capitalized.
func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// mapSlice converts every element of items with fn. A nil input yields an
// empty slice so lists encode as [].
func mapSlice[T, Out any](items []T, fn func(T) Out) []Out {
	out := make([]Out, 0, len(items))
	for _, it := range items {
		out = append(out, fn(it))
	}
	return out
}
