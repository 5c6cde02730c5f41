// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/olegiv/aisite/internal/media"
	"github.com/olegiv/aisite/internal/middleware"
	"github.com/olegiv/aisite/internal/service"
	"github.com/olegiv/aisite/internal/store"
	"github.com/olegiv/aisite/internal/util"
)

// Request body limits. Multipart bodies may exceed the file limit by
// multipartOverhead for the other form fields.
const (
	MaxJSONBody       = 1 << 20
	multipartOverhead = 1 << 20
	multipartMemory   = 8 << 20
)

// ErrInvalidID is returned for a missing or non-positive id URL parameter.
var ErrInvalidID = errors.New("invalid id")

// ParseIDParam parses the {id} URL parameter.
func ParseIDParam(r *http.Request) (int64, error) {
	return ParseInt64Param(r, "id")
}

// ParseInt64Param parses a positive integer URL parameter.
func ParseInt64Param(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}

// QueryInt returns the integer query parameter name, or def when it is
// absent or malformed.
func QueryInt(r *http.Request, name string, def int) int {
	v, err := strconv.Atoi(strings.TrimSpace(r.URL.Query().Get(name)))
	if err != nil {
		return def
	}
	return v
}

// QueryString returns the trimmed query parameter name.
func QueryString(r *http.Request, name string) string {
	return strings.TrimSpace(r.URL.Query().Get(name))
}

// IsJSON reports whether the request body is JSON.
func IsJSON(r *http.Request) bool {
	mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mt == "application/json"
}

// DecodeJSON decodes a bounded JSON body into dst. Unknown fields are
// ignored so that front ends may send extra keys.
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, MaxJSONBody)
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("request body is empty")
		}
		return fmt.Errorf("decoding JSON body: %w", err)
	}
	return nil
}

// ParseMultipart parses a multipart body whose file part may be up to
// maxFile bytes. Non-multipart bodies fall back to ParseForm.
func ParseMultipart(w http.ResponseWriter, r *http.Request, maxFile int64) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxFile+multipartOverhead)
	err := r.ParseMultipartForm(multipartMemory)
	if errors.Is(err, http.ErrNotMultipart) {
		return r.ParseForm()
	}
	return err
}

// IsBodyTooLarge reports whether err came from an exceeded body limit.
func IsBodyTooLarge(err error) bool {
	var mbe *http.MaxBytesError
	return errors.As(err, &mbe)
}

// FormUpload returns the file sent in field, or nil when there is none.
// The caller closes the returned closer.
func FormUpload(r *http.Request, field string) (*media.Upload, io.Closer, error) {
	if r.MultipartForm == nil {
		return nil, nil, nil
	}
	f, fh, err := r.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, err
	}
	return &media.Upload{Filename: fh.Filename, Content: f}, f, nil
}

// formInt parses an integer form value. Malformed input becomes 0, which
// the model validators reject where a value is required.
func formInt(v string) int {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0
	}
	return n
}

// ActorFromRequest builds the admin actor from the session user loaded by
// middleware.LoadUser. It returns false when no user is loaded.
func ActorFromRequest(r *http.Request, trustProxy bool) (service.Actor, bool) {
	user := middleware.GetUser(r)
	if user == nil {
		return service.Actor{}, false
	}
	return service.Actor{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
		IP:       util.ClientIP(r, trustProxy),
	}, true
}

// UserResponse is the public representation of a staff user.
type UserResponse struct {
	ID          int64      `json:"id"`
	Username    string     `json:"username"`
	Email       string     `json:"email"`
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	Role        string     `json:"role"`
	IsActive    bool       `json:"is_active"`
	Phone       string     `json:"phone"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// NewUserResponse converts a store user, dropping the password hash.
func NewUserResponse(u store.User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Role:        u.Role,
		IsActive:    u.IsActive,
		Phone:       u.Phone,
		LastLoginAt: util.TimePtr(u.LastLoginAt),
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}
