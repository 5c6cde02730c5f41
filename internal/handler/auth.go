// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/alexedwards/scs/v2"

	"github.com/olegiv/aisite/internal/metrics"
	"github.com/olegiv/aisite/internal/middleware"
	"github.com/olegiv/aisite/internal/service"
	"github.com/olegiv/aisite/internal/session"
	"github.com/olegiv/aisite/internal/store"
	"github.com/olegiv/aisite/internal/util"
)

// Authenticator verifies staff credentials.
type Authenticator interface {
	Authenticate(ctx context.Context, username, password string) (store.User, error)
}

// AuthHandler handles the session login API.
type AuthHandler struct {
	users           Authenticator
	sessionManager  *scs.SessionManager
	loginProtection *middleware.LoginProtection
	logger          *slog.Logger
	trustProxy      bool
}

// NewAuthHandler creates a new AuthHandler. lp may be nil.
func NewAuthHandler(users Authenticator, sm *scs.SessionManager, lp *middleware.LoginProtection, logger *slog.Logger, trustProxy bool) *AuthHandler {
	return &AuthHandler{
		users:           users,
		sessionManager:  sm,
		loginProtection: lp,
		logger:          logger,
		trustProxy:      trustProxy,
	}
}

// LoginRequest is the body of POST /api/v1/auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type dataResponse struct {
	Data any `json:"data"`
}

// Login authenticates a staff user and starts a session.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if IsJSON(r) {
		if err := DecodeJSON(w, r, &req); err != nil {
			middleware.WriteAPIError(w, http.StatusBadRequest, "bad_request", "Invalid request body", nil)
			return
		}
	} else {
		if err := r.ParseForm(); err != nil {
			middleware.WriteAPIError(w, http.StatusBadRequest, "bad_request", "Invalid form data", nil)
			return
		}
		req.Username = r.PostFormValue("username")
		req.Password = r.PostFormValue("password")
	}

	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		middleware.WriteAPIError(w, http.StatusBadRequest, "validation_error", "Username and password are required", map[string]string{
			"username": "This field is required.",
			"password": "This field is required.",
		})
		return
	}

	clientIP := util.ClientIP(r, h.trustProxy)

	if h.loginProtection != nil {
		if locked, remaining := h.loginProtection.IsAccountLocked(req.Username); locked {
			metrics.RecordAuthAttempt(metrics.AuthLocked)
			h.logger.WarnContext(r.Context(), "login attempt on locked account", "username", req.Username, "ip", clientIP)
			h.writeLocked(w, remaining)
			return
		}
	}

	user, err := h.users.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		if !errors.Is(err, service.ErrInvalidCredentials) {
			h.logger.ErrorContext(r.Context(), "login failed", "error", err)
			middleware.WriteAPIError(w, http.StatusInternalServerError, "internal_error", "Internal server error", nil)
			return
		}
		h.logger.InfoContext(r.Context(), "invalid login attempt", "username", req.Username, "ip", clientIP)
		h.rejectCredentials(w, req.Username)
		return
	}

	if h.loginProtection != nil {
		h.loginProtection.RecordSuccessfulLogin(req.Username)
	}

	// Fresh token on privilege change.
	if err := h.sessionManager.RenewToken(r.Context()); err != nil {
		h.logger.ErrorContext(r.Context(), "session renewal error", "error", err)
		middleware.WriteAPIError(w, http.StatusInternalServerError, "internal_error", "Internal server error", nil)
		return
	}
	h.sessionManager.Put(r.Context(), session.KeyUserID, user.ID)

	metrics.RecordAuthAttempt(metrics.AuthSuccess)
	h.logger.InfoContext(r.Context(), "user logged in", "user_id", user.ID, "username", user.Username, "ip", clientIP)
	writeJSON(w, http.StatusOK, dataResponse{Data: NewUserResponse(user)})
}

func (h *AuthHandler) rejectCredentials(w http.ResponseWriter, username string) {
	if h.loginProtection != nil {
		if locked, lockDuration := h.loginProtection.RecordFailedAttempt(username); locked {
			metrics.RecordAuthAttempt(metrics.AuthLocked)
			h.logger.Warn("account locked due to failed attempts", "username", username, "duration", lockDuration.String())
			h.writeLocked(w, lockDuration)
			return
		}
	}

	metrics.RecordAuthAttempt(metrics.AuthFailure)
	var details map[string]string
	if h.loginProtection != nil {
		if remaining := h.loginProtection.GetRemainingAttempts(username); remaining > 0 && remaining <= 3 {
			details = map[string]string{"remaining_attempts": strconv.Itoa(remaining)}
		}
	}
	middleware.WriteAPIError(w, http.StatusUnauthorized, "invalid_credentials", "Invalid username or password", details)
}

func (h *AuthHandler) writeLocked(w http.ResponseWriter, remaining time.Duration) {
	w.Header().Set("Retry-After", strconv.Itoa(int(remaining.Round(time.Second).Seconds())))
	middleware.WriteAPIError(w, http.StatusTooManyRequests, "account_locked",
		fmt.Sprintf("Too many failed attempts. Try again in %s.", formatDuration(remaining)), nil)
}

// Logout destroys the session.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	userID := h.sessionManager.GetInt64(r.Context(), session.KeyUserID)

	if err := h.sessionManager.Destroy(r.Context()); err != nil {
		h.logger.ErrorContext(r.Context(), "session destroy error", "error", err)
	}
	if userID > 0 {
		h.logger.InfoContext(r.Context(), "user logged out", "user_id", userID)
	}
	w.WriteHeader(http.StatusNoContent)
}

// Me returns the logged-in user. It must run behind RequireAuth.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r)
	if user == nil {
		middleware.WriteAPIError(w, http.StatusUnauthorized, "unauthorized", "Authentication required", nil)
		return
	}
	writeJSON(w, http.StatusOK, dataResponse{Data: NewUserResponse(*user)})
}

// formatDuration formats a duration into a human-readable string.
func formatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%d seconds", int(d.Seconds()))
	}
	if d < time.Hour {
		mins := int(d.Minutes())
		if mins == 1 {
			return "1 minute"
		}
		return fmt.Sprintf("%d minutes", mins)
	}
	hours := int(d.Hours())
	if hours == 1 {
		return "1 hour"
	}
	return fmt.Sprintf("%d hours", hours)
}
