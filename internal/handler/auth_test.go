// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/alexedwards/scs/v2"

	"github.com/olegiv/aisite/internal/middleware"
	"github.com/olegiv/aisite/internal/model"
	"github.com/olegiv/aisite/internal/service"
	"github.com/olegiv/aisite/internal/testutil"
)

type authFixture struct {
	sm      *scs.SessionManager
	lp      *middleware.LoginProtection
	handler *AuthHandler
	router  http.Handler
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()

	db := testDB(t)
	testutil.CreateUser(t, db, "editor", model.RoleEditor, "correct-horse-battery")

	users := service.NewUserService(db, testutil.TestLoggerSilent())
	sm := scs.New()
	lp := middleware.NewLoginProtection(middleware.LoginProtectionConfig{
		MaxFailedAttempts: 3,
		LockoutDuration:   time.Minute,
	})
	t.Cleanup(lp.Stop)

	h := NewAuthHandler(users, sm, lp, testutil.TestLoggerSilent(), false)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /login", h.Login)
	mux.HandleFunc("POST /logout", h.Logout)
	mux.Handle("GET /me", middleware.RequireAuth(http.HandlerFunc(h.Me)))

	return &authFixture{
		sm:      sm,
		lp:      lp,
		handler: h,
		router:  sm.LoadAndSave(middleware.LoadUser(sm, users)(mux)),
	}
}

func (f *authFixture) do(req *http.Request, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func loginJSON(username, password string) *http.Request {
	body := `{"username":"` + username + `","password":"` + password + `"}`
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("response has no %s cookie", name)
	return nil
}

func decodeAPIError(t *testing.T, w *httptest.ResponseRecorder) middleware.APIError {
	t.Helper()
	var e middleware.APIError
	if err := json.Unmarshal(w.Body.Bytes(), &e); err != nil {
		t.Fatalf("decode error body %q: %v", w.Body.String(), err)
	}
	return e
}

func TestAuth_LoginMeLogout(t *testing.T) {
	f := newAuthFixture(t)

	w := f.do(loginJSON("editor", "correct-horse-battery"))
	assertStatus(t, w.Code, http.StatusOK)

	var body struct {
		Data map[string]any `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.Data["username"] != "editor" || body.Data["role"] != model.RoleEditor {
		t.Errorf("login data = %v", body.Data)
	}
	if _, ok := body.Data["password_hash"]; ok {
		t.Error("password hash must not be exposed")
	}

	cookie := sessionCookie(t, w, f.sm.Cookie.Name)

	w = f.do(httptest.NewRequest(http.MethodGet, "/me", nil), cookie)
	assertStatus(t, w.Code, http.StatusOK)
	if !strings.Contains(w.Body.String(), `"username":"editor"`) {
		t.Errorf("me body = %s", w.Body.String())
	}

	w = f.do(httptest.NewRequest(http.MethodPost, "/logout", nil), cookie)
	assertStatus(t, w.Code, http.StatusNoContent)

	w = f.do(httptest.NewRequest(http.MethodGet, "/me", nil), cookie)
	assertStatus(t, w.Code, http.StatusUnauthorized)
}

func TestAuth_LoginForm(t *testing.T) {
	f := newAuthFixture(t)

	form := url.Values{"username": {"editor"}, "password": {"correct-horse-battery"}}
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	w := f.do(req)
	assertStatus(t, w.Code, http.StatusOK)
}

func TestAuth_LoginValidation(t *testing.T) {
	f := newAuthFixture(t)

	tests := []struct {
		name     string
		req      *http.Request
		wantCode string
	}{
		{name: "missing password", req: loginJSON("editor", ""), wantCode: "validation_error"},
		{name: "blank username", req: loginJSON("   ", "x"), wantCode: "validation_error"},
		{
			name: "malformed json",
			req: func() *http.Request {
				r := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader("{"))
				r.Header.Set("Content-Type", "application/json")
				return r
			}(),
			wantCode: "bad_request",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := f.do(tt.req)
			assertStatus(t, w.Code, http.StatusBadRequest)
			if got := decodeAPIError(t, w).Error.Code; got != tt.wantCode {
				t.Errorf("code = %q; want %q", got, tt.wantCode)
			}
		})
	}
}

func TestAuth_LockoutAfterFailures(t *testing.T) {
	f := newAuthFixture(t)

	w := f.do(loginJSON("editor", "wrong"))
	assertStatus(t, w.Code, http.StatusUnauthorized)
	e := decodeAPIError(t, w)
	if e.Error.Code != "invalid_credentials" {
		t.Errorf("code = %q", e.Error.Code)
	}
	if e.Error.Details["remaining_attempts"] != "2" {
		t.Errorf("details = %v; want 2 remaining", e.Error.Details)
	}

	_ = f.do(loginJSON("editor", "wrong"))

	w = f.do(loginJSON("editor", "wrong"))
	assertStatus(t, w.Code, http.StatusTooManyRequests)
	if got := decodeAPIError(t, w).Error.Code; got != "account_locked" {
		t.Errorf("code = %q; want account_locked", got)
	}
	if w.Header().Get("Retry-After") == "" {
		t.Error("Retry-After header missing")
	}

	// The correct password is refused while the account is locked.
	w = f.do(loginJSON("EDITOR", "correct-horse-battery"))
	assertStatus(t, w.Code, http.StatusTooManyRequests)
}

func TestAuth_UnknownUserLooksLikeBadPassword(t *testing.T) {
	f := newAuthFixture(t)

	w := f.do(loginJSON("ghost", "whatever"))
	assertStatus(t, w.Code, http.StatusUnauthorized)
	if got := decodeAPIError(t, w).Error.Message; got != "Invalid username or password" {
		t.Errorf("message = %q", got)
	}
}

func TestAuth_MeWithoutSession(t *testing.T) {
	f := newAuthFixture(t)

	w := httptest.NewRecorder()
	f.handler.Me(w, httptest.NewRequest(http.MethodGet, "/me", nil))
	assertStatus(t, w.Code, http.StatusUnauthorized)
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{30 * time.Second, "30 seconds"},
		{time.Minute, "1 minute"},
		{15 * time.Minute, "15 minutes"},
		{time.Hour, "1 hour"},
		{5 * time.Hour, "5 hours"},
	}
	for _, tt := range tests {
		if got := formatDuration(tt.in); got != tt.want {
			t.Errorf("formatDuration(%v) = %q; want %q", tt.in, got, tt.want)
		}
	}
}
