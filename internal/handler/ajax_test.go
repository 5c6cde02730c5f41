// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/olegiv/aisite/internal/cache"
	"github.com/olegiv/aisite/internal/chatbot"
	"github.com/olegiv/aisite/internal/media"
	"github.com/olegiv/aisite/internal/model"
	"github.com/olegiv/aisite/internal/richtext"
	"github.com/olegiv/aisite/internal/service"
	"github.com/olegiv/aisite/internal/store"
	"github.com/olegiv/aisite/internal/testutil"
)

const samplePDF = "%PDF-1.4\n1 0 obj << /Type /Catalog >> endobj\ntrailer << /Root 1 0 R >>\n%%EOF\n"

type ajaxFixture struct {
	db      *sql.DB
	queries *store.Queries
	media   *media.Store
	admin   *service.AdminService
	actor   service.Actor
	handler *AjaxHandler
}

func newAjaxFixture(t *testing.T) *ajaxFixture {
	t.Helper()

	db := testDB(t)
	logger := testutil.TestLoggerSilent()
	uploads := media.NewStore(t.TempDir(), 1<<20)
	renderer := richtext.New(cache.NewMemoryCache(cache.MemoryCacheOptions{}), logger)
	intake := service.NewIntakeService(db, uploads, nil, logger)

	admin := testutil.CreateUser(t, db, "root", model.RoleAdmin, "correct-horse-battery")

	return &ajaxFixture{
		db:      db,
		queries: store.New(db),
		media:   uploads,
		admin:   service.NewAdminService(db, renderer, uploads, logger),
		actor:   service.Actor{UserID: admin.ID, Username: admin.Username, Role: admin.Role, IP: "203.0.113.7"},
		handler: NewAjaxHandler(intake, chatbot.Default(), logger, false, 1<<20),
	}
}

func (f *ajaxFixture) createEvent(t *testing.T) store.Event {
	t.Helper()
	ev, err := f.admin.CreateEvent(context.Background(), f.actor, model.EventInput{
		Title:       "AI Summit",
		Description: "Talks and demos.",
		EventType:   "conference",
		Date:        "2030-05-04",
		Time:        "09:30",
		Location:    "Kathmandu",
		Capacity:    100,
		Status:      model.EventStatusUpcoming,
	})
	if err != nil {
		t.Fatalf("CreateEvent: %v", err)
	}
	return ev
}

func (f *ajaxFixture) createArticle(t *testing.T, title string, withPDF bool) store.Article {
	t.Helper()
	in := model.ArticleInput{
		Title:    title,
		Content:  "<p>Findings</p>",
		Excerpt:  "Summary",
		Category: "Research",
		Status:   model.StatusPublished,
	}
	if withPDF {
		saved, err := f.media.Save(media.KindArticlePDF, "paper.pdf", strings.NewReader(samplePDF))
		if err != nil {
			t.Fatalf("saving PDF: %v", err)
		}
		in.PDFFile = saved.Path
	}
	a, err := f.admin.CreateArticle(context.Background(), f.actor, in)
	if err != nil {
		t.Fatalf("CreateArticle: %v", err)
	}
	return a
}

func formRequest(target string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", browserUA)
	return req
}

func jsonRequest(t *testing.T, target string, body any) *http.Request {
	t.Helper()
	b, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest(http.MethodPost, target, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", browserUA)
	return req
}

func multipartRequest(t *testing.T, target string, fields map[string]string, fileField, fileName string, content []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatal(err)
		}
	}
	if fileField != "" {
		fw, err := mw.CreateFormFile(fileField, fileName)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := fw.Write(content); err != nil {
			t.Fatal(err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest(http.MethodPost, target, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("User-Agent", browserUA)
	return req
}

func TestAjax_Feedback(t *testing.T) {
	f := newAjaxFixture(t)

	valid := url.Values{
		"name":    {"Asha"},
		"email":   {"Asha@Example.com"},
		"company": {"Acme"},
		"rating":  {"5"},
		"comment": {"Great work"},
	}

	w := httptest.NewRecorder()
	f.handler.Feedback(w, formRequest("/api/feedback/", valid))
	resp := decodeAjax(t, w, http.StatusOK)
	if !resp.Success || resp.Message != MsgFeedbackThanks {
		t.Fatalf("response = %+v", resp)
	}

	items, err := f.queries.ListFeedback(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 1 {
		t.Fatalf("stored feedback = %d; want 1", len(items))
	}
	if items[0].Email != "asha@example.com" || items[0].IsApproved {
		t.Errorf("stored feedback = %+v", items[0])
	}

	t.Run("invalid rating", func(t *testing.T) {
		bad := url.Values{"name": {"Asha"}, "email": {"asha@example.com"}, "rating": {"9"}, "comment": {"x"}}
		w := httptest.NewRecorder()
		f.handler.Feedback(w, formRequest("/api/feedback/", bad))
		resp := decodeAjax(t, w, http.StatusOK)
		if resp.Success {
			t.Fatal("expected failure")
		}
		if resp.Errors["rating"] == "" {
			t.Errorf("errors = %v; want rating error", resp.Errors)
		}
	})

	t.Run("json body", func(t *testing.T) {
		w := httptest.NewRecorder()
		f.handler.Feedback(w, jsonRequest(t, "/api/feedback/", map[string]any{
			"name": "Ravi", "email": "ravi@example.com", "rating": 4, "comment": "Helpful",
		}))
		resp := decodeAjax(t, w, http.StatusOK)
		if !resp.Success {
			t.Fatalf("response = %+v", resp)
		}
	})
}

func TestAjax_SpamIsDiscarded(t *testing.T) {
	f := newAjaxFixture(t)

	tests := []struct {
		name string
		req  func() *http.Request
	}{
		{
			name: "honeypot filled",
			req: func() *http.Request {
				return formRequest("/api/feedback/", url.Values{
					"name": {"Bot"}, "email": {"bot@example.com"}, "rating": {"5"},
					"comment": {"buy now"}, "_website": {"http://spam.example"},
				})
			},
		},
		{
			name: "bot user agent",
			req: func() *http.Request {
				return withBot(formRequest("/api/feedback/", url.Values{
					"name": {"Crawler"}, "email": {"c@example.com"}, "rating": {"5"}, "comment": {"hi"},
				}))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			f.handler.Feedback(w, tt.req())
			resp := decodeAjax(t, w, http.StatusOK)
			if !resp.Success || resp.Message != MsgFeedbackThanks {
				t.Errorf("response = %+v; want success-shaped answer", resp)
			}
		})
	}

	items, err := f.queries.ListFeedback(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 0 {
		t.Errorf("stored feedback = %d; want 0", len(items))
	}
}

func TestAjax_Newsletter(t *testing.T) {
	f := newAjaxFixture(t)

	subscribe := func(email string) AjaxResponse {
		w := httptest.NewRecorder()
		f.handler.Newsletter(w, formRequest("/api/newsletter/", url.Values{"email": {email}}))
		return decodeAjax(t, w, http.StatusOK)
	}

	if resp := subscribe("reader@example.com"); !resp.Success || resp.Message != MsgSubscribed {
		t.Errorf("first subscribe = %+v", resp)
	}
	if resp := subscribe("READER@example.com"); !resp.Success || resp.Message != MsgAlreadySubscribed {
		t.Errorf("second subscribe = %+v", resp)
	}
	if resp := subscribe("not-an-email"); resp.Success || resp.Message != MsgInvalidEmail {
		t.Errorf("invalid subscribe = %+v", resp)
	}

	subs, err := f.queries.ListSubscribers(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(subs) != 1 {
		t.Errorf("subscribers = %d; want 1", len(subs))
	}
}

func TestAjax_Chatbot(t *testing.T) {
	f := newAjaxFixture(t)

	tests := []struct {
		name        string
		body        string
		wantSuccess bool
		wantReply   string
	}{
		{name: "greeting", body: `{"message":"Hello there"}`, wantSuccess: true, wantReply: chatbot.Default().Respond("hello")},
		{name: "unknown", body: `{"message":"zzzz"}`, wantSuccess: true, wantReply: chatbot.Fallback},
		{name: "malformed", body: `{"message":`, wantSuccess: false, wantReply: MsgChatbotError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/chatbot/", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			f.handler.Chatbot(w, req)

			assertStatus(t, w.Code, http.StatusOK)
			var resp ChatbotResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if resp.Success != tt.wantSuccess || resp.Response != tt.wantReply {
				t.Errorf("response = %+v; want success=%v response=%q", resp, tt.wantSuccess, tt.wantReply)
			}
		})
	}
}

func TestAjax_DownloadArticle(t *testing.T) {
	f := newAjaxFixture(t)
	withPDF := f.createArticle(t, "Quarterly Report", true)
	withoutPDF := f.createArticle(t, "Plain Article", false)

	t.Run("streams pdf and counts download", func(t *testing.T) {
		req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/download-article/x/", nil), "id", withPDF.ID)
		w := httptest.NewRecorder()

		f.handler.DownloadArticle(w, req)

		assertStatus(t, w.Code, http.StatusOK)
		if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
			t.Errorf("Content-Type = %q", ct)
		}
		if cd := w.Header().Get("Content-Disposition"); cd != `attachment; filename="Quarterly Report.pdf"` {
			t.Errorf("Content-Disposition = %q", cd)
		}
		if w.Body.String() != samplePDF {
			t.Error("body should be the stored PDF")
		}

		a, err := f.queries.GetArticle(context.Background(), withPDF.ID)
		if err != nil {
			t.Fatal(err)
		}
		if a.DownloadCount != 1 {
			t.Errorf("download count = %d; want 1", a.DownloadCount)
		}
	})

	t.Run("head is not counted", func(t *testing.T) {
		req := withURLParam(httptest.NewRequest(http.MethodHead, "/api/download-article/x/", nil), "id", withPDF.ID)
		w := httptest.NewRecorder()

		f.handler.DownloadArticle(w, req)

		assertStatus(t, w.Code, http.StatusOK)
		if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
			t.Errorf("Content-Type = %q", ct)
		}
		a, err := f.queries.GetArticle(context.Background(), withPDF.ID)
		if err != nil {
			t.Fatal(err)
		}
		if a.DownloadCount != 1 {
			t.Errorf("download count after HEAD = %d; want 1", a.DownloadCount)
		}
	})

	for name, id := range map[string]int64{"no pdf": withoutPDF.ID, "missing article": 9999} {
		t.Run(name, func(t *testing.T) {
			req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/download-article/x/", nil), "id", id)
			w := httptest.NewRecorder()
			f.handler.DownloadArticle(w, req)
			resp := decodeAjax(t, w, http.StatusNotFound)
			if resp.Success || resp.Message != MsgPDFNotFound {
				t.Errorf("response = %+v", resp)
			}
		})
	}
}

func TestAjax_RegisterEvent(t *testing.T) {
	f := newAjaxFixture(t)
	ev := f.createEvent(t)

	register := func(id int64, email string) AjaxResponse {
		req := withURLParam(formRequest("/api/register-event/x/", url.Values{
			"name":  {"Mina"},
			"email": {email},
			"phone": {"+977 1234"},
		}), "id", id)
		w := httptest.NewRecorder()
		f.handler.RegisterEvent(w, req)
		return decodeAjax(t, w, http.StatusOK)
	}

	if resp := register(ev.ID, "mina@example.com"); !resp.Success || resp.Message != MsgRegistered {
		t.Errorf("first registration = %+v", resp)
	}
	if resp := register(ev.ID, "Mina@Example.com"); resp.Success || resp.Message != MsgAlreadyRegistered {
		t.Errorf("duplicate registration = %+v", resp)
	}
	if resp := register(9999, "other@example.com"); resp.Success || resp.Message != MsgEventNotFound {
		t.Errorf("missing event = %+v", resp)
	}
	if resp := register(ev.ID, "bad"); resp.Success || resp.Errors["email"] == "" {
		t.Errorf("invalid email = %+v", resp)
	}

	regs, err := f.queries.ListRegistrationsByEvent(context.Background(), ev.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(regs) != 1 {
		t.Errorf("registrations = %d; want 1", len(regs))
	}
}

func TestAjax_Contact(t *testing.T) {
	fields := map[string]string{
		"name":    "Sita",
		"email":   "sita@example.com",
		"company": "Acme",
		"message": "We need a diagnostics pilot.",
	}

	t.Run("with attachment", func(t *testing.T) {
		f := newAjaxFixture(t)
		req := multipartRequest(t, "/api/contact/", fields, "attachment", "brief.txt", []byte("project brief"))
		w := httptest.NewRecorder()

		f.handler.Contact(w, req)

		resp := decodeAjax(t, w, http.StatusOK)
		if !resp.Success || resp.Message != MsgContactThanks {
			t.Fatalf("response = %+v", resp)
		}
		inqs, err := f.queries.ListInquiries(context.Background())
		if err != nil {
			t.Fatal(err)
		}
		if len(inqs) != 1 || inqs[0].Attachment == "" {
			t.Fatalf("inquiries = %+v", inqs)
		}
		file, err := f.media.Open(inqs[0].Attachment)
		if err != nil {
			t.Fatalf("attachment not stored: %v", err)
		}
		defer func() { _ = file.Close() }()
		got, _ := io.ReadAll(file)
		if string(got) != "project brief" {
			t.Errorf("attachment = %q", got)
		}
	})

	t.Run("unsupported attachment type", func(t *testing.T) {
		f := newAjaxFixture(t)
		req := multipartRequest(t, "/api/contact/", fields, "attachment", "tool.exe", []byte("MZ"))
		w := httptest.NewRecorder()

		f.handler.Contact(w, req)

		resp := decodeAjax(t, w, http.StatusOK)
		if resp.Success || resp.Errors["attachment"] == "" {
			t.Errorf("response = %+v", resp)
		}
	})

	t.Run("attachment over limit", func(t *testing.T) {
		f := newAjaxFixture(t)
		big := bytes.Repeat([]byte("a"), 3<<20)
		req := multipartRequest(t, "/api/contact/", fields, "attachment", "big.txt", big)
		w := httptest.NewRecorder()

		f.handler.Contact(w, req)

		resp := decodeAjax(t, w, http.StatusOK)
		if resp.Success || resp.Errors["attachment"] == "" {
			t.Errorf("response = %+v", resp)
		}
	})

	t.Run("missing message", func(t *testing.T) {
		f := newAjaxFixture(t)
		req := formRequest("/api/contact/", url.Values{"name": {"Sita"}, "email": {"sita@example.com"}})
		w := httptest.NewRecorder()

		f.handler.Contact(w, req)

		resp := decodeAjax(t, w, http.StatusOK)
		if resp.Success || resp.Errors["message"] == "" {
			t.Errorf("response = %+v", resp)
		}
	})
}

// newFailingIntake returns an intake service whose database fails every
// statement.
func newFailingIntake(t *testing.T) Intake {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	failure := errors.New("disk I/O error")
	for range 4 {
		mock.ExpectQuery(".*").WillReturnError(failure)
		mock.ExpectExec(".*").WillReturnError(failure)
	}
	mock.MatchExpectationsInOrder(false)

	uploads := media.NewStore(t.TempDir(), 1<<20)
	return service.NewIntakeService(db, uploads, nil, testutil.TestLoggerSilent())
}

func TestAjax_DatabaseFailureNeverReturns500(t *testing.T) {
	h := NewAjaxHandler(newFailingIntake(t), chatbot.Default(), testutil.TestLoggerSilent(), false, 1<<20)

	tests := []struct {
		name    string
		handler http.HandlerFunc
		req     *http.Request
	}{
		{
			name:    "feedback",
			handler: h.Feedback,
			req: formRequest("/api/feedback/", url.Values{
				"name": {"Asha"}, "email": {"asha@example.com"}, "rating": {"5"}, "comment": {"ok"},
			}),
		},
		{
			name:    "newsletter",
			handler: h.Newsletter,
			req:     formRequest("/api/newsletter/", url.Values{"email": {"asha@example.com"}}),
		},
		{
			name:    "registration",
			handler: h.RegisterEvent,
			req: withURLParam(formRequest("/api/register-event/1/", url.Values{
				"name": {"Asha"}, "email": {"asha@example.com"},
			}), "id", 1),
		},
		{
			name:    "contact",
			handler: h.Contact,
			req: formRequest("/api/contact/", url.Values{
				"name": {"Asha"}, "email": {"asha@example.com"}, "message": {"Hello"},
			}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			tt.handler(w, tt.req)

			resp := decodeAjax(t, w, http.StatusOK)
			if resp.Success {
				t.Error("expected success=false")
			}
			if resp.Message != MsgGenericError {
				t.Errorf("message = %q; want %q", resp.Message, MsgGenericError)
			}
		})
	}
}

func TestContentDisposition(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: "Report.pdf", want: `attachment; filename="Report.pdf"`},
		{name: "quotes", in: `The "Best" Guide.pdf`, want: `attachment; filename="The _Best_ Guide.pdf"`},
		{name: "unicode", in: "Café.pdf", want: `attachment; filename="Caf_.pdf"; filename*=UTF-8''Caf%C3%A9.pdf`},
		{name: "control chars dropped", in: "a\r\nb.pdf", want: `attachment; filename="ab.pdf"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := contentDisposition(tt.in); got != tt.want {
				t.Errorf("contentDisposition(%q) = %q; want %q", tt.in, got, tt.want)
			}
		})
	}
}
