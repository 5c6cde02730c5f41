package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMiddleware_LabelsByRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/blog/{slug}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("ok"))
	})

	before := promtest.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, "/blog/{slug}", "418"))
	for _, slug := range []string{"a", "b", "c"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/blog/"+slug, nil))
		if rec.Code != http.StatusTeapot {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusTeapot)
		}
	}
	after := promtest.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, "/blog/{slug}", "418"))
	if after-before != 3 {
		t.Errorf("request counter grew by %v, want 3", after-before)
	}
}

func TestMiddleware_Unmatched(t *testing.T) {
	h := Middleware(http.NotFoundHandler())
	before := promtest.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, "unmatched", "404"))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nowhere", nil))
	after := promtest.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, "unmatched", "404"))
	if after-before != 1 {
		t.Errorf("unmatched counter grew by %v, want 1", after-before)
	}
}

func TestRecorders(t *testing.T) {
	before := promtest.ToFloat64(intakeSubmissionsTotal.WithLabelValues(FormNewsletter, ResultDuplicate))
	RecordIntake(FormNewsletter, ResultDuplicate)
	if got := promtest.ToFloat64(intakeSubmissionsTotal.WithLabelValues(FormNewsletter, ResultDuplicate)); got != before+1 {
		t.Errorf("intake counter = %v, want %v", got, before+1)
	}

	before = promtest.ToFloat64(chatbotMessagesTotal.WithLabelValues("false"))
	RecordChatbotMessage(false)
	if got := promtest.ToFloat64(chatbotMessagesTotal.WithLabelValues("false")); got != before+1 {
		t.Errorf("chatbot counter = %v, want %v", got, before+1)
	}

	before = promtest.ToFloat64(articleDownloadsTotal)
	RecordArticleDownload()
	if got := promtest.ToFloat64(articleDownloadsTotal); got != before+1 {
		t.Errorf("download counter = %v, want %v", got, before+1)
	}
}

func TestHandler_ExposesCollectors(t *testing.T) {
	RecordAuthAttempt(AuthSuccess)
	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if !strings.Contains(rec.Body.String(), "aisite_auth_attempts_total") {
		t.Error("metrics output missing aisite_auth_attempts_total")
	}
}
