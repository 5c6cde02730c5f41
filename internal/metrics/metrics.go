// Package metrics holds the site's prometheus collectors and the HTTP
// middleware that feeds them.
package metrics

import (
	"database/sql"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "aisite"

var (
	// HTTP metrics
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "route", "status_code"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	httpResponseSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_response_size_bytes",
			Help:      "HTTP response size in bytes",
			Buckets:   []float64{100, 500, 1000, 5000, 10000, 50000, 100000, 500000},
		},
		[]string{"method", "route"},
	)

	// Business metrics
	intakeSubmissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "intake_submissions_total",
			Help:      "Public form submissions by form and outcome",
		},
		[]string{"form", "result"}, // created, duplicate, invalid, spam, error
	)

	authAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "auth_attempts_total",
			Help:      "Total number of staff login attempts",
		},
		[]string{"status"}, // success, failure, locked
	)

	chatbotMessagesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "chatbot_messages_total",
			Help:      "Chatbot messages by whether a keyword matched",
		},
		[]string{"matched"},
	)

	articleDownloadsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "article_downloads_total",
			Help:      "Total number of article PDF downloads",
		},
	)

	logRecordsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "log_records_total",
			Help:      "Log records at WARN and above by level",
		},
		[]string{"level"},
	)
)

// Form names used as the intake "form" label.
const (
	FormContact      = "contact"
	FormFeedback     = "feedback"
	FormNewsletter   = "newsletter"
	FormRegistration = "registration"
)

// Intake results used as the intake "result" label.
const (
	ResultCreated   = "created"
	ResultDuplicate = "duplicate"
	ResultInvalid   = "invalid"
	ResultSpam      = "spam"
	ResultError     = "error"
)

// Login outcomes used as the auth "status" label.
const (
	AuthSuccess     = "success"
	AuthFailure     = "failure"
	AuthLocked      = "locked"
	AuthRateLimited = "rate_limited"
)

// RegisterDB exports connection pool statistics for db.
func RegisterDB(db *sql.DB, name string) error {
	return prometheus.Register(collectors.NewDBStatsCollector(db, name))
}

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

// Middleware records request count, latency and response size. Requests
// are labelled by chi route pattern to keep label cardinality bounded.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(wrapped, r)

		route := routePattern(r)
		httpRequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(wrapped.statusCode)).Inc()
		httpRequestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
		httpResponseSize.WithLabelValues(r.Method, route).Observe(float64(wrapped.size))
	})
}

func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if p := rctx.RoutePattern(); p != "" {
			return p
		}
	}
	return "unmatched"
}

// responseWriter wraps http.ResponseWriter to capture status code and response size
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	size       int
	wrote      bool
}

func (rw *responseWriter) WriteHeader(code int) {
	if !rw.wrote {
		rw.statusCode = code
		rw.wrote = true
	}
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	rw.wrote = true
	size, err := rw.ResponseWriter.Write(b)
	rw.size += size
	return size, err
}

func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}

// RecordIntake records the outcome of a public form submission.
func RecordIntake(form, result string) {
	intakeSubmissionsTotal.WithLabelValues(form, result).Inc()
}

// RecordAuthAttempt records a login attempt.
func RecordAuthAttempt(status string) {
	authAttemptsTotal.WithLabelValues(status).Inc()
}

// RecordChatbotMessage records one chatbot exchange.
func RecordChatbotMessage(matched bool) {
	chatbotMessagesTotal.WithLabelValues(strconv.FormatBool(matched)).Inc()
}

// RecordArticleDownload records a served article PDF.
func RecordArticleDownload() {
	articleDownloadsTotal.Inc()
}

// RecordLogRecord counts a log record by level name.
func RecordLogRecord(level string) {
	logRecordsTotal.WithLabelValues(level).Inc()
}
