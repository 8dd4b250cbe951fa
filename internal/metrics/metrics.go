package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/regform/regform-go/internal/form"
)

// Metrics owns the service's Prometheus registry.
type Metrics struct {
	registry        *prometheus.Registry
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	fieldTotal      *prometheus.CounterVec
	submissionTotal *prometheus.CounterVec
}

// New creates and registers all collectors on a private registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		requestTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		fieldTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "regform_field_validations_total",
				Help: "Field validations by field and outcome",
			},
			[]string{"field", "outcome"},
		),
		submissionTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "regform_submissions_total",
				Help: "Form submissions by outcome",
			},
			[]string{"outcome"},
		),
	}

	m.registry.MustRegister(
		m.requestDuration,
		m.requestTotal,
		m.fieldTotal,
		m.submissionTotal,
	)

	return m
}

// FieldValidated counts one field verdict.
func (m *Metrics) FieldValidated(field form.Field, valid bool) {
	m.fieldTotal.WithLabelValues(string(field), outcome(valid)).Inc()
}

// SubmissionHandled counts one submission.
func (m *Metrics) SubmissionHandled(accepted bool) {
	label := "rejected"
	if accepted {
		label = "accepted"
	}
	m.submissionTotal.WithLabelValues(label).Inc()
}

// Middleware records request count and latency by chi route pattern.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if p := rctx.RoutePattern(); p != "" {
				route = p
			}
		}

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		m.requestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
		m.requestTotal.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
	})
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func outcome(valid bool) string {
	if valid {
		return "valid"
	}
	return "invalid"
}
