package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/regform/regform-go/internal/form"
)

func TestCounters(t *testing.T) {
	m := New()

	m.FieldValidated(form.FieldEmail, false)
	m.FieldValidated(form.FieldEmail, false)
	m.FieldValidated(form.FieldName, true)
	m.SubmissionHandled(true)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.fieldTotal.WithLabelValues("email", "invalid")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.fieldTotal.WithLabelValues("name", "valid")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.submissionTotal.WithLabelValues("accepted")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.submissionTotal.WithLabelValues("rejected")))
}

func TestMiddlewareUsesRoutePattern(t *testing.T) {
	m := New()

	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Get("/items/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	r.Get("/metrics", m.Handler().ServeHTTP)

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/items/42", nil))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.requestTotal.WithLabelValues("GET", "/items/{id}", "418")))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "http_requests_total"))
}
