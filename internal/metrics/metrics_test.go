// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scrape(t *testing.T, m *Metrics) string {
	t.Helper()
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	return rec.Body.String()
}

func TestLoginAndUpdateCounters(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.LoginAttempt(LoginSuccess)
	m.LoginAttempt(LoginFailure)
	m.LoginAttempt(LoginFailure)
	m.UpdateRun(UpdateRejected)

	body := scrape(t, m)
	assert.Contains(t, body, `peninsula_login_attempts_total{outcome="success"} 1`)
	assert.Contains(t, body, `peninsula_login_attempts_total{outcome="failure"} 2`)
	assert.Contains(t, body, `peninsula_update_runs_total{outcome="rejected"} 1`)
}

func TestSetUpdateInProgress(t *testing.T) {
	m := New(prometheus.NewRegistry())
	assert.Contains(t, scrape(t, m), "peninsula_update_in_progress 0")

	m.SetUpdateInProgress(true)
	assert.Contains(t, scrape(t, m), "peninsula_update_in_progress 1")

	m.SetUpdateInProgress(false)
	assert.Contains(t, scrape(t, m), "peninsula_update_in_progress 0")
}

func TestInstrument_UsesRoutePattern(t *testing.T) {
	m := New(prometheus.NewRegistry())

	r := chi.NewRouter()
	r.Use(m.Instrument)
	r.Get("/users/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	for _, path := range []string{"/users/1", "/users/2"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	body := scrape(t, m)
	assert.Contains(t, body, `http_requests_total{method="GET",route="/users/{id}",status="418"} 2`)
	assert.Contains(t, body, "http_in_flight_requests 0")
	assert.NotContains(t, body, `route="/users/1"`)
}

func TestNew_PanicsOnDuplicateRegistration(t *testing.T) {
	registry := prometheus.NewRegistry()
	New(registry)

	assert.Panics(t, func() { New(registry) })
}
