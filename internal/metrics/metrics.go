// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics exposes Prometheus instrumentation for the HTTP API, the
// login flow and the update orchestrator.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "peninsula"

// Login outcomes.
const (
	LoginSuccess = "success"
	LoginFailure = "failure"
)

// Update run outcomes.
const (
	UpdateSucceeded = "succeeded"
	UpdateFailed    = "failed"
	UpdateTimedOut  = "timed_out"
	UpdateRejected  = "rejected"
)

// Metrics holds every collector of the service. Collectors are registered
// on the registry passed to New, so tests can use a private one.
type Metrics struct {
	registry prometheus.Gatherer

	httpInFlight        prometheus.Gauge
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	loginAttempts    *prometheus.CounterVec
	updateRuns       *prometheus.CounterVec
	updateInProgress prometheus.Gauge
}

// New creates the collectors and registers them on registry.
func New(registry *prometheus.Registry) *Metrics {
	m := &Metrics{
		registry: registry,
		httpInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "http_in_flight_requests",
			Help: "In-flight HTTP requests.",
		}),
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		}, []string{"method", "route", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latencies in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
		loginAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "login_attempts_total",
			Help:      "Login attempts by outcome.",
		}, []string{"outcome"}),
		updateRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "update_runs_total",
			Help:      "Update script runs by outcome.",
		}, []string{"outcome"}),
		updateInProgress: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "update_in_progress",
			Help:      "1 while the update script is running.",
		}),
	}

	registry.MustRegister(
		m.httpInFlight,
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.loginAttempts,
		m.updateRuns,
		m.updateInProgress,
	)

	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Instrument records count, latency and in-flight requests. The route label
// is the chi route pattern, so path parameters do not blow up cardinality.
func (m *Metrics) Instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m.httpInFlight.Inc()
		defer m.httpInFlight.Dec()

		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}

		labels := []string{r.Method, route, strconv.Itoa(status)}
		m.httpRequestDuration.WithLabelValues(labels...).Observe(time.Since(start).Seconds())
		m.httpRequestsTotal.WithLabelValues(labels...).Inc()
	})
}

// LoginAttempt counts one login by outcome.
func (m *Metrics) LoginAttempt(outcome string) {
	m.loginAttempts.WithLabelValues(outcome).Inc()
}

// UpdateRun counts one apply request by outcome.
func (m *Metrics) UpdateRun(outcome string) {
	m.updateRuns.WithLabelValues(outcome).Inc()
}

// SetUpdateInProgress flips the in-progress gauge.
func (m *Metrics) SetUpdateInProgress(running bool) {
	if running {
		m.updateInProgress.Set(1)
		return
	}
	m.updateInProgress.Set(0)
}
