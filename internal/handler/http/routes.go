// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)
	if h.metrics != nil {
		router.Use(h.metrics.Instrument)
	}
	router.Use(
		h.withSecurityHeaders,
		h.withCORS,
		h.withMaxBodyBytes,
	)

	// Set before any sub-router is mounted: chi copies them at mount time.
	router.NotFound(h.notFound)
	router.MethodNotAllowed(h.methodNotAllowed)

	router.Get("/health", h.health)
	if h.metrics != nil {
		router.Method(http.MethodGet, "/metrics", h.metrics.Handler())
	}

	router.Route("/v1", func(r chi.Router) {
		// routes without authorization
		r.Route("/auth", func(r chi.Router) {
			r.Use(h.authLimiter.handler)
			r.Post("/login", h.login)
			r.Post("/refresh", h.refresh)
		})

		// admin routes: authorize is only ever mounted behind authenticate
		r.Route("/admin", func(r chi.Router) {
			r.Use(h.auth, h.requireAdmin)

			r.Get("/users/list", h.listUsers)
			r.Post("/users/create", h.createUser)
			r.Post("/users/update", h.updateUser)
			r.Post("/users/delete", h.deleteUser)

			r.Get("/update/check", h.checkUpdate)
			r.Post("/update/apply", h.applyUpdate)
		})
	})

	return router
}
