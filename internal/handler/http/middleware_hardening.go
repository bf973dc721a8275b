// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5/middleware"
)

const (
	corsAllowedMethods = "GET, POST, OPTIONS"
	corsAllowedHeaders = "Authorization, Content-Type, X-Trace-ID"
	corsMaxAge         = "600"
)

var securityHeaders = map[string]string{
	"X-Content-Type-Options":  "nosniff",
	"X-Frame-Options":         "DENY",
	"X-XSS-Protection":        "0",
	"Referrer-Policy":         "no-referrer",
	"Content-Security-Policy": "default-src 'none'; frame-ancestors 'none'",
}

// withSecurityHeaders sets the hardening headers on every response. The API
// only serves JSON, so the content security policy denies everything.
func (h *Handler) withSecurityHeaders(next http.Handler) http.Handler {
	for name, value := range securityHeaders {
		next = middleware.SetHeader(name, value)(next)
	}
	return next
}

// withCORS allows the configured origins. CORSOrigin is either "*" or a
// comma separated list of exact origins; preflight requests are answered
// here and never reach a route.
func (h *Handler) withCORS(next http.Handler) http.Handler {
	allowAny, allowed := parseCORSOrigins(h.cfg.CORSOrigin)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" {
			switch {
			case allowAny:
				w.Header().Set("Access-Control-Allow-Origin", "*")
			case allowed[origin]:
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Add("Vary", "Origin")
			}
			w.Header().Set("Access-Control-Allow-Methods", corsAllowedMethods)
			w.Header().Set("Access-Control-Allow-Headers", corsAllowedHeaders)
			w.Header().Set("Access-Control-Expose-Headers", traceIDHeader)
			w.Header().Set("Access-Control-Max-Age", corsMaxAge)
		}

		if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func parseCORSOrigins(value string) (bool, map[string]bool) {
	allowed := make(map[string]bool)
	for _, origin := range strings.Split(value, ",") {
		origin = strings.TrimSpace(origin)
		if origin == "*" {
			return true, nil
		}
		if origin != "" {
			allowed[origin] = true
		}
	}
	return false, allowed
}

// withMaxBodyBytes caps request bodies; a non-positive limit disables the
// cap. Decoding an oversized body fails and is reported as invalid_payload.
func (h *Handler) withMaxBodyBytes(next http.Handler) http.Handler {
	if h.cfg.MaxBodyBytes <= 0 {
		return next
	}
	return middleware.RequestSize(h.cfg.MaxBodyBytes)(next)
}
