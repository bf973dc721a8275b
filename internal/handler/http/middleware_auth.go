// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/peninsula/internal/logger"
	"github.com/MKhiriev/peninsula/internal/service"
	"github.com/MKhiriev/peninsula/internal/utils"
)

// auth is an HTTP middleware that enforces access token authentication.
//
// It extracts the bearer token from the "Authorization" header, verifies it
// via [service.AuthService.ParseAccessToken] and stores the verified claims
// in the request context under [utils.ClaimsCtxKey]. The request logger is
// enriched with the caller's user id.
//
// Rejections (401):
//   - missing_token: no header, or a header without a "Bearer <token>" value;
//   - invalid_token: bad signature, wrong secret, expired, malformed.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
		if err != nil {
			writeError(w, r, service.ErrMissingToken.Wrap(err))
			return
		}

		ctx := r.Context()
		claims, err := h.services.AuthService.ParseAccessToken(ctx, tokenString)
		if err != nil {
			writeError(w, r, err)
			return
		}

		l := logger.FromRequest(r).With().Str("user_id", claims.Subject).Logger()
		ctx = l.WithContext(utils.WithClaims(ctx, claims))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireAdmin lets through callers whose verified claims carry the admin
// role. Without claims in the context the request is refused as well.
func (h *Handler) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := utils.GetClaimsFromContext(r.Context())
		if !ok || !claims.IsAdmin() {
			writeError(w, r, service.ErrAdminRequired)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// actorID returns the id of the authenticated caller.
func actorID(r *http.Request) (int64, error) {
	claims, ok := utils.GetClaimsFromContext(r.Context())
	if !ok {
		return 0, service.ErrMissingToken
	}
	id, err := claims.UserID()
	if err != nil {
		return 0, service.ErrInvalidToken.Wrap(err)
	}
	return id, nil
}
