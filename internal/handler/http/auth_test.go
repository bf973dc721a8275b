// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/peninsula/internal/service"
	"github.com/MKhiriev/peninsula/models"
)

func newAuthRouter(t *testing.T, auth *mockAuthService) http.Handler {
	t.Helper()
	services := newTestServices()
	services.AuthService = auth
	return newTestRouter(t, services)
}

func TestLogin_Success(t *testing.T) {
	var got models.LoginRequest
	router := newAuthRouter(t, &mockAuthService{
		loginFn: func(_ context.Context, request models.LoginRequest) (models.TokenPair, error) {
			got = request
			return models.TokenPair{AccessToken: "access", RefreshToken: "refresh"}, nil
		},
	})

	rr := do(t, router, http.MethodPost, "/v1/auth/login", models.LoginRequest{Username: "admin", Password: "admin123"}, "")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, models.LoginRequest{Username: "admin", Password: "admin123"}, got)
	assert.JSONEq(t, `{"accessToken":"access","refreshToken":"refresh"}`, rr.Body.String())
}

func TestLogin_BadBodies(t *testing.T) {
	tests := []struct {
		name string
		body any
	}{
		{name: "invalid JSON", body: "{not json"},
		{name: "empty body", body: ""},
		{name: "trailing data", body: `{"username":"a","password":"b"} {}`},
		{name: "wrong types", body: `{"username":1,"password":true}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			router := newAuthRouter(t, &mockAuthService{
				loginFn: func(context.Context, models.LoginRequest) (models.TokenPair, error) {
					called = true
					return models.TokenPair{}, nil
				},
			})

			rr := do(t, router, http.MethodPost, "/v1/auth/login", tt.body, "")

			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Equal(t, "invalid_payload", decodeError(t, rr).Error)
			assert.False(t, called)
		})
	}
}

func TestLogin_OversizedBody(t *testing.T) {
	services := newTestServices()
	cfg := testServerConfig()
	cfg.MaxBodyBytes = 64
	router := NewHandler(services, cfg, nil, newTestHandler().logger).Init()

	body := `{"username":"admin","password":"` + strings.Repeat("x", 128) + `"}`
	rr := do(t, router, http.MethodPost, "/v1/auth/login", body, "")

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "invalid_payload", decodeError(t, rr).Error)
}

func TestLogin_ServiceErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "validation", err: service.ErrInvalidPayload, wantStatus: http.StatusBadRequest, wantCode: "invalid_payload"},
		{name: "bad credentials", err: service.ErrInvalidCredentials, wantStatus: http.StatusUnauthorized, wantCode: "invalid_credentials"},
		{name: "unexpected", err: errors.New("db down"), wantStatus: http.StatusInternalServerError, wantCode: "internal_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newAuthRouter(t, &mockAuthService{
				loginFn: func(context.Context, models.LoginRequest) (models.TokenPair, error) {
					return models.TokenPair{}, tt.err
				},
			})

			rr := do(t, router, http.MethodPost, "/v1/auth/login", models.LoginRequest{Username: "admin", Password: "nope"}, "")

			assert.Equal(t, tt.wantStatus, rr.Code)
			resp := decodeError(t, rr)
			assert.Equal(t, tt.wantCode, resp.Error)
			assert.Empty(t, resp.Details)
			assert.NotContains(t, rr.Body.String(), "db down")
		})
	}
}

func TestRefresh_Success(t *testing.T) {
	var got string
	router := newAuthRouter(t, &mockAuthService{
		refreshFn: func(_ context.Context, refreshToken string) (string, error) {
			got = refreshToken
			return "new-access", nil
		},
	})

	rr := do(t, router, http.MethodPost, "/v1/auth/refresh", models.RefreshRequest{RefreshToken: "r1"}, "")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "r1", got)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, map[string]any{"accessToken": "new-access"}, resp)
}

func TestRefresh_MissingToken(t *testing.T) {
	for _, body := range []any{"", "{}", `{"refreshToken":""}`} {
		t.Run(body.(string), func(t *testing.T) {
			router := newAuthRouter(t, &mockAuthService{
				refreshFn: func(_ context.Context, refreshToken string) (string, error) {
					if refreshToken == "" {
						return "", service.ErrMissingRefresh
					}
					return "x", nil
				},
			})

			rr := do(t, router, http.MethodPost, "/v1/auth/refresh", body, "")

			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Equal(t, "missing_refresh", decodeError(t, rr).Error)
		})
	}
}

func TestRefresh_InvalidJSON(t *testing.T) {
	called := false
	router := newAuthRouter(t, &mockAuthService{
		refreshFn: func(context.Context, string) (string, error) {
			called = true
			return "", nil
		},
	})

	rr := do(t, router, http.MethodPost, "/v1/auth/refresh", "{oops", "")

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "invalid_payload", decodeError(t, rr).Error)
	assert.False(t, called)
}

func TestRefresh_InvalidRefresh(t *testing.T) {
	router := newAuthRouter(t, &mockAuthService{
		refreshFn: func(context.Context, string) (string, error) {
			return "", service.ErrInvalidRefresh
		},
	})

	rr := do(t, router, http.MethodPost, "/v1/auth/refresh", models.RefreshRequest{RefreshToken: "revoked"}, "")

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "invalid_refresh", decodeError(t, rr).Error)
}

func TestAuthRoutes_RateLimited(t *testing.T) {
	cfg := testServerConfig()
	cfg.AuthRatePerSecond = 0.001
	cfg.AuthRateBurst = 2
	router := NewHandler(newTestServices(), cfg, nil, newTestHandler().logger).Init()

	body := models.LoginRequest{Username: "admin", Password: "admin123"}
	for range 2 {
		rr := do(t, router, http.MethodPost, "/v1/auth/login", body, "")
		require.Equal(t, http.StatusOK, rr.Code)
	}

	rr := do(t, router, http.MethodPost, "/v1/auth/refresh", "{}", "")
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
	assert.Equal(t, "too_many_requests", decodeError(t, rr).Error)
	assert.Equal(t, "1", rr.Header().Get("Retry-After"))

	// the limiter only guards the auth routes
	rr = do(t, router, http.MethodGet, "/health", nil, "")
	assert.Equal(t, http.StatusOK, rr.Code)
}
