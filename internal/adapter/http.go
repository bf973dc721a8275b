// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/peninsula/internal/config"
	"github.com/MKhiriev/peninsula/internal/logger"
	"github.com/MKhiriev/peninsula/internal/utils"
	"github.com/MKhiriev/peninsula/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the HTTP implementation of
// [ServerAdapter]. The server address may omit the scheme, in which case
// http is assumed.
func NewHTTPServerAdapter(cfg config.Client, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.ServerAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid server address: %w", err)
	}

	a := &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}
	a.SetToken(cfg.AccessToken)
	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) Login(ctx context.Context, request models.LoginRequest) (models.TokenPair, error) {
	var pair models.TokenPair
	if err := h.do(h.client.R().SetContext(ctx).SetBody(request).SetResult(&pair), "POST", "/v1/auth/login"); err != nil {
		return models.TokenPair{}, fmt.Errorf("login request: %w", err)
	}

	h.SetToken(pair.AccessToken)
	return pair, nil
}

func (h *httpServerAdapter) Refresh(ctx context.Context, refreshToken string) (string, error) {
	var resp models.AccessTokenResponse
	req := h.client.R().
		SetContext(ctx).
		SetBody(models.RefreshRequest{RefreshToken: refreshToken}).
		SetResult(&resp)
	if err := h.do(req, "POST", "/v1/auth/refresh"); err != nil {
		return "", fmt.Errorf("refresh request: %w", err)
	}

	h.SetToken(resp.AccessToken)
	return resp.AccessToken, nil
}

func (h *httpServerAdapter) Health(ctx context.Context) (models.HealthResponse, error) {
	var health models.HealthResponse
	if err := h.do(h.client.R().SetContext(ctx).SetResult(&health), "GET", "/health"); err != nil {
		return models.HealthResponse{}, fmt.Errorf("health request: %w", err)
	}
	return health, nil
}

func (h *httpServerAdapter) ListUsers(ctx context.Context) ([]models.User, error) {
	var resp models.UsersResponse
	if err := h.do(h.authedRequest(ctx).SetResult(&resp), "GET", "/v1/admin/users/list"); err != nil {
		return nil, fmt.Errorf("list users request: %w", err)
	}
	return resp.Users, nil
}

func (h *httpServerAdapter) CreateUser(ctx context.Context, request models.CreateUserRequest) (models.User, error) {
	var resp models.UserResponse
	if err := h.do(h.authedRequest(ctx).SetBody(request).SetResult(&resp), "POST", "/v1/admin/users/create"); err != nil {
		return models.User{}, fmt.Errorf("create user request: %w", err)
	}
	return resp.User, nil
}

func (h *httpServerAdapter) UpdateUser(ctx context.Context, request models.UpdateUserRequest) (models.User, error) {
	var resp models.UserResponse
	if err := h.do(h.authedRequest(ctx).SetBody(request).SetResult(&resp), "POST", "/v1/admin/users/update"); err != nil {
		return models.User{}, fmt.Errorf("update user request: %w", err)
	}
	return resp.User, nil
}

func (h *httpServerAdapter) DeleteUser(ctx context.Context, request models.DeleteUserRequest) error {
	if err := h.do(h.authedRequest(ctx).SetBody(request), "POST", "/v1/admin/users/delete"); err != nil {
		return fmt.Errorf("delete user request: %w", err)
	}
	return nil
}

func (h *httpServerAdapter) CheckUpdate(ctx context.Context) (models.UpdateCheckResult, error) {
	var result models.UpdateCheckResult
	if err := h.do(h.authedRequest(ctx).SetResult(&result), "GET", "/v1/admin/update/check"); err != nil {
		return models.UpdateCheckResult{}, fmt.Errorf("check update request: %w", err)
	}
	return result, nil
}

func (h *httpServerAdapter) ApplyUpdate(ctx context.Context) (models.UpdateApplyResponse, error) {
	var result models.UpdateApplyResponse
	if err := h.do(h.authedRequest(ctx).SetResult(&result), "POST", "/v1/admin/update/apply"); err != nil {
		return models.UpdateApplyResponse{}, fmt.Errorf("apply update request: %w", err)
	}
	return result, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

func (h *httpServerAdapter) do(req *resty.Request, method, path string) error {
	resp, err := req.Execute(method, path)
	if err != nil {
		return err
	}

	traceID := resp.Header().Get("X-Trace-ID")
	if err = mapHTTPError(resp); err != nil {
		h.logger.Debug().Err(err).Str("trace_id", traceID).Str("path", path).Msg("request rejected")
		return err
	}

	h.logger.Debug().Str("trace_id", traceID).Str("path", path).Int("status", resp.StatusCode()).Msg("request succeeded")
	return nil
}
