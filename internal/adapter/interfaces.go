// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the operator-side client of the Peninsula HTTP API.
//
// [ServerAdapter] hides the transport from the CLI. Error responses are
// mapped to the sentinel values in errors.go, so callers can use
// [errors.Is] (e.g. [ErrConflict] for a 409) and still read the server's
// error code and update diagnostics from [*APIError].
package adapter

import (
	"context"

	"github.com/MKhiriev/peninsula/models"
)

// ServerAdapter talks to a Peninsula control plane.
type ServerAdapter interface {
	// SetToken stores the access token attached to admin requests.
	SetToken(token string)

	// Token returns the stored access token, or "".
	Token() string

	// Login exchanges credentials for a token pair and stores the access
	// token.
	Login(ctx context.Context, request models.LoginRequest) (models.TokenPair, error)

	// Refresh exchanges a refresh token for a new access token and stores
	// it.
	Refresh(ctx context.Context, refreshToken string) (string, error)

	Health(ctx context.Context) (models.HealthResponse, error)

	ListUsers(ctx context.Context) ([]models.User, error)
	CreateUser(ctx context.Context, request models.CreateUserRequest) (models.User, error)
	UpdateUser(ctx context.Context, request models.UpdateUserRequest) (models.User, error)
	DeleteUser(ctx context.Context, request models.DeleteUserRequest) error

	CheckUpdate(ctx context.Context) (models.UpdateCheckResult, error)

	// ApplyUpdate blocks until the server's update script finishes, so the
	// adapter timeout must exceed the server's update timeout.
	ApplyUpdate(ctx context.Context) (models.UpdateApplyResponse, error)
}
