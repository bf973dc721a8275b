// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/peninsula/models"
)

type AuthService interface {
	// Login verifies credentials and issues an access/refresh token pair.
	Login(ctx context.Context, request models.LoginRequest) (models.TokenPair, error)

	// Refresh exchanges a persisted, unexpired refresh token for a new
	// access token built from the current user row.
	Refresh(ctx context.Context, refreshToken string) (string, error)

	// ParseAccessToken verifies an access token and returns its claims.
	ParseAccessToken(ctx context.Context, accessToken string) (*models.AccessClaims, error)
}

// UserService manages the user directory on behalf of an authenticated
// admin, identified by actorID.
type UserService interface {
	ListUsers(ctx context.Context, actorID int64) ([]models.User, error)
	CreateUser(ctx context.Context, actorID int64, request models.CreateUserRequest) (models.User, error)
	UpdateUser(ctx context.Context, actorID int64, request models.UpdateUserRequest) (models.User, error)
	DeleteUser(ctx context.Context, actorID int64, request models.DeleteUserRequest) error

	// EnsureAdmin creates an admin account unless the username is taken.
	// created reports whether a new row was inserted.
	EnsureAdmin(ctx context.Context, username, password string) (user models.User, created bool, err error)
}

// AuditService appends entries to the audit log. Record never fails the
// calling operation: write errors are logged and dropped.
type AuditService interface {
	Record(ctx context.Context, actor *int64, action models.AuditAction, details map[string]any)
}

type UpdateService interface {
	// Check compares the deployed working tree with its remote branch.
	Check(ctx context.Context, actorID int64) (models.UpdateCheckResult, error)

	// Apply runs the update script. Only one run may be in flight; a
	// concurrent call fails immediately with ErrUpdateInProgress.
	Apply(ctx context.Context, actorID int64) (models.UpdateApplyResponse, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	Health(ctx context.Context) models.HealthResponse
}

// AuthServiceWrapper defines middleware composition for AuthService.
// Implementations wrap an existing AuthService to add behavior such as
// validating.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}

// UserServiceWrapper defines middleware composition for UserService.
type UserServiceWrapper interface {
	Wrap(UserService) UserService
}
