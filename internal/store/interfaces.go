// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/peninsula/models"
)

// UserRepository is the credential store backed by the "users" table.
type UserRepository interface {
	// CreateUser inserts a user and returns the stored row.
	// Returns ErrUsernameAlreadyExists on a duplicate username.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByUsername looks a user up by its case-sensitive username.
	// Returns ErrUserNotFound when absent.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)

	// FindUserByID looks a user up by id. Returns ErrUserNotFound when absent.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)

	// ListUsers returns every user ordered by id.
	ListUsers(ctx context.Context) ([]models.User, error)

	// UpdateUser applies the non-nil fields of update and returns the
	// stored row. Returns ErrNothingToUpdate or ErrUserNotFound.
	UpdateUser(ctx context.Context, update models.UserUpdate) (models.User, error)

	// DeleteUser removes a user; its refresh tokens cascade and its audit
	// entries lose their actor. Returns ErrUserNotFound when absent.
	DeleteUser(ctx context.Context, userID int64) error
}

// RefreshTokenRepository is the session store backed by "refresh_tokens".
type RefreshTokenRepository interface {
	// SaveRefreshToken persists a newly issued refresh token.
	SaveRefreshToken(ctx context.Context, record models.RefreshTokenRecord) error

	// ExistsActiveRefreshToken reports whether a record matching token
	// exists and has not expired.
	ExistsActiveRefreshToken(ctx context.Context, token string) (bool, error)

	// DeleteExpiredRefreshTokens removes expired records and returns how
	// many were deleted.
	DeleteExpiredRefreshTokens(ctx context.Context) (int64, error)
}

// AuditRepository is the append-only audit sink backed by "audits".
type AuditRepository interface {
	SaveAudit(ctx context.Context, entry models.AuditEntry) error
}
