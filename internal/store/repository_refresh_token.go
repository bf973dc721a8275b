// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/peninsula/internal/logger"
	"github.com/MKhiriev/peninsula/models"
)

type refreshTokenRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewRefreshTokenRepository constructs a [RefreshTokenRepository].
func NewRefreshTokenRepository(db *DB, logger *logger.Logger) RefreshTokenRepository {
	logger.Debug().Msg("creating refresh token repository")
	return &refreshTokenRepository{
		db:     db,
		logger: logger,
	}
}

func (r *refreshTokenRepository) SaveRefreshToken(ctx context.Context, record models.RefreshTokenRecord) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, saveRefreshToken, record.UserID, record.Token, record.ExpiresAt); err != nil {
		log.Err(err).Str("func", "*refreshTokenRepository.SaveRefreshToken").Int64("user_id", record.UserID).Msg("error saving refresh token")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// ExistsActiveRefreshToken checks the exact token string; expiry is compared
// against the database clock.
func (r *refreshTokenRepository) ExistsActiveRefreshToken(ctx context.Context, token string) (bool, error) {
	log := logger.FromContext(ctx)

	var exists bool
	if err := r.db.QueryRowContext(ctx, existsActiveRefreshToken, token).Scan(&exists); err != nil {
		log.Err(err).Str("func", "*refreshTokenRepository.ExistsActiveRefreshToken").Msg("error looking up refresh token")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return exists, nil
}

func (r *refreshTokenRepository) DeleteExpiredRefreshTokens(ctx context.Context) (int64, error) {
	result, err := r.db.ExecContext(ctx, deleteExpiredRefreshTokens)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return deleted, nil
}
