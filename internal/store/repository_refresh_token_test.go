// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/peninsula/internal/logger"
	"github.com/MKhiriev/peninsula/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRefreshTokenRepo(t *testing.T) (RefreshTokenRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return NewRefreshTokenRepository(db, logger.Nop()), mock
}

func TestSaveRefreshToken(t *testing.T) {
	repo, mock := newTestRefreshTokenRepo(t)
	expiresAt := time.Now().Add(7 * 24 * time.Hour)

	mock.ExpectExec(saveRefreshToken).
		WithArgs(int64(1), "signed.refresh.token", expiresAt).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.SaveRefreshToken(context.Background(), models.RefreshTokenRecord{
		UserID:    1,
		Token:     "signed.refresh.token",
		ExpiresAt: expiresAt,
	})

	assert.NoError(t, err)
}

func TestSaveRefreshToken_Error(t *testing.T) {
	repo, mock := newTestRefreshTokenRepo(t)

	mock.ExpectExec(saveRefreshToken).
		WithArgs(int64(1), "t", sqlmock.AnyArg()).
		WillReturnError(errors.New("foreign key violation"))

	err := repo.SaveRefreshToken(context.Background(), models.RefreshTokenRecord{UserID: 1, Token: "t", ExpiresAt: time.Now()})

	assert.ErrorIs(t, err, ErrExecutingStatement)
}

func TestExistsActiveRefreshToken(t *testing.T) {
	for _, exists := range []bool{true, false} {
		repo, mock := newTestRefreshTokenRepo(t)

		mock.ExpectQuery(existsActiveRefreshToken).
			WithArgs("token").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(exists))

		got, err := repo.ExistsActiveRefreshToken(context.Background(), "token")

		require.NoError(t, err)
		assert.Equal(t, exists, got)
	}
}

func TestExistsActiveRefreshToken_Error(t *testing.T) {
	repo, mock := newTestRefreshTokenRepo(t)

	mock.ExpectQuery(existsActiveRefreshToken).
		WithArgs("token").
		WillReturnError(errors.New("timeout"))

	got, err := repo.ExistsActiveRefreshToken(context.Background(), "token")

	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.False(t, got)
}

func TestDeleteExpiredRefreshTokens(t *testing.T) {
	repo, mock := newTestRefreshTokenRepo(t)

	mock.ExpectExec(deleteExpiredRefreshTokens).
		WillReturnResult(sqlmock.NewResult(0, 3))

	deleted, err := repo.DeleteExpiredRefreshTokens(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(3), deleted)
}
