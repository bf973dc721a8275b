// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/peninsula/internal/logger"
	"github.com/MKhiriev/peninsula/internal/metrics"
	"github.com/MKhiriev/peninsula/internal/store"
	"github.com/MKhiriev/peninsula/models"
)

// authService is the concrete implementation of AuthService.
// It verifies bcrypt credentials against the UserRepository, persists
// issued refresh tokens and audits every login attempt.
type authService struct {
	// userRepository is used to look users up by username and id.
	userRepository store.UserRepository

	// refreshTokenRepository persists refresh tokens at login and answers
	// whether a presented token is still redeemable.
	refreshTokenRepository store.RefreshTokenRepository

	tokens  *TokenIssuer
	audit   AuditService
	metrics MetricsRecorder

	// dummyHash is compared against when the username is unknown so that
	// both failure paths spend the same bcrypt time.
	dummyHashOnce sync.Once
	dummyHash     []byte

	logger *logger.Logger
}

// NewAuthService constructs an AuthService. A nil metrics recorder is
// replaced with a no-op one.
//
// The returned service is safe for concurrent use.
func NewAuthService(
	userRepository store.UserRepository,
	refreshTokenRepository store.RefreshTokenRepository,
	tokens *TokenIssuer,
	audit AuditService,
	metrics MetricsRecorder,
	logger *logger.Logger,
) AuthService {
	if metrics == nil {
		metrics = nopMetrics{}
	}

	return &authService{
		userRepository:         userRepository,
		refreshTokenRepository: refreshTokenRepository,
		tokens:                 tokens,
		audit:                  audit,
		metrics:                metrics,
		logger:                 logger,
	}
}

// Login authenticates a user by username and password.
//
// An unknown username and a wrong password produce the same
// ErrInvalidCredentials; both are audited as login_failed, the latter with
// the user as actor. On success the refresh token is persisted before the
// pair is returned.
func (a *authService) Login(ctx context.Context, request models.LoginRequest) (models.TokenPair, error) {
	log := logger.FromContext(ctx)
	details := map[string]any{"username": request.Username}

	user, err := a.userRepository.FindUserByUsername(ctx, request.Username)
	if err != nil {
		if !errors.Is(err, store.ErrUserNotFound) {
			log.Err(err).Str("username", request.Username).Msg("user search by username failed")
			return models.TokenPair{}, fmt.Errorf("user search by username failed: %w", err)
		}

		_ = bcrypt.CompareHashAndPassword(a.getDummyHash(), []byte(request.Password))
		a.audit.Record(ctx, nil, models.ActionLoginFailed, details)
		a.metrics.LoginAttempt(metrics.LoginFailure)
		log.Info().Str("username", request.Username).Msg("login with unknown username")
		return models.TokenPair{}, ErrInvalidCredentials
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(request.Password)); err != nil {
		a.audit.Record(ctx, models.Actor(user.ID), models.ActionLoginFailed, details)
		a.metrics.LoginAttempt(metrics.LoginFailure)
		log.Info().Int64("user_id", user.ID).Msg("wrong password")
		return models.TokenPair{}, ErrInvalidCredentials
	}

	accessToken, err := a.tokens.IssueAccess(user.ID, user.Role, user.Username)
	if err != nil {
		log.Err(err).Int64("user_id", user.ID).Msg("access token creation failed")
		return models.TokenPair{}, err
	}

	refreshToken, expiresAt, err := a.tokens.IssueRefresh(user.ID, user.Role)
	if err != nil {
		log.Err(err).Int64("user_id", user.ID).Msg("refresh token creation failed")
		return models.TokenPair{}, err
	}

	err = a.refreshTokenRepository.SaveRefreshToken(ctx, models.RefreshTokenRecord{
		UserID:    user.ID,
		Token:     refreshToken,
		ExpiresAt: expiresAt,
	})
	if err != nil {
		log.Err(err).Int64("user_id", user.ID).Msg("refresh token was not persisted")
		return models.TokenPair{}, fmt.Errorf("error saving refresh token: %w", err)
	}

	a.audit.Record(ctx, models.Actor(user.ID), models.ActionLoginSuccess, details)
	a.metrics.LoginAttempt(metrics.LoginSuccess)

	return models.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Refresh returns a new access token for a valid refresh token.
//
// The token must verify against the refresh secret and have a matching,
// unexpired record. Role and username are re-read from the user row, so a
// role change takes effect at the next refresh. The refresh token itself is
// not rotated.
func (a *authService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	log := logger.FromContext(ctx)

	if refreshToken == "" {
		return "", ErrMissingRefresh
	}

	claims, err := a.tokens.VerifyRefresh(refreshToken)
	if err != nil {
		log.Debug().Err(err).Msg("refresh token verification failed")
		return "", ErrInvalidRefresh.Wrap(err)
	}

	active, err := a.refreshTokenRepository.ExistsActiveRefreshToken(ctx, refreshToken)
	if err != nil {
		log.Err(err).Msg("refresh token lookup failed")
		return "", fmt.Errorf("refresh token lookup failed: %w", err)
	}
	if !active {
		log.Debug().Str("subject", claims.Subject).Msg("refresh token has no active record")
		return "", ErrInvalidRefresh
	}

	// VerifyRefresh has already rejected a malformed subject.
	userID, _ := claims.UserID()

	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return "", ErrInvalidRefresh.Wrap(err)
		}
		log.Err(err).Int64("user_id", userID).Msg("user search by id failed")
		return "", fmt.Errorf("user search by id failed: %w", err)
	}

	accessToken, err := a.tokens.IssueAccess(user.ID, user.Role, user.Username)
	if err != nil {
		log.Err(err).Int64("user_id", user.ID).Msg("access token creation failed")
		return "", err
	}

	return accessToken, nil
}

// ParseAccessToken validates an access token. Any failure is normalised to
// ErrInvalidToken.
func (a *authService) ParseAccessToken(ctx context.Context, accessToken string) (*models.AccessClaims, error) {
	return a.tokens.VerifyAccess(accessToken)
}

func (a *authService) getDummyHash() []byte {
	a.dummyHashOnce.Do(func() {
		hash, err := bcrypt.GenerateFromPassword([]byte("peninsula-dummy-password"), PasswordHashCost)
		if err != nil {
			a.logger.Err(err).Msg("dummy hash generation failed")
			return
		}
		a.dummyHash = hash
	})
	return a.dummyHash
}
