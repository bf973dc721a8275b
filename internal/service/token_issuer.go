// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/MKhiriev/peninsula/internal/config"
	"github.com/MKhiriev/peninsula/internal/utils"
	"github.com/MKhiriev/peninsula/models"
)

// TokenIssuer mints and verifies the two token kinds. Access and refresh
// tokens are signed with distinct HS256 secrets, so a token of one kind
// never verifies as the other.
//
// Verification is pure: it touches neither the store nor any shared state.
type TokenIssuer struct {
	accessSecret  string
	refreshSecret string
	issuer        string

	accessTTL  time.Duration
	refreshTTL time.Duration

	now func() time.Time
}

func NewTokenIssuer(cfg config.Auth) *TokenIssuer {
	return &TokenIssuer{
		accessSecret:  cfg.AccessSecret,
		refreshSecret: cfg.RefreshSecret,
		issuer:        cfg.Issuer,
		accessTTL:     cfg.AccessTTL,
		refreshTTL:    cfg.RefreshTTL,
		now:           time.Now,
	}
}

// IssueAccess returns a signed access token valid for the access TTL.
func (t *TokenIssuer) IssueAccess(userID int64, role models.Role, username string) (string, error) {
	claims := &models.AccessClaims{
		Role:             role,
		Username:         username,
		RegisteredClaims: t.registeredClaims(userID, t.accessTTL),
	}

	signed, err := utils.SignJWT(claims, t.accessSecret)
	if err != nil {
		return "", fmt.Errorf("%w: access: %w", ErrTokenCreationFailed, err)
	}
	return signed, nil
}

// IssueRefresh returns a signed refresh token and its expiry. The expiry is
// the one the refresh record must be persisted with.
func (t *TokenIssuer) IssueRefresh(userID int64, role models.Role) (string, time.Time, error) {
	claims := &models.RefreshClaims{
		Role:             role,
		RegisteredClaims: t.registeredClaims(userID, t.refreshTTL),
	}

	signed, err := utils.SignJWT(claims, t.refreshSecret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("%w: refresh: %w", ErrTokenCreationFailed, err)
	}
	return signed, claims.ExpiresAt.Time, nil
}

// VerifyAccess checks signature, issuer, expiry and subject of an access
// token. Every failure is reported as ErrInvalidToken.
func (t *TokenIssuer) VerifyAccess(token string) (*models.AccessClaims, error) {
	claims := &models.AccessClaims{}
	if err := utils.ParseJWT(token, t.accessSecret, t.issuer, claims); err != nil {
		return nil, ErrInvalidToken.Wrap(err)
	}
	if _, err := claims.UserID(); err != nil {
		return nil, ErrInvalidToken.Wrap(err)
	}
	return claims, nil
}

// VerifyRefresh is VerifyAccess for refresh tokens.
func (t *TokenIssuer) VerifyRefresh(token string) (*models.RefreshClaims, error) {
	claims := &models.RefreshClaims{}
	if err := utils.ParseJWT(token, t.refreshSecret, t.issuer, claims); err != nil {
		return nil, ErrInvalidToken.Wrap(err)
	}
	if _, err := claims.UserID(); err != nil {
		return nil, ErrInvalidToken.Wrap(err)
	}
	return claims, nil
}

// registeredClaims carries a random jti so that two tokens issued to the
// same user within one second still differ.
func (t *TokenIssuer) registeredClaims(userID int64, ttl time.Duration) jwt.RegisteredClaims {
	now := t.now().Truncate(time.Second)
	return jwt.RegisteredClaims{
		Issuer:    t.issuer,
		Subject:   models.UserIDToSubject(userID),
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
}
