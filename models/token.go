// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenKind distinguishes the two classes of signed tokens. Each kind is
// signed with its own secret and has its own lifetime.
type TokenKind string

const (
	AccessToken  TokenKind = "access"
	RefreshToken TokenKind = "refresh"
)

// AccessClaims is the payload of an access token. It is never stored;
// handlers reconstruct it from the signed string on every request.
type AccessClaims struct {
	Role     Role   `json:"role"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// UserID parses the "sub" claim as the numeric user identifier.
func (c AccessClaims) UserID() (int64, error) {
	return subjectToUserID(c.Subject)
}

// IsAdmin reports whether the claims carry the admin role.
func (c AccessClaims) IsAdmin() bool {
	return c.Role == RoleAdmin
}

// RefreshClaims is the payload of a refresh token.
type RefreshClaims struct {
	Role Role `json:"role"`
	jwt.RegisteredClaims
}

// UserID parses the "sub" claim as the numeric user identifier.
func (c RefreshClaims) UserID() (int64, error) {
	return subjectToUserID(c.Subject)
}

// UserIDToSubject formats a user identifier for the "sub" claim.
func UserIDToSubject(userID int64) string {
	return strconv.FormatInt(userID, 10)
}

func subjectToUserID(subject string) (int64, error) {
	if subject == "" {
		return 0, fmt.Errorf("empty subject")
	}

	userID, err := strconv.ParseInt(subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting subject to user id: %w", err)
	}

	return userID, nil
}

// TokenPair is returned by a successful login.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// RefreshTokenRecord is a persisted refresh token ("refresh_tokens" table).
// A refresh token is redeemable only while a matching, unexpired record
// exists. Records are never mutated.
type RefreshTokenRecord struct {
	ID        int64
	UserID    int64
	Token     string
	ExpiresAt time.Time
	CreatedAt time.Time
}
