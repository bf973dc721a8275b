// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidAuthorizationHeader is returned by ParseBearerToken when the
// header does not carry a "Bearer <token>" value.
var ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")

// SignJWT signs claims with HMAC-SHA256 using signKey and returns the
// compact serialized token.
//
// Example usage:
//
//	signed, err := utils.SignJWT(&models.AccessClaims{...}, secret)
func SignJWT(claims jwt.Claims, signKey string) (string, error) {
	if claims == nil || signKey == "" {
		return "", errors.New("invalid params for signing JWT token")
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(signKey))
	if err != nil {
		return "", fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return signed, nil
}

// ParseJWT verifies tokenString and decodes its payload into claims.
//
// Validation includes:
//   - signature verification with signKey (HS256 only, "none" and
//     asymmetric algorithms are rejected);
//   - the "iss" claim must equal issuer;
//   - the "exp" claim must be present and in the future.
//
// claims must be a pointer, e.g. &models.AccessClaims{}.
func ParseJWT(tokenString, signKey, issuer string, claims jwt.Claims) error {
	if tokenString == "" {
		return errors.New("empty token")
	}

	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
	)
	if err != nil {
		return fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	return nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value. The scheme is matched case-insensitively.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", ErrInvalidAuthorizationHeader
	}
	return parts[1], nil
}
