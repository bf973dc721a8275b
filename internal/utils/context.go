// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helpers shared by the server,
// the services and the operator client: typed context keys, JSON response
// writing, JWT signing and verification, and trace id generation.
package utils

import (
	"context"

	"github.com/MKhiriev/peninsula/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// ClaimsCtxKey is the key under which the authenticate middleware stores
// the verified *models.AccessClaims of the caller.
var ClaimsCtxKey = contextKey("claims")

// WithClaims returns a copy of ctx carrying the verified access claims.
func WithClaims(ctx context.Context, claims *models.AccessClaims) context.Context {
	return context.WithValue(ctx, ClaimsCtxKey, claims)
}

// GetClaimsFromContext retrieves the verified access claims from the context.
//
// Returns the claims and an ok flag:
//   - ok == true : claims are present and non-nil
//   - ok == false: value is missing, nil or has an unexpected type
func GetClaimsFromContext(ctx context.Context) (*models.AccessClaims, bool) {
	claims, ok := ctx.Value(ClaimsCtxKey).(*models.AccessClaims)
	if !ok || claims == nil {
		return nil, false
	}
	return claims, true
}
