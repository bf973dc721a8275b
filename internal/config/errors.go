// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrMissingTokenSecrets indicates that the access or refresh secret
	// is empty.
	ErrMissingTokenSecrets = errors.New("access and refresh token secrets are required")
	// ErrSharedTokenSecret indicates that both token kinds would be signed
	// with the same secret.
	ErrSharedTokenSecret = errors.New("access and refresh token secrets must differ")
	// ErrInvalidTokenTTL indicates a non-positive token lifetime.
	ErrInvalidTokenTTL = errors.New("token lifetimes must be positive")
	// ErrInvalidStorageConfigs indicates a missing database DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates an out-of-range listening port.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidUpdateConfigs indicates a missing update script or a
	// non-positive update timeout.
	ErrInvalidUpdateConfigs = errors.New("invalid update configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrInvalidClientConfigs indicates an unusable operator CLI setup.
	ErrInvalidClientConfigs = errors.New("invalid client configuration")
)
