// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrInvalidPayload wraps the per-field ozzo-validation errors.
	ErrInvalidPayload = errors.New("invalid payload")
)
