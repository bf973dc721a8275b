// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request payloads before they reach the
// services. Rules are expressed with ozzo-validation; a failed check is
// reported as ErrInvalidPayload and never touches the store or the audit
// log.
package validators

import "context"

// Validator validates the provided input and optionally restricts
// validation to specific named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
