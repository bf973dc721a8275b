// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package apperr defines the closed set of error kinds that may cross the
// HTTP boundary.
//
// Every domain failure is an [*Error] carrying one [Kind] and a stable,
// machine-readable code (e.g. "invalid_credentials"). The transport layer
// translates kinds to status codes in one place, so no handler builds an
// error response ad hoc.
package apperr

import (
	"errors"
	"fmt"
)

// Kind is one entry of the error taxonomy.
type Kind int

const (
	// KindUnknown is never assigned explicitly; it is reported for errors
	// that are not an [*Error].
	KindUnknown Kind = iota

	// KindValidation marks malformed or missing input (400). Never touches
	// the store or the audit log.
	KindValidation

	// KindAuthentication marks missing/invalid/expired tokens or
	// credentials (401).
	KindAuthentication

	// KindAuthorization marks an authenticated caller with an insufficient
	// role (403).
	KindAuthorization

	// KindNotFound marks a referenced entity that does not exist (404).
	KindNotFound

	// KindConflict marks a duplicate resource or a concurrent exclusive
	// operation (409).
	KindConflict

	// KindRateLimited marks a caller that exceeded its request budget (429).
	KindRateLimited

	// KindUpstream marks an update-check/apply infrastructure failure (500).
	// It is the only kind allowed to expose diagnostic text.
	KindUpstream
)

var kindNames = map[Kind]string{
	KindUnknown:        "unknown",
	KindValidation:     "validation",
	KindAuthentication: "authentication",
	KindAuthorization:  "authorization",
	KindNotFound:       "not_found",
	KindConflict:       "conflict",
	KindRateLimited:    "rate_limited",
	KindUpstream:       "upstream",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Error is a tagged application error.
//
// Sentinel values are declared with [New] and compared with [errors.Is],
// which matches on Kind and Code so that copies enriched through
// [Error.WithDetails] or [Error.WithFields] still match their sentinel.
type Error struct {
	Kind Kind
	Code string

	// Details is a human-readable diagnostic. Only rendered for KindUpstream.
	Details string

	// Fields carries structured, code-specific data (e.g. exit code and
	// captured output of a failed update script).
	Fields map[string]any

	// Err is the underlying cause, never rendered to clients.
	Err error
}

// New declares a sentinel error of the given kind.
func New(kind Kind, code string) *Error {
	return &Error{Kind: kind, Code: code}
}

func (e *Error) Error() string {
	switch {
	case e.Err != nil && e.Details != "":
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Details, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Code, e.Err)
	case e.Details != "":
		return fmt.Sprintf("%s: %s", e.Code, e.Details)
	default:
		return e.Code
	}
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches another *Error with the same kind and code.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Kind == t.Kind && e.Code == t.Code
}

// Wrap returns a copy of e carrying cause.
func (e *Error) Wrap(cause error) *Error {
	c := e.clone()
	c.Err = cause
	return c
}

// WithDetails returns a copy of e carrying a diagnostic message.
func (e *Error) WithDetails(details string) *Error {
	c := e.clone()
	c.Details = details
	return c
}

// WithFields returns a copy of e carrying structured fields.
func (e *Error) WithFields(fields map[string]any) *Error {
	c := e.clone()
	c.Fields = make(map[string]any, len(fields))
	for k, v := range fields {
		c.Fields[k] = v
	}
	return c
}

func (e *Error) clone() *Error {
	c := *e
	return &c
}

// KindOf returns the kind of the first *Error in err's chain, or
// KindUnknown.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindUnknown
}

// As extracts the first *Error in err's chain.
func As(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
