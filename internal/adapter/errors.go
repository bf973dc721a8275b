// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/peninsula/models"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
)

// APIError is a non-2xx response. It unwraps to the sentinel matching the
// status code.
type APIError struct {
	StatusCode int
	Response   models.ErrorResponse

	sentinel error
}

func (e *APIError) Error() string {
	msg := fmt.Sprintf("http %d", e.StatusCode)
	if e.Response.Error != "" {
		msg += ": " + e.Response.Error
	}
	if e.Response.Details != "" {
		msg += ": " + e.Response.Details
	}
	return msg
}

func (e *APIError) Unwrap() error {
	return e.sentinel
}
