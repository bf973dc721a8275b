// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/peninsula/internal/apperr"
)

// Domain errors that cross the HTTP boundary. The code of each error is the
// value of the "error" field in the response body.
var (
	ErrInvalidPayload   = apperr.New(apperr.KindValidation, "invalid_payload")
	ErrMissingRefresh   = apperr.New(apperr.KindValidation, "missing_refresh")
	ErrNoUpdates        = apperr.New(apperr.KindValidation, "no_updates")
	ErrCannotDeleteSelf = apperr.New(apperr.KindValidation, "cannot_delete_self")

	ErrInvalidCredentials = apperr.New(apperr.KindAuthentication, "invalid_credentials")
	ErrInvalidRefresh     = apperr.New(apperr.KindAuthentication, "invalid_refresh")
	ErrMissingToken       = apperr.New(apperr.KindAuthentication, "missing_token")
	ErrInvalidToken       = apperr.New(apperr.KindAuthentication, "invalid_token")

	ErrAdminRequired = apperr.New(apperr.KindAuthorization, "admin_required")

	ErrNotFound = apperr.New(apperr.KindNotFound, "not_found")

	ErrUserExists       = apperr.New(apperr.KindConflict, "user_exists")
	ErrUpdateInProgress = apperr.New(apperr.KindConflict, "update_already_in_progress")

	ErrTooManyRequests = apperr.New(apperr.KindRateLimited, "too_many_requests")

	ErrUpdateCheckFailed  = apperr.New(apperr.KindUpstream, "update_check_failed")
	ErrUpdateScriptFailed = apperr.New(apperr.KindUpstream, "update_script_failed")
	ErrUpdateApplyFailed  = apperr.New(apperr.KindUpstream, "update_apply_failed")
)

// Internal errors. They never reach a client verbatim.
var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrTokenCreationFailed   = errors.New("token creation failed")
	ErrPasswordHashing       = errors.New("password hashing failed")
)
