// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/peninsula/internal/apperr"
	"github.com/MKhiriev/peninsula/internal/logger"
	"github.com/MKhiriev/peninsula/internal/service"
	"github.com/MKhiriev/peninsula/internal/utils"
	"github.com/MKhiriev/peninsula/models"
)

const (
	codeInternalError    = "internal_error"
	codeNotFound         = "not_found"
	codeMethodNotAllowed = "method_not_allowed"
)

var errorStatusMap = map[apperr.Kind]int{
	apperr.KindValidation:     http.StatusBadRequest,
	apperr.KindAuthentication: http.StatusUnauthorized,
	apperr.KindAuthorization:  http.StatusForbidden,
	apperr.KindNotFound:       http.StatusNotFound,
	apperr.KindConflict:       http.StatusConflict,
	apperr.KindRateLimited:    http.StatusTooManyRequests,
	apperr.KindUpstream:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	if status, ok := errorStatusMap[apperr.KindOf(err)]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// errorResponse renders err as the flat error body. Diagnostics are only
// exposed for upstream failures; anything that is not an *apperr.Error
// becomes internal_error.
func errorResponse(err error) models.ErrorResponse {
	appErr, ok := apperr.As(err)
	if !ok {
		return models.ErrorResponse{Error: codeInternalError}
	}

	resp := models.ErrorResponse{Error: appErr.Code}
	if appErr.Kind != apperr.KindUpstream {
		return resp
	}

	resp.Details = appErr.Details
	if exitCode, ok := appErr.Fields[service.FieldExitCode].(int); ok {
		resp.ExitCode = &exitCode
	}
	if stdout, ok := appErr.Fields[service.FieldStdout].(string); ok {
		resp.Stdout = &stdout
	}
	if stderr, ok := appErr.Fields[service.FieldStderr].(string); ok {
		resp.Stderr = &stderr
	}
	return resp
}

// writeError is the single exit for failed requests.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	switch {
	case status >= http.StatusInternalServerError:
		log.Err(err).Int("status", status).Msg("request failed")
	default:
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	if _, writeErr := utils.WriteJSON(w, errorResponse(err), status); writeErr != nil {
		log.Err(writeErr).Msg("error writing error response")
	}
}

func writeResponse(w http.ResponseWriter, r *http.Request, data any) {
	if _, err := utils.WriteJSON(w, data, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}
