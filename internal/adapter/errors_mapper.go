// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/peninsula/models"
)

var statusSentinels = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusConflict:            ErrConflict,
	http.StatusTooManyRequests:     ErrTooManyRequests,
	http.StatusInternalServerError: ErrInternalServerError,
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	apiErr := &APIError{
		StatusCode: resp.StatusCode(),
		sentinel:   statusSentinels[resp.StatusCode()],
	}

	// a body that is not the JSON error shape (e.g. a proxy page) is kept
	// as details
	var body models.ErrorResponse
	if err := json.Unmarshal(resp.Body(), &body); err == nil && body.Error != "" {
		apiErr.Response = body
	} else {
		apiErr.Response.Details = strings.TrimSpace(string(resp.Body()))
		if apiErr.Response.Details == "" {
			apiErr.Response.Details = http.StatusText(resp.StatusCode())
		}
	}

	return apiErr
}
