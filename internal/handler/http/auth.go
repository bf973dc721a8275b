// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/MKhiriev/peninsula/internal/service"
	"github.com/MKhiriev/peninsula/internal/utils"
	"github.com/MKhiriev/peninsula/models"
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var request models.LoginRequest
	if err := utils.DecodeJSON(r.Body, &request); err != nil {
		writeError(w, r, service.ErrInvalidPayload.Wrap(err))
		return
	}

	pair, err := h.services.AuthService.Login(r.Context(), request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeResponse(w, r, pair)
}

// refresh treats an empty body like a body without a token.
func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	var request models.RefreshRequest
	if err := utils.DecodeJSON(r.Body, &request); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, r, service.ErrInvalidPayload.Wrap(err))
		return
	}

	accessToken, err := h.services.AuthService.Refresh(r.Context(), request.RefreshToken)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeResponse(w, r, models.AccessTokenResponse{AccessToken: accessToken})
}
