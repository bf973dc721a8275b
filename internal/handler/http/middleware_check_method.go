// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/peninsula/internal/utils"
	"github.com/MKhiriev/peninsula/models"
)

// notFound answers unknown routes with the JSON error body instead of chi's
// plain-text default.
func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.ErrorResponse{Error: codeNotFound}, http.StatusNotFound)
}

// methodNotAllowed answers a known route requested with an unregistered
// method.
func (h *Handler) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.ErrorResponse{Error: codeMethodNotAllowed}, http.StatusMethodNotAllowed)
}
