// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "net/http"

func (h *Handler) checkUpdate(w http.ResponseWriter, r *http.Request) {
	actor, err := actorID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	result, err := h.services.UpdateService.Check(r.Context(), actor)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeResponse(w, r, result)
}

// applyUpdate blocks until the update script terminates or times out.
func (h *Handler) applyUpdate(w http.ResponseWriter, r *http.Request) {
	actor, err := actorID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	result, err := h.services.UpdateService.Apply(r.Context(), actor)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeResponse(w, r, result)
}
