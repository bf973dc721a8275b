// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "net/http"

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	writeResponse(w, r, h.services.AppInfoService.Health(r.Context()))
}
