// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/peninsula/internal/service"
	"github.com/MKhiriev/peninsula/internal/utils"
	"github.com/MKhiriev/peninsula/models"
)

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	actor, err := actorID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	users, err := h.services.UserService.ListUsers(r.Context(), actor)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeResponse(w, r, models.UsersResponse{Users: users})
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	actor, err := actorID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var request models.CreateUserRequest
	if err = utils.DecodeJSON(r.Body, &request); err != nil {
		writeError(w, r, service.ErrInvalidPayload.Wrap(err))
		return
	}

	user, err := h.services.UserService.CreateUser(r.Context(), actor, request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeResponse(w, r, models.UserResponse{User: user})
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	actor, err := actorID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var request models.UpdateUserRequest
	if err = utils.DecodeJSON(r.Body, &request); err != nil {
		writeError(w, r, service.ErrInvalidPayload.Wrap(err))
		return
	}

	user, err := h.services.UserService.UpdateUser(r.Context(), actor, request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeResponse(w, r, models.UserResponse{User: user})
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	actor, err := actorID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var request models.DeleteUserRequest
	if err = utils.DecodeJSON(r.Body, &request); err != nil {
		writeError(w, r, service.ErrInvalidPayload.Wrap(err))
		return
	}

	if err = h.services.UserService.DeleteUser(r.Context(), actor, request); err != nil {
		writeError(w, r, err)
		return
	}

	writeResponse(w, r, models.SuccessResponse{Success: true})
}
