// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// LoginRequest is the body of POST /v1/auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RefreshRequest is the body of POST /v1/auth/refresh.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// AccessTokenResponse is returned by a successful refresh.
type AccessTokenResponse struct {
	AccessToken string `json:"accessToken"`
}

// CreateUserRequest is the body of POST /v1/admin/users/create.
// An empty Role defaults to [RoleUser].
type CreateUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     Role   `json:"role,omitempty"`
}

// UpdateUserRequest is the body of POST /v1/admin/users/update.
// Only non-nil fields are applied.
type UpdateUserRequest struct {
	ID       int64   `json:"id"`
	Password *string `json:"password,omitempty"`
	Role     *Role   `json:"role,omitempty"`
}

// DeleteUserRequest is the body of POST /v1/admin/users/delete.
type DeleteUserRequest struct {
	ID int64 `json:"id"`
}

// UserResponse wraps a single user.
type UserResponse struct {
	User User `json:"user"`
}

// UsersResponse wraps the user directory listing.
type UsersResponse struct {
	Users []User `json:"users"`
}

// SuccessResponse is returned by operations without a payload.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// ErrorResponse is the flat error shape returned for every failure.
// Details and the update script fields are only populated for upstream
// failures, which are reachable by authorized admins only.
type ErrorResponse struct {
	Error    string  `json:"error"`
	Details  string  `json:"details,omitempty"`
	ExitCode *int    `json:"exitCode,omitempty"`
	Stdout   *string `json:"stdout,omitempty"`
	Stderr   *string `json:"stderr,omitempty"`
}
