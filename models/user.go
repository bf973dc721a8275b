// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Role is the authorization role assigned to a user account.
type Role string

const (
	// RoleAdmin grants access to the /admin routes (user directory and
	// self-update).
	RoleAdmin Role = "admin"

	// RoleUser is the default role for newly created accounts.
	RoleUser Role = "user"
)

// Roles lists every role accepted by the directory.
var Roles = []Role{RoleAdmin, RoleUser}

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	for _, role := range Roles {
		if r == role {
			return true
		}
	}
	return false
}

// User represents an operator account stored in the "users" table.
type User struct {
	// ID is the server-assigned identifier. Immutable.
	ID int64 `json:"id"`

	// Username is unique and case-sensitive.
	Username string `json:"username"`

	// PasswordHash is the bcrypt hash of the password. It is never
	// serialized to clients.
	PasswordHash string `json:"-"`

	// Role controls access to admin-only routes.
	Role Role `json:"role"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// IsAdmin reports whether the user holds the admin role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// UserUpdate describes a partial update of a user. Nil fields are left
// untouched.
type UserUpdate struct {
	ID           int64
	PasswordHash *string
	Role         *Role
}

// IsEmpty reports whether the update carries no changes.
func (u UserUpdate) IsEmpty() bool {
	return u.PasswordHash == nil && u.Role == nil
}
