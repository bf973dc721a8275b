// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// AuditAction is the closed vocabulary of audited actions.
type AuditAction string

const (
	ActionLoginFailed  AuditAction = "login_failed"
	ActionLoginSuccess AuditAction = "login_success"

	ActionUsersList   AuditAction = "users_list"
	ActionUserCreated AuditAction = "user_created"
	ActionUserUpdated AuditAction = "user_updated"
	ActionUserDeleted AuditAction = "user_deleted"

	ActionUpdateCheck AuditAction = "update_check"
	ActionUpdateApply AuditAction = "update_apply"
)

// AuditEntry is a single append-only record in the "audits" table.
type AuditEntry struct {
	// ActorUserID is nil for unauthenticated actions (e.g. a login attempt
	// with an unknown username).
	ActorUserID *int64

	Action AuditAction

	// Details holds action-specific data, stored as JSONB.
	Details map[string]any

	CreatedAt time.Time
}

// Actor is a convenience constructor for a non-nil actor id.
func Actor(userID int64) *int64 {
	return &userID
}
