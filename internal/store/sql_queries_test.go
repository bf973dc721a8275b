// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"testing"

	"github.com/MKhiriev/peninsula/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildUpdateUserQuery(t *testing.T) {
	hash := "bcrypt-hash"
	admin := models.RoleAdmin

	tests := []struct {
		name      string
		update    models.UserUpdate
		wantQuery string
		wantArgs  []any
		wantErr   error
	}{
		{
			name:      "password only",
			update:    models.UserUpdate{ID: 1, PasswordHash: &hash},
			wantQuery: "UPDATE users SET password_hash = $1 WHERE id = $2 RETURNING " + userColumns,
			wantArgs:  []any{hash, int64(1)},
		},
		{
			name:      "role only",
			update:    models.UserUpdate{ID: 2, Role: &admin},
			wantQuery: "UPDATE users SET role = $1 WHERE id = $2 RETURNING " + userColumns,
			wantArgs:  []any{"admin", int64(2)},
		},
		{
			name:      "password and role",
			update:    models.UserUpdate{ID: 3, PasswordHash: &hash, Role: &admin},
			wantQuery: "UPDATE users SET password_hash = $1, role = $2 WHERE id = $3 RETURNING " + userColumns,
			wantArgs:  []any{hash, "admin", int64(3)},
		},
		{
			name:    "no changes",
			update:  models.UserUpdate{ID: 4},
			wantErr: ErrNothingToUpdate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildUpdateUserQuery(tt.update)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantQuery, query)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}
