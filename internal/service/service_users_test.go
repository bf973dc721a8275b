// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/peninsula/internal/apperr"
	"github.com/MKhiriev/peninsula/internal/logger"
	"github.com/MKhiriev/peninsula/internal/mock"
	"github.com/MKhiriev/peninsula/internal/store"
	"github.com/MKhiriev/peninsula/models"
)

const adminID int64 = 1

func newTestUserSvc(t *testing.T, ctrl *gomock.Controller) (UserService, *mock.MockUserRepository, *mock.MockAuditRepository) {
	t.Helper()
	users := mock.NewMockUserRepository(ctrl)
	audits := mock.NewMockAuditRepository(ctrl)
	svc := NewUserService(users, NewAuditService(audits, logger.Nop()), logger.Nop())
	return svc, users, audits
}

func ptr[T any](v T) *T {
	return &v
}

// ── ListUsers ────────────────────────────────────────────────────────────────

func TestUserService_ListUsers(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, audits := newTestUserSvc(t, ctrl)
	ctx := context.Background()

	want := []models.User{{ID: 1, Username: "admin", Role: models.RoleAdmin}, {ID: 2, Username: "bob", Role: models.RoleUser}}
	users.EXPECT().ListUsers(ctx).Return(want, nil)
	audits.EXPECT().SaveAudit(gomock.Any(), models.AuditEntry{
		ActorUserID: models.Actor(adminID),
		Action:      models.ActionUsersList,
		Details:     map[string]any{},
	}).Return(nil)

	got, err := svc.ListUsers(ctx, adminID)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestUserService_ListUsers_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, _ := newTestUserSvc(t, ctrl)

	users.EXPECT().ListUsers(gomock.Any()).Return(nil, errors.New("boom"))

	_, err := svc.ListUsers(context.Background(), adminID)
	require.Error(t, err)
}

// ── CreateUser ───────────────────────────────────────────────────────────────

func TestUserService_CreateUser_DefaultsRoleAndHashesPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, audits := newTestUserSvc(t, ctrl)
	ctx := context.Background()

	users.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, u models.User) (models.User, error) {
		assert.Equal(t, "dave", u.Username)
		assert.Equal(t, models.RoleUser, u.Role)
		assert.NotEqual(t, "hunter22", u.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("hunter22")))

		cost, err := bcrypt.Cost([]byte(u.PasswordHash))
		assert.NoError(t, err)
		assert.Equal(t, PasswordHashCost, cost)

		u.ID = 5
		return u, nil
	})
	audits.EXPECT().SaveAudit(gomock.Any(), models.AuditEntry{
		ActorUserID: models.Actor(adminID),
		Action:      models.ActionUserCreated,
		Details:     map[string]any{"username": "dave", "role": models.RoleUser},
	}).Return(nil)

	created, err := svc.CreateUser(ctx, adminID, models.CreateUserRequest{Username: "dave", Password: "hunter22"})
	require.NoError(t, err)
	assert.Equal(t, int64(5), created.ID)
}

func TestUserService_CreateUser_Duplicate(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, _ := newTestUserSvc(t, ctrl)

	users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrUsernameAlreadyExists)

	_, err := svc.CreateUser(context.Background(), adminID, models.CreateUserRequest{
		Username: "admin", Password: "secret1", Role: models.RoleAdmin,
	})
	assert.True(t, errors.Is(err, ErrUserExists))
}

func TestUserService_PasswordOverBcryptLimit(t *testing.T) {
	tests := []struct {
		name     string
		password string
	}{
		{name: "73 ascii bytes", password: strings.Repeat("x", 73)},
		{name: "37 two-byte runes", password: strings.Repeat("é", 37)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, users, _ := newTestUserSvc(t, ctrl)
			ctx := context.Background()
			users.EXPECT().FindUserByUsername(ctx, "admin").Return(models.User{}, store.ErrUserNotFound)

			// rejected before anything is written
			_, err := svc.CreateUser(ctx, adminID, models.CreateUserRequest{Username: "alice", Password: tt.password})
			assert.ErrorIs(t, err, ErrInvalidPayload)

			_, err = svc.UpdateUser(ctx, adminID, models.UpdateUserRequest{ID: 2, Password: &tt.password})
			assert.ErrorIs(t, err, ErrInvalidPayload)

			_, _, err = svc.EnsureAdmin(ctx, "admin", tt.password)
			assert.ErrorIs(t, err, ErrInvalidPayload)
		})
	}
}

func TestUserValidationService_PasswordOverBcryptLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner, _, _ := newTestUserSvc(t, ctrl)
	svc := NewUserValidationService().Wrap(inner)

	_, err := svc.CreateUser(context.Background(), adminID, models.CreateUserRequest{
		Username: "alice",
		Password: strings.Repeat("x", 73),
	})
	assert.ErrorIs(t, err, ErrInvalidPayload)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

// ── UpdateUser ───────────────────────────────────────────────────────────────

func TestUserService_UpdateUser_NoUpdates(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestUserSvc(t, ctrl)

	_, err := svc.UpdateUser(context.Background(), adminID, models.UpdateUserRequest{ID: 2})
	assert.True(t, errors.Is(err, ErrNoUpdates))
}

func TestUserService_UpdateUser_RoleOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, audits := newTestUserSvc(t, ctrl)
	ctx := context.Background()

	users.EXPECT().UpdateUser(ctx, models.UserUpdate{ID: 2, Role: ptr(models.RoleAdmin)}).
		Return(models.User{ID: 2, Username: "bob", Role: models.RoleAdmin}, nil)
	audits.EXPECT().SaveAudit(gomock.Any(), models.AuditEntry{
		ActorUserID: models.Actor(adminID),
		Action:      models.ActionUserUpdated,
		Details:     map[string]any{"id": int64(2), "role": models.RoleAdmin},
	}).Return(nil)

	updated, err := svc.UpdateUser(ctx, adminID, models.UpdateUserRequest{ID: 2, Role: ptr(models.RoleAdmin)})
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, updated.Role)
}

func TestUserService_UpdateUser_PasswordOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, audits := newTestUserSvc(t, ctrl)
	ctx := context.Background()

	users.EXPECT().UpdateUser(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, u models.UserUpdate) (models.User, error) {
		assert.Nil(t, u.Role)
		require.NotNil(t, u.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(*u.PasswordHash), []byte("new-password")))
		return models.User{ID: 2, Username: "bob", Role: models.RoleUser}, nil
	})
	audits.EXPECT().SaveAudit(gomock.Any(), models.AuditEntry{
		ActorUserID: models.Actor(adminID),
		Action:      models.ActionUserUpdated,
		Details:     map[string]any{"id": int64(2), "role": nil},
	}).Return(nil)

	_, err := svc.UpdateUser(ctx, adminID, models.UpdateUserRequest{ID: 2, Password: ptr("new-password")})
	require.NoError(t, err)
}

func TestUserService_UpdateUser_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, _ := newTestUserSvc(t, ctrl)

	users.EXPECT().UpdateUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrUserNotFound)

	_, err := svc.UpdateUser(context.Background(), adminID, models.UpdateUserRequest{ID: 99, Role: ptr(models.RoleUser)})
	assert.True(t, errors.Is(err, ErrNotFound))
}

// ── DeleteUser ───────────────────────────────────────────────────────────────

func TestUserService_DeleteUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, audits := newTestUserSvc(t, ctrl)
	ctx := context.Background()

	users.EXPECT().DeleteUser(ctx, int64(2)).Return(nil)
	audits.EXPECT().SaveAudit(gomock.Any(), models.AuditEntry{
		ActorUserID: models.Actor(adminID),
		Action:      models.ActionUserDeleted,
		Details:     map[string]any{"id": int64(2)},
	}).Return(nil)

	require.NoError(t, svc.DeleteUser(ctx, adminID, models.DeleteUserRequest{ID: 2}))
}

func TestUserService_DeleteUser_Self(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestUserSvc(t, ctrl)

	err := svc.DeleteUser(context.Background(), adminID, models.DeleteUserRequest{ID: adminID})
	assert.True(t, errors.Is(err, ErrCannotDeleteSelf))
}

func TestUserService_DeleteUser_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, _ := newTestUserSvc(t, ctrl)

	users.EXPECT().DeleteUser(gomock.Any(), int64(42)).Return(store.ErrUserNotFound)

	err := svc.DeleteUser(context.Background(), adminID, models.DeleteUserRequest{ID: 42})
	assert.True(t, errors.Is(err, ErrNotFound))
}

// ── EnsureAdmin ──────────────────────────────────────────────────────────────

func TestUserService_EnsureAdmin(t *testing.T) {
	existing := models.User{ID: 1, Username: "admin", Role: models.RoleAdmin}

	tests := []struct {
		name        string
		setup       func(users *mock.MockUserRepository)
		wantCreated bool
		wantErr     bool
	}{
		{
			name: "already exists",
			setup: func(users *mock.MockUserRepository) {
				users.EXPECT().FindUserByUsername(gomock.Any(), "admin").Return(existing, nil)
			},
		},
		{
			name: "created",
			setup: func(users *mock.MockUserRepository) {
				users.EXPECT().FindUserByUsername(gomock.Any(), "admin").Return(models.User{}, store.ErrUserNotFound)
				users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u models.User) (models.User, error) {
					assert.Equal(t, models.RoleAdmin, u.Role)
					u.ID = 1
					return u, nil
				})
			},
			wantCreated: true,
		},
		{
			name: "lost the race",
			setup: func(users *mock.MockUserRepository) {
				gomock.InOrder(
					users.EXPECT().FindUserByUsername(gomock.Any(), "admin").Return(models.User{}, store.ErrUserNotFound),
					users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrUsernameAlreadyExists),
					users.EXPECT().FindUserByUsername(gomock.Any(), "admin").Return(existing, nil),
				)
			},
		},
		{
			name: "lookup failure",
			setup: func(users *mock.MockUserRepository) {
				users.EXPECT().FindUserByUsername(gomock.Any(), "admin").Return(models.User{}, errors.New("boom"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, users, _ := newTestUserSvc(t, ctrl)
			tt.setup(users)

			user, created, err := svc.EnsureAdmin(context.Background(), "admin", "admin123")
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantCreated, created)
			assert.Equal(t, int64(1), user.ID)
		})
	}
}
