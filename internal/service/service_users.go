// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/peninsula/internal/logger"
	"github.com/MKhiriev/peninsula/internal/store"
	"github.com/MKhiriev/peninsula/models"
)

// PasswordHashCost is the bcrypt cost used for every stored password.
const PasswordHashCost = 10

type userService struct {
	userRepository store.UserRepository
	audit          AuditService
	logger         *logger.Logger
}

func NewUserService(userRepository store.UserRepository, audit AuditService, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		audit:          audit,
		logger:         logger,
	}
}

func (u *userService) ListUsers(ctx context.Context, actorID int64) ([]models.User, error) {
	users, err := u.userRepository.ListUsers(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("listing users failed")
		return nil, fmt.Errorf("listing users failed: %w", err)
	}

	u.audit.Record(ctx, models.Actor(actorID), models.ActionUsersList, map[string]any{})
	return users, nil
}

// CreateUser hashes the password and inserts the user. An empty role
// defaults to models.RoleUser.
func (u *userService) CreateUser(ctx context.Context, actorID int64, request models.CreateUserRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	role := request.Role
	if role == "" {
		role = models.RoleUser
	}

	hash, err := hashPassword(request.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, err
	}

	created, err := u.userRepository.CreateUser(ctx, models.User{
		Username:     request.Username,
		PasswordHash: hash,
		Role:         role,
	})
	if err != nil {
		if errors.Is(err, store.ErrUsernameAlreadyExists) {
			return models.User{}, ErrUserExists.Wrap(err)
		}
		log.Err(err).Str("username", request.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	u.audit.Record(ctx, models.Actor(actorID), models.ActionUserCreated, map[string]any{
		"username": created.Username,
		"role":     created.Role,
	})
	return created, nil
}

// UpdateUser applies a new password and/or role. A request carrying neither
// fails with ErrNoUpdates before the store is touched.
func (u *userService) UpdateUser(ctx context.Context, actorID int64, request models.UpdateUserRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	update := models.UserUpdate{ID: request.ID, Role: request.Role}
	if request.Password != nil {
		hash, err := hashPassword(*request.Password)
		if err != nil {
			log.Err(err).Msg("password hashing failed")
			return models.User{}, err
		}
		update.PasswordHash = &hash
	}

	if update.IsEmpty() {
		return models.User{}, ErrNoUpdates
	}

	updated, err := u.userRepository.UpdateUser(ctx, update)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrUserNotFound):
			return models.User{}, ErrNotFound.Wrap(err)
		case errors.Is(err, store.ErrNothingToUpdate):
			return models.User{}, ErrNoUpdates.Wrap(err)
		}
		log.Err(err).Int64("id", request.ID).Msg("user update ended with error")
		return models.User{}, fmt.Errorf("user update ended with error: %w", err)
	}

	var role any
	if request.Role != nil {
		role = *request.Role
	}
	u.audit.Record(ctx, models.Actor(actorID), models.ActionUserUpdated, map[string]any{
		"id":   request.ID,
		"role": role,
	})
	return updated, nil
}

// DeleteUser removes a user. An admin cannot delete its own account.
func (u *userService) DeleteUser(ctx context.Context, actorID int64, request models.DeleteUserRequest) error {
	if request.ID == actorID {
		return ErrCannotDeleteSelf
	}

	if err := u.userRepository.DeleteUser(ctx, request.ID); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return ErrNotFound.Wrap(err)
		}
		logger.FromContext(ctx).Err(err).Int64("id", request.ID).Msg("user deletion ended with error")
		return fmt.Errorf("user deletion ended with error: %w", err)
	}

	u.audit.Record(ctx, models.Actor(actorID), models.ActionUserDeleted, map[string]any{"id": request.ID})
	return nil
}

// EnsureAdmin is used by the bootstrap command. An existing user with the
// same username is returned untouched, whatever its role.
func (u *userService) EnsureAdmin(ctx context.Context, username, password string) (models.User, bool, error) {
	existing, err := u.userRepository.FindUserByUsername(ctx, username)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, store.ErrUserNotFound) {
		return models.User{}, false, fmt.Errorf("user search by username failed: %w", err)
	}

	hash, err := hashPassword(password)
	if err != nil {
		return models.User{}, false, err
	}

	created, err := u.userRepository.CreateUser(ctx, models.User{
		Username:     username,
		PasswordHash: hash,
		Role:         models.RoleAdmin,
	})
	if err != nil {
		// Lost a race with a concurrent bootstrap.
		if errors.Is(err, store.ErrUsernameAlreadyExists) {
			existing, findErr := u.userRepository.FindUserByUsername(ctx, username)
			if findErr != nil {
				return models.User{}, false, fmt.Errorf("user search by username failed: %w", findErr)
			}
			return existing, false, nil
		}
		return models.User{}, false, fmt.Errorf("admin creation ended with error: %w", err)
	}

	return created, true, nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), PasswordHashCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", ErrInvalidPayload.Wrap(err)
	}
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrPasswordHashing, err)
	}
	return string(hash), nil
}
