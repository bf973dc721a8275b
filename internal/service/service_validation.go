// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/peninsula/internal/logger"
	"github.com/MKhiriev/peninsula/internal/validators"
	"github.com/MKhiriev/peninsula/models"
)

// AuthValidationService rejects malformed login payloads before the wrapped
// AuthService touches the store or the audit log.
type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService() AuthServiceWrapper {
	return &AuthValidationService{
		validator: validators.NewRequestValidator(),
	}
}

func (v *AuthValidationService) Login(ctx context.Context, request models.LoginRequest) (models.TokenPair, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("login request validation failed")
		return models.TokenPair{}, ErrInvalidPayload.Wrap(err)
	}
	return v.inner.Login(ctx, request)
}

func (v *AuthValidationService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	return v.inner.Refresh(ctx, refreshToken)
}

func (v *AuthValidationService) ParseAccessToken(ctx context.Context, accessToken string) (*models.AccessClaims, error) {
	return v.inner.ParseAccessToken(ctx, accessToken)
}

func (v *AuthValidationService) Wrap(inner AuthService) AuthService {
	v.inner = inner
	return v
}

// UserValidationService rejects malformed user directory payloads before the
// wrapped UserService touches the store or the audit log.
type UserValidationService struct {
	inner     UserService
	validator validators.Validator
}

func NewUserValidationService() UserServiceWrapper {
	return &UserValidationService{
		validator: validators.NewRequestValidator(),
	}
}

func (v *UserValidationService) ListUsers(ctx context.Context, actorID int64) ([]models.User, error) {
	return v.inner.ListUsers(ctx, actorID)
}

func (v *UserValidationService) CreateUser(ctx context.Context, actorID int64, request models.CreateUserRequest) (models.User, error) {
	if err := v.validate(ctx, request); err != nil {
		return models.User{}, err
	}
	return v.inner.CreateUser(ctx, actorID, request)
}

func (v *UserValidationService) UpdateUser(ctx context.Context, actorID int64, request models.UpdateUserRequest) (models.User, error) {
	if err := v.validate(ctx, request); err != nil {
		return models.User{}, err
	}
	return v.inner.UpdateUser(ctx, actorID, request)
}

func (v *UserValidationService) DeleteUser(ctx context.Context, actorID int64, request models.DeleteUserRequest) error {
	if err := v.validate(ctx, request); err != nil {
		return err
	}
	return v.inner.DeleteUser(ctx, actorID, request)
}

// EnsureAdmin applies the login rules to the bootstrap credentials, so the
// created admin is always able to log in.
func (v *UserValidationService) EnsureAdmin(ctx context.Context, username, password string) (models.User, bool, error) {
	if err := v.validate(ctx, models.LoginRequest{Username: username, Password: password}); err != nil {
		return models.User{}, false, err
	}
	return v.inner.EnsureAdmin(ctx, username, password)
}

func (v *UserValidationService) Wrap(inner UserService) UserService {
	v.inner = inner
	return v
}

func (v *UserValidationService) validate(ctx context.Context, request any) error {
	if err := v.validator.Validate(ctx, request); err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("user request validation failed")
		return ErrInvalidPayload.Wrap(err)
	}
	return nil
}
