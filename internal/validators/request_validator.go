// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/MKhiriev/peninsula/models"
)

const (
	FieldUsername = "username"
	FieldPassword = "password"
	FieldRole     = "role"
	FieldID       = "id"
)

const (
	MinUsernameLength = 3
	MinPasswordLength = 6

	// MaxPasswordBytes is the bcrypt input limit. It counts bytes, not
	// runes.
	MaxPasswordBytes = 72
)

var (
	usernameRules = []validation.Rule{validation.Required, validation.Length(MinUsernameLength, 0)}
	passwordRules = []validation.Rule{validation.Required, validation.Length(MinPasswordLength, 0), passwordBytesRule}
	roleRules     = []validation.Rule{validation.In(models.RoleAdmin, models.RoleUser)}
	idRules       = []validation.Rule{validation.Required, validation.Min(int64(1))}

	passwordBytesRule = validation.By(func(value interface{}) error {
		v, _ := validation.Indirect(value)
		s, _ := v.(string)
		if len(s) > MaxPasswordBytes {
			return errors.New("must be no more than 72 bytes")
		}
		return nil
	})
)

// RequestValidator validates the JSON payloads of the auth and user
// directory endpoints with ozzo-validation rules.
type RequestValidator struct {
}

func NewRequestValidator() Validator {
	return &RequestValidator{}
}

// Validate checks obj, optionally restricted to the named fields. Rule
// violations are reported wrapped in ErrInvalidPayload.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.LoginRequest:
		return v.validateLoginRequest(value, fields...)
	case *models.LoginRequest:
		return v.validateLoginRequest(*value, fields...)

	case models.CreateUserRequest:
		return v.validateCreateUserRequest(value, fields...)
	case *models.CreateUserRequest:
		return v.validateCreateUserRequest(*value, fields...)

	case models.UpdateUserRequest:
		return v.validateUpdateUserRequest(value, fields...)
	case *models.UpdateUserRequest:
		return v.validateUpdateUserRequest(*value, fields...)

	case models.DeleteUserRequest:
		return v.validateDeleteUserRequest(value, fields...)
	case *models.DeleteUserRequest:
		return v.validateDeleteUserRequest(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateLoginRequest(request models.LoginRequest, fields ...string) error {
	return fieldRules{
		FieldUsername: func() error { return validation.Validate(request.Username, usernameRules...) },
		FieldPassword: func() error { return validation.Validate(request.Password, passwordRules...) },
	}.validate([]string{FieldUsername, FieldPassword}, fields)
}

// An empty role is accepted and defaulted to "user" by the service.
func (v *RequestValidator) validateCreateUserRequest(request models.CreateUserRequest, fields ...string) error {
	return fieldRules{
		FieldUsername: func() error { return validation.Validate(request.Username, usernameRules...) },
		FieldPassword: func() error { return validation.Validate(request.Password, passwordRules...) },
		FieldRole:     func() error { return validation.Validate(request.Role, roleRules...) },
	}.validate([]string{FieldUsername, FieldPassword, FieldRole}, fields)
}

// Password and role are optional, but when present they follow the same
// rules as on creation.
func (v *RequestValidator) validateUpdateUserRequest(request models.UpdateUserRequest, fields ...string) error {
	return fieldRules{
		FieldID: func() error { return validation.Validate(request.ID, idRules...) },
		FieldPassword: func() error {
			return validation.Validate(request.Password, validation.NilOrNotEmpty, validation.Length(MinPasswordLength, 0), passwordBytesRule)
		},
		FieldRole: func() error {
			return validation.Validate(request.Role, append([]validation.Rule{validation.NilOrNotEmpty}, roleRules...)...)
		},
	}.validate([]string{FieldID, FieldPassword, FieldRole}, fields)
}

func (v *RequestValidator) validateDeleteUserRequest(request models.DeleteUserRequest, fields ...string) error {
	return fieldRules{
		FieldID: func() error { return validation.Validate(request.ID, idRules...) },
	}.validate([]string{FieldID}, fields)
}

// fieldRules maps a field name to the check of that field.
type fieldRules map[string]func() error

func (f fieldRules) validate(defaults, fields []string) error {
	if len(fields) == 0 {
		fields = defaults
	}

	errs := validation.Errors{}
	for _, name := range fields {
		check, ok := f[name]
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownField, name)
		}
		errs[name] = check()
	}

	if err := errs.Filter(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}

	return nil
}
