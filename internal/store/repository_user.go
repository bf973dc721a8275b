// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/peninsula/internal/logger"
	"github.com/MKhiriev/peninsula/models"
	"github.com/jackc/pgerrcode"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var user models.User
	err := row.Scan(&user.ID, &user.Username, &user.PasswordHash, &user.Role, &user.CreatedAt)
	return user, err
}

// CreateUser persists a new user and returns the stored row.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrUsernameAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	created, err := scanUser(r.db.QueryRowContext(ctx, createUser, user.Username, user.PasswordHash, string(user.Role)))
	if err != nil {
		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			log.Debug().Str("func", "*userRepository.CreateUser").Str("username", user.Username).Msg("username already exists")
			return models.User{}, ErrUsernameAlreadyExists
		default:
			log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return created, nil
}

// FindUserByUsername retrieves the user with exactly the given username.
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByUsername", findUserByUsername, username)
}

// FindUserByID retrieves the user with the given id.
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByID", findUserByID, userID)
}

func (r *userRepository) findOne(ctx context.Context, funcName, query string, arg any) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := scanUser(r.db.QueryRowContext(ctx, query, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("func", funcName).Msg("error querying user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user, nil
}

// ListUsers returns the whole directory ordered by id. An empty directory
// yields an empty, non-nil slice.
func (r *userRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listUsers)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error querying users")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error scanning user row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		users = append(users, user)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error iterating user rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return users, nil
}

// UpdateUser applies a partial update built with squirrel and returns the
// updated row.
func (r *userRepository) UpdateUser(ctx context.Context, update models.UserUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateUserQuery(update)
	if err != nil {
		return models.User{}, err
	}

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "*userRepository.UpdateUser").Int64("user_id", update.ID).Msg("error updating user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return user, nil
}

// DeleteUser deletes the user row. refresh_tokens rows cascade and
// audits.actor_user_id is set to NULL by the schema.
func (r *userRepository) DeleteUser(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	var deletedID int64
	if err := r.db.QueryRowContext(ctx, deleteUser, userID).Scan(&deletedID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrUserNotFound
		}
		log.Err(err).Str("func", "*userRepository.DeleteUser").Int64("user_id", userID).Msg("error deleting user")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
