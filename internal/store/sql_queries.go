// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/peninsula/models"
)

const (
	userColumns = `id, username, password_hash, role, created_at`

	createUser = `INSERT INTO users (username, password_hash, role)
    VALUES ($1, $2, $3)
    RETURNING ` + userColumns + `;`

	findUserByUsername = `SELECT ` + userColumns + `
    FROM users
    WHERE username = $1;`

	findUserByID = `SELECT ` + userColumns + `
    FROM users
    WHERE id = $1;`

	listUsers = `SELECT ` + userColumns + `
    FROM users
    ORDER BY id;`

	deleteUser = `DELETE FROM users
    WHERE id = $1
    RETURNING id;`

	saveRefreshToken = `INSERT INTO refresh_tokens (user_id, token, expires_at)
    VALUES ($1, $2, $3);`

	existsActiveRefreshToken = `SELECT EXISTS (
        SELECT 1 FROM refresh_tokens
        WHERE token = $1 AND expires_at > NOW()
    );`

	deleteExpiredRefreshTokens = `DELETE FROM refresh_tokens
    WHERE expires_at <= NOW();`

	saveAudit = `INSERT INTO audits (actor_user_id, action, details)
    VALUES ($1, $2, $3);`
)

// psql is the squirrel builder configured for PostgreSQL placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildUpdateUserQuery builds "UPDATE users SET ... WHERE id = ? RETURNING ..."
// from the non-nil fields of update.
func buildUpdateUserQuery(update models.UserUpdate) (string, []any, error) {
	if update.IsEmpty() {
		return "", nil, ErrNothingToUpdate
	}

	builder := psql.Update(models.User{}.TableName())

	if update.PasswordHash != nil {
		builder = builder.Set("password_hash", *update.PasswordHash)
	}

	if update.Role != nil {
		builder = builder.Set("role", string(*update.Role))
	}

	query, args, err := builder.
		Where(sq.Eq{"id": update.ID}).
		Suffix("RETURNING " + userColumns).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
