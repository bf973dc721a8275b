// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameAlreadyExists is returned when an INSERT into "users" fails
	// with a unique_violation on the username column.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrUserNotFound is returned when a lookup, update or delete targets a
	// user id or username that is not present in the "users" table.
	ErrUserNotFound = errors.New("user was not found")

	// ErrNothingToUpdate is returned by UpdateUser when the update carries no
	// column changes.
	ErrNothingToUpdate = errors.New("nothing to update")
)

// Low-level database operation errors. These are wrapped by repository
// methods when a SQL-level operation fails before any domain logic can be
// applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a dynamic SQL query
	// fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
