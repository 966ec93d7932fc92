// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Taskdeck Authors

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same email already exists in the database.
	// The unique constraint on users.email is the authoritative guard, so the
	// check-then-insert race collapses into this error.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a query expected to match at least one
	// user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrTaskNotFound is returned when a query or update targets a task
	// (identified by id and user_id) that does not exist in the database.
	ErrTaskNotFound = errors.New("task was not found")

	// ErrNoFieldsToUpdate is returned when a partial task update carries no
	// non-nil fields at all.
	ErrNoFieldsToUpdate = errors.New("no fields to update")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("error scanning row")

	// ErrScanningRows is returned when iterating or scanning a result set fails.
	ErrScanningRows = errors.New("error scanning rows")
)

// ErrLocalSessionNotFound is returned by the client session store when no
// session (or a malformed one) is present in the local database.
var ErrLocalSessionNotFound = errors.New("local session not found")
