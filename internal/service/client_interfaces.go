// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Taskdeck Authors

package service

import (
	"context"
	"time"

	"github.com/taskdeck/taskdeck/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientAuthService defines the client-side contract for account access and
// the locally cached session.
type ClientAuthService interface {
	// Register creates a new account on the server and caches the returned
	// session locally. Returns the fresh session or an error if the server
	// call or the local save fails.
	Register(ctx context.Context, data models.RegisterData) (models.Session, error)

	// Login authenticates against the server and caches the returned session
	// locally. Unknown email and wrong password surface as the same
	// ErrInvalidCredentials.
	Login(ctx context.Context, data models.LoginData) (models.Session, error)

	// RestoreSession loads the locally cached session, checks that its token
	// has not expired, and installs the token on the server adapter. An
	// absent, malformed, or expired cache returns
	// store.ErrLocalSessionNotFound; the expired cache is cleared first.
	RestoreSession(ctx context.Context) (models.Session, error)

	// Logout clears the locally cached session and drops the adapter token.
	// Clearing an already empty cache is not an error.
	Logout(ctx context.Context) error
}

// ClientTaskService defines the client-side contract for working with the
// user's tasks through the server.
type ClientTaskService interface {
	// Create sends a new task to the server and returns the stored record
	// with its server-assigned ID and timestamps.
	Create(ctx context.Context, task models.Task) (models.Task, error)

	// List fetches the tasks matching filter, newest first.
	List(ctx context.Context, filter models.TaskFilter) ([]models.Task, error)

	// ListBuckets fetches the tasks matching filter and groups the pending
	// ones by due date into Today, This week, Upcoming and Someday buckets.
	// Completed tasks land in a trailing Completed bucket.
	ListBuckets(ctx context.Context, filter models.TaskFilter) ([]models.TaskBucket, error)

	// Update applies a partial update and returns the updated record.
	Update(ctx context.Context, update models.TaskUpdate) (models.Task, error)

	// Complete marks the task as completed.
	Complete(ctx context.Context, id string) (models.Task, error)

	// Delete removes the task permanently.
	Delete(ctx context.Context, id string) error
}

// SessionCheckJob defines the contract for a background worker that
// periodically asks the server whether the cached session is still valid.
type SessionCheckJob interface {
	// Start launches the background goroutine. It verifies the session every
	// interval, defaulting to 5 minutes if interval is zero or negative. Any
	// previously running job is stopped before the new one begins. When the
	// server rejects the session the onExpired callback fires once and the
	// job stops itself.
	Start(ctx context.Context, interval time.Duration, onExpired func())

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}
