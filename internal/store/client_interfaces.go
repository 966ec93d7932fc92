// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Taskdeck Authors

package store

import (
	"context"

	"github.com/taskdeck/taskdeck/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// SessionStore persists the client's authenticated session between runs.
type SessionStore interface {
	// SaveSession writes the session to local storage, replacing any
	// previously saved one.
	SaveSession(ctx context.Context, session models.Session) error

	// LoadSession reads the persisted session. Returns
	// ErrLocalSessionNotFound when nothing is stored or the stored value
	// cannot be decoded.
	LoadSession(ctx context.Context) (models.Session, error)

	// ClearSession removes any persisted session. Clearing an empty store
	// is not an error.
	ClearSession(ctx context.Context) error
}
