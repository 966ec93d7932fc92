// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Taskdeck Authors

// Package adapter provides transport-layer abstractions for communicating
// with the Taskdeck server.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// service layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/taskdeck/taskdeck/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the Taskdeck
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel
// values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests. It should be called immediately
	// after a successful Register or Login, or when restoring a persisted
	// session.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register sends a registration request. On success it stores the
	// returned bearer token via SetToken and returns the new session.
	Register(ctx context.Context, data models.RegisterData) (models.Session, error)

	// Login authenticates with the server. On success it stores the returned
	// bearer token via SetToken and returns the new session. Returns
	// [ErrUnauthorized] (wrapped) when the credentials are rejected.
	Login(ctx context.Context, data models.LoginData) (models.Session, error)

	// VerifySession checks whether the stored token is still accepted by the
	// server. Returns [ErrUnauthorized] (wrapped) when it is not.
	VerifySession(ctx context.Context) error

	// CreateTask creates a task owned by the authenticated user.
	CreateTask(ctx context.Context, task models.Task) (models.Task, error)

	// ListTasks fetches the authenticated user's tasks matching the filter.
	ListTasks(ctx context.Context, filter models.TaskFilter) ([]models.Task, error)

	// UpdateTask applies a partial update to one of the user's tasks.
	UpdateTask(ctx context.Context, update models.TaskUpdate) (models.Task, error)

	// DeleteTask removes one of the user's tasks.
	DeleteTask(ctx context.Context, id string) error
}
