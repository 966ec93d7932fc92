// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Taskdeck Authors

package models

import "time"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the opaque unique identifier of the user (UUID string).
	// Generated server-side at registration time.
	ID string `json:"id"`

	// Email is the unique address the user authenticates with.
	Email string `json:"email"`

	// Name is the display name of the user.
	// It is non-sensitive and may be shown in UI.
	Name string `json:"name"`

	// Phone is an optional contact number. Empty when not provided.
	Phone string `json:"phone,omitempty"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// It is never serialized into any outward-facing response.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at,omitzero"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Sanitized returns a copy of the user safe to embed in API responses:
// identity attributes only, with the password hash zeroed out.
func (u User) Sanitized() User {
	u.PasswordHash = ""
	return u
}
