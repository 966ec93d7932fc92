// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Taskdeck Authors

package models

import "time"

// Session is the client-held proof of authentication: the signed token
// together with the cached user record it was issued for. It is persisted
// in the client's local storage and restored at startup so the user is not
// forced to log in again after every restart.
type Session struct {
	// Token is the compact signed JWT received from the server.
	Token string `json:"token"`

	// User is the last-known sanitized user record.
	User User `json:"user"`

	// SavedAt records when the session was written locally.
	SavedAt time.Time `json:"saved_at"`
}
