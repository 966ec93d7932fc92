// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Taskdeck Authors

// Package app contains shared application-layer constants used across the
// taskdeck server handlers and the client error mapping.
//
// All Msg* constants are stable, human-readable message strings written into
// HTTP response bodies. The client matches on them when translating transport
// errors back into business errors, so their wording must not drift.
package app

const (
	// MsgInvalidDataProvided is returned when a request body cannot be
	// decoded or fails validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidCredentials is returned on any login failure. Unknown email
	// and wrong password deliberately share one message.
	MsgInvalidCredentials = "invalid credentials"

	// MsgEmailAlreadyTaken is returned when registration is attempted with
	// an email that already belongs to an account.
	MsgEmailAlreadyTaken = "email already taken"

	// MsgTokenIsExpiredOrInvalid is returned when a bearer token is either
	// expired or cannot be verified.
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgTaskNotFound is returned when an operation targets a task that does
	// not exist or belongs to another user.
	MsgTaskNotFound = "task not found"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "Internal Server Error"
)
