// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Taskdeck Authors

package service

import "errors"

var (
	// ErrInvalidDataProvided is returned when a request payload fails
	// validation before any storage access happens.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials is returned on any login failure, whether the
	// email is unknown or the password is wrong. Both cases intentionally
	// collapse into one error so responses cannot be used to probe which
	// emails are registered.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrEmailAlreadyTaken is returned when registration is attempted with
	// an email that already belongs to an account.
	ErrEmailAlreadyTaken = errors.New("email already taken")

	// ErrTokenCreationFailed is returned when signing a new JWT fails.
	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrTokenIsExpiredOrInvalid is returned for any token validation
	// failure: bad signature, wrong issuer, expired, or malformed.
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrTaskNotFound is returned when an operation targets a task that does
	// not exist or is owned by another user.
	ErrTaskNotFound = errors.New("task not found")
)
