// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Taskdeck Authors

package service

import (
	"errors"
	"strings"

	"github.com/taskdeck/taskdeck/internal/adapter"
	"github.com/taskdeck/taskdeck/internal/app"
)

// mapAdapterError translates the adapter's transport error into a service
// business error. Unmapped errors pass through unchanged.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		return ErrInvalidDataProvided

	case errors.Is(err, adapter.ErrUnauthorized):
		if msg == app.MsgInvalidCredentials {
			return ErrInvalidCredentials
		}
		return ErrTokenIsExpiredOrInvalid

	case errors.Is(err, adapter.ErrNotFound):
		return ErrTaskNotFound

	case errors.Is(err, adapter.ErrConflict):
		if msg == app.MsgEmailAlreadyTaken {
			return ErrEmailAlreadyTaken
		}
	}

	return err
}

// extractBody extracts the detail from a message of the form
// "client unauthorized: <detail>".
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
