// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Taskdeck Authors

package tui

import (
	"errors"
	"strings"

	"github.com/taskdeck/taskdeck/internal/service"
)

// humanizeTransportError rewrites low-level transport failures into a
// message a user can act on. Application errors pass through as-is.
func humanizeTransportError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		return "Invalid email or password"
	case errors.Is(err, service.ErrEmailAlreadyTaken):
		return "This email is already registered"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Network unavailable or server unreachable"
	}

	return err.Error()
}
