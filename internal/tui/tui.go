// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Taskdeck Authors

// Package tui implements the terminal user interface of the taskdeck client.
//
// The interface is a single Bubble Tea model ([appModel]) that routes between
// screens. Screen access is guarded by the authentication state: protected
// screens require a live session, and the auth screens (welcome, login,
// register) are unreachable while signed in. While the cached session is
// still being restored every location renders a loading placeholder, so an
// expired cache never flashes protected content.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/taskdeck/taskdeck/internal/logger"
	"github.com/taskdeck/taskdeck/internal/service"
)

// ErrUserQuit reports that the user closed the program from the UI.
var ErrUserQuit = errors.New("user quit")

// SessionExpiredMsg can be sent into the running program from outside (the
// background session check job) to force a transition to the sign-in flow.
type SessionExpiredMsg struct{}

// TUI builds runnable Bubble Tea programs over the client services.
type TUI struct {
	services *service.ClientServices
	logger   *logger.Logger

	// onAuthChange, when set, fires after every sign-in and sign-out so the
	// caller can start or stop session-bound background work.
	onAuthChange func(authenticated bool)
}

func New(services *service.ClientServices, log *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, errors.New("tui: services are required")
	}
	return &TUI{services: services, logger: log}, nil
}

// SetAuthChangeHook registers a callback invoked on sign-in (true) and
// sign-out (false). Must be called before NewProgram.
func (t *TUI) SetAuthChangeHook(fn func(authenticated bool)) {
	t.onAuthChange = fn
}

// NewProgram constructs the Bubble Tea program. The program starts in the
// loading state and restores the cached session as its first command.
func (t *TUI) NewProgram(ctx context.Context) *tea.Program {
	model := newAppModel(ctx, t.services, t.onAuthChange)
	return tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
}

// QuitError reports the error the final model quit with, if any. A user-
// initiated quit carries [ErrUserQuit].
func QuitError(m tea.Model) error {
	if app, ok := m.(appModel); ok {
		return app.quitErr
	}
	return nil
}
