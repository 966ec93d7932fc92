package client

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/taskdeck/taskdeck/internal/logger"
	"github.com/taskdeck/taskdeck/internal/service"
	"github.com/taskdeck/taskdeck/internal/tui"
)

// App ties the terminal UI and the client services together for one run of
// the program.
type App struct {
	services        *service.ClientServices
	ui              *tui.TUI
	logger          *logger.Logger
	sessionInterval time.Duration
}

func NewApp(services *service.ClientServices, ui *tui.TUI, sessionInterval time.Duration, log *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errors.New("client: services and ui are required")
	}
	return &App{
		services:        services,
		ui:              ui,
		logger:          log,
		sessionInterval: sessionInterval,
	}, nil
}

// Run blocks until the user quits or the UI fails. The session check job
// runs only while a user is signed in; when it detects a rejected token it
// pushes the expiry into the running program.
func (a *App) Run(ctx context.Context) error {
	// The hook has to be registered before the program is built, but it only
	// fires once the program is running, so capturing the variable is safe.
	var program *tea.Program
	a.ui.SetAuthChangeHook(func(authenticated bool) {
		if !authenticated {
			a.services.SessionJob.Stop()
			return
		}
		a.services.SessionJob.Start(ctx, a.sessionInterval, func() {
			program.Send(tui.SessionExpiredMsg{})
		})
	})
	program = a.ui.NewProgram(ctx)
	defer a.services.SessionJob.Stop()

	final, err := program.Run()
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	}

	if quitErr := tui.QuitError(final); quitErr != nil && !errors.Is(quitErr, tui.ErrUserQuit) {
		return quitErr
	}
	return nil
}
