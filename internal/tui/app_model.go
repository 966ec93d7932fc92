package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/taskdeck/taskdeck/internal/service"
	"github.com/taskdeck/taskdeck/models"
)

// authState is the session knowledge of the UI. It starts as authLoading
// while the cached session is being restored and only then settles into
// one of the two definite states.
type authState int

const (
	authLoading authState = iota
	authAuthenticated
	authUnauthenticated
)

type screen int

const (
	screenLoading screen = iota
	screenWelcome
	screenLogin
	screenRegister
	screenList
	screenDetail
	screenForm
)

// isAuthScreen reports whether s is part of the sign-in flow. Signed-in
// users are redirected away from these.
func isAuthScreen(s screen) bool {
	return s == screenWelcome || s == screenLogin || s == screenRegister
}

// isProtected reports whether s requires a live session.
func isProtected(s screen) bool {
	return s == screenList || s == screenDetail || s == screenForm
}

// guardScreen resolves the screen to render for a requested location given
// the current authentication state. While the state is still loading every
// location renders the loading placeholder, so protected content never
// flashes before an expired session is detected.
func guardScreen(state authState, location screen) screen {
	if state == authLoading {
		return screenLoading
	}
	if state == authUnauthenticated && isProtected(location) {
		return screenWelcome
	}
	if state == authAuthenticated && isAuthScreen(location) {
		return screenList
	}
	if location == screenLoading {
		if state == authAuthenticated {
			return screenList
		}
		return screenWelcome
	}
	return location
}

type appModel struct {
	ctx          context.Context
	services     *service.ClientServices
	onAuthChange func(authenticated bool)

	authState authState
	// location is the requested position; the rendered screen is always
	// guardScreen(authState, location).
	location screen

	session models.Session

	loading  loadingModel
	welcome  welcomeModel
	login    loginModel
	register registerModel
	list     listModel
	detail   detailModel
	form     taskFormModel

	showError     bool
	errorOverlay  errorOverlayModel
	showConfirm   bool
	confirm       confirmModel
	pendingDelete string

	quitErr error
}

func newAppModel(ctx context.Context, services *service.ClientServices, onAuthChange func(bool)) appModel {
	return appModel{
		ctx:          ctx,
		services:     services,
		onAuthChange: onAuthChange,
		authState:    authLoading,
		location:     screenList,
		loading:      newLoadingModel(),
		welcome:      newWelcomeModel(),
		login:        newLoginModel(),
		register:     newRegisterModel(),
		list:         newListModel(),
	}
}

// screen is the effective screen after applying the route guard.
func (m appModel) screen() screen {
	return guardScreen(m.authState, m.location)
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(m.loading.spinner.Tick, m.cmdRestoreSession())
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionRestoredMsg:
		if msg.err != nil {
			m.authState = authUnauthenticated
			return m, nil
		}
		m.session = msg.session
		m.authState = authAuthenticated
		m.notifyAuthChange(true)
		m.list.loading = true
		return m, m.cmdLoadTasks()

	case authDoneMsg:
		m.setSubmitting(false)
		m.session = msg.session
		m.authState = authAuthenticated
		m.notifyAuthChange(true)
		m.location = screenList
		m.list.loading = true
		return m, m.cmdLoadTasks()

	case authFailedMsg:
		m.setSubmitting(false)
		m.showErrorf(humanizeTransportError(msg.err))
		return m, nil

	case SessionExpiredMsg:
		if m.authState != authAuthenticated {
			return m, nil
		}
		m.authState = authUnauthenticated
		m.session = models.Session{}
		m.location = screenWelcome
		m.welcome.notice = "Session expired, please sign in again"
		m.notifyAuthChange(false)
		return m, m.cmdLogout()

	case loggedOutMsg:
		return m, nil

	case tasksLoadedMsg:
		m.list.loading = false
		if msg.err != nil {
			return m.handleTaskError(msg.err)
		}
		m.list.setBuckets(msg.buckets)
		return m, nil

	case taskSavedMsg:
		m.setSubmitting(false)
		if msg.err != nil {
			return m.handleTaskError(msg.err)
		}
		m.location = screenList
		m.list.loading = true
		return m, m.cmdLoadTasks()

	case taskDeletedMsg:
		if msg.err != nil {
			return m.handleTaskError(msg.err)
		}
		m.pendingDelete = ""
		m.location = screenList
		m.list.loading = true
		return m, m.cmdLoadTasks()

	case copiedMsg:
		m.detail.status = "Copied!"
		return m, cmdClearStatus()

	case clearStatusMsg:
		m.detail.status = ""
		return m, nil

	case spinner.TickMsg:
		if m.screen() == screenLoading {
			var cmd tea.Cmd
			m.loading.spinner, cmd = m.loading.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m, nil

	case tea.KeyMsg:
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showConfirm {
			if key.Matches(msg, keys.yes) {
				m.showConfirm = false
				if m.pendingDelete == "" {
					return m, nil
				}
				return m, m.cmdDeleteTask(m.pendingDelete)
			}
			if key.Matches(msg, keys.no) || key.Matches(msg, keys.esc) {
				m.showConfirm = false
				m.pendingDelete = ""
			}
			return m, nil
		}
	}

	switch m.screen() {
	case screenLoading:
		return m, nil
	case screenWelcome:
		return m.updateWelcome(msg)
	case screenLogin:
		return m.updateLogin(msg)
	case screenRegister:
		return m.updateRegister(msg)
	case screenList:
		return m.updateList(msg)
	case screenDetail:
		return m.updateDetail(msg)
	case screenForm:
		return m.updateForm(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	var body string
	switch m.screen() {
	case screenLoading:
		body = m.loading.View()
	case screenWelcome:
		body = m.welcome.View()
	case screenLogin:
		body = m.login.View()
	case screenRegister:
		body = m.register.View()
	case screenList:
		body = m.list.View()
	case screenDetail:
		body = m.detail.View()
	case screenForm:
		body = m.form.View()
	}

	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

func (m *appModel) setSubmitting(v bool) {
	m.login.submitting = v
	m.register.submitting = v
	m.form.submitting = v
}

func (m *appModel) notifyAuthChange(authenticated bool) {
	if m.onAuthChange != nil {
		m.onAuthChange(authenticated)
	}
}

// handleTaskError downgrades an expired session to the sign-in flow and
// shows every other error in the overlay.
func (m appModel) handleTaskError(err error) (tea.Model, tea.Cmd) {
	if errors.Is(err, service.ErrTokenIsExpiredOrInvalid) {
		return m.Update(SessionExpiredMsg{})
	}
	m.showErrorf(humanizeTransportError(err))
	return m, nil
}

// ── commands ─────────────────────────────────────────────────────────────────

func (m appModel) cmdRestoreSession() tea.Cmd {
	ctx := m.ctx
	auth := m.services.AuthService
	return func() tea.Msg {
		session, err := auth.RestoreSession(ctx)
		return sessionRestoredMsg{session: session, err: err}
	}
}

func (m appModel) cmdLogin(data models.LoginData) tea.Cmd {
	ctx := m.ctx
	auth := m.services.AuthService
	return func() tea.Msg {
		session, err := auth.Login(ctx, data)
		if err != nil {
			return authFailedMsg{err: err}
		}
		return authDoneMsg{session: session}
	}
}

func (m appModel) cmdRegister(data models.RegisterData) tea.Cmd {
	ctx := m.ctx
	auth := m.services.AuthService
	return func() tea.Msg {
		session, err := auth.Register(ctx, data)
		if err != nil {
			return authFailedMsg{err: err}
		}
		return authDoneMsg{session: session}
	}
}

func (m appModel) cmdLogout() tea.Cmd {
	ctx := m.ctx
	auth := m.services.AuthService
	return func() tea.Msg {
		_ = auth.Logout(ctx)
		return loggedOutMsg{}
	}
}

func (m appModel) cmdLoadTasks() tea.Cmd {
	ctx := m.ctx
	tasks := m.services.TaskService
	filter := m.list.filter
	return func() tea.Msg {
		buckets, err := tasks.ListBuckets(ctx, filter)
		return tasksLoadedMsg{buckets: buckets, err: err}
	}
}

func (m appModel) cmdCreateTask(task models.Task) tea.Cmd {
	ctx := m.ctx
	tasks := m.services.TaskService
	return func() tea.Msg {
		_, err := tasks.Create(ctx, task)
		return taskSavedMsg{err: err}
	}
}

func (m appModel) cmdUpdateTask(update models.TaskUpdate) tea.Cmd {
	ctx := m.ctx
	tasks := m.services.TaskService
	return func() tea.Msg {
		_, err := tasks.Update(ctx, update)
		return taskSavedMsg{err: err}
	}
}

func (m appModel) cmdCompleteTask(id string) tea.Cmd {
	ctx := m.ctx
	tasks := m.services.TaskService
	return func() tea.Msg {
		_, err := tasks.Complete(ctx, id)
		return taskSavedMsg{err: err}
	}
}

func (m appModel) cmdDeleteTask(id string) tea.Cmd {
	ctx := m.ctx
	tasks := m.services.TaskService
	return func() tea.Msg {
		err := tasks.Delete(ctx, id)
		return taskDeletedMsg{err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return taskSavedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
