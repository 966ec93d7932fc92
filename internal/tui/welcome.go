package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type welcomeModel struct {
	items  []string
	idx    int
	notice string
}

func newWelcomeModel() welcomeModel {
	return welcomeModel{items: []string{"Sign in", "Create account"}}
}

func (m welcomeModel) View() string {
	out := "taskdeck\n\n"
	if m.notice != "" {
		out += m.notice + "\n\n"
	}
	out += "What would you like to do?\n\n"
	for i, item := range m.items {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		out += cursor + item + "\n"
	}
	out += "\n" + helpStyle.Render("enter select  ↑/↓ move  q quit")
	return out
}

func (m appModel) updateWelcome(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.welcome.idx > 0 {
			m.welcome.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.welcome.idx < len(m.welcome.items)-1 {
			m.welcome.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		m.welcome.notice = ""
		if m.welcome.idx == 0 {
			m.login = newLoginModel()
			m.location = screenLogin
		} else {
			m.register = newRegisterModel()
			m.location = screenRegister
		}
	case key.Matches(keyMsg, keys.quit):
		m.quitErr = ErrUserQuit
		return m, tea.Quit
	}
	return m, nil
}
