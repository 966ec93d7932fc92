package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/taskdeck/taskdeck/models"
)

type detailModel struct {
	task   models.Task
	status string
}

func (m detailModel) View() string {
	task := m.task

	out := bucketStyle.Render(task.Title) + "\n\n"
	if task.Description != "" {
		out += task.Description + "\n\n"
	}
	out += "Priority: " + string(task.Priority) + "\n"
	out += "Status:   " + string(task.Status) + "\n"
	if task.DueDate != nil {
		out += "Due:      " + task.DueDate.Format("2006-01-02") + "\n"
	}
	if task.Category != "" {
		out += "Category: " + task.Category + "\n"
	}
	if task.Project != "" {
		out += "Project:  " + task.Project + "\n"
	}

	if m.status != "" {
		out += "\n" + m.status + "\n"
	}

	out += "\n" + helpStyle.Render("e edit  x done  d delete  c copy  esc back  q quit")
	return out
}

func (m appModel) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.location = screenList
	case key.Matches(keyMsg, keys.edit):
		task := m.detail.task
		m.form = newTaskFormModel(&task)
		m.location = screenForm
	case key.Matches(keyMsg, keys.complete):
		if m.detail.task.Status == models.StatusCompleted {
			return m, nil
		}
		m.location = screenList
		return m, m.cmdCompleteTask(m.detail.task.ID)
	case key.Matches(keyMsg, keys.delete):
		m.showConfirm = true
		m.confirm.message = m.detail.task.Title
		m.pendingDelete = m.detail.task.ID
	case key.Matches(keyMsg, keys.copy):
		text := m.detail.task.Title
		if m.detail.task.Description != "" {
			text += "\n" + m.detail.task.Description
		}
		return m, cmdCopyToClipboard(text)
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}
