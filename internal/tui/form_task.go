// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Taskdeck Authors

package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/taskdeck/taskdeck/models"
)

const dueDateLayout = "2006-01-02"

const (
	formFieldTitle = iota
	formFieldDescription
	formFieldPriority
	formFieldDueDate
	formFieldCategory
	formFieldProject
	formFieldCount
)

type taskFormModel struct {
	inputs     [formFieldCount]textinput.Model
	focus      int
	editing    bool
	taskID     string
	submitting bool
}

// newTaskFormModel builds an empty creation form, or an edit form
// prefilled from task when task is non-nil.
func newTaskFormModel(task *models.Task) taskFormModel {
	m := taskFormModel{}

	labels := [formFieldCount]string{
		"title", "description", "low / medium / high", dueDateLayout, "category", "project",
	}
	for i := range m.inputs {
		input := textinput.New()
		input.Placeholder = labels[i]
		input.Width = 40
		m.inputs[i] = input
	}
	m.inputs[formFieldTitle].CharLimit = 200
	m.inputs[formFieldTitle].Focus()

	if task != nil {
		m.editing = true
		m.taskID = task.ID
		m.inputs[formFieldTitle].SetValue(task.Title)
		m.inputs[formFieldDescription].SetValue(task.Description)
		m.inputs[formFieldPriority].SetValue(string(task.Priority))
		if task.DueDate != nil {
			m.inputs[formFieldDueDate].SetValue(task.DueDate.Format(dueDateLayout))
		}
		m.inputs[formFieldCategory].SetValue(task.Category)
		m.inputs[formFieldProject].SetValue(task.Project)
	}

	return m
}

func (m *taskFormModel) setFocus(i int) {
	m.focus = i
	for j := range m.inputs {
		if j == i {
			m.inputs[j].Focus()
		} else {
			m.inputs[j].Blur()
		}
	}
}

func (m taskFormModel) value(i int) string {
	return strings.TrimSpace(m.inputs[i].Value())
}

// parsePriority normalizes the free-text priority field. Empty means medium.
func parsePriority(raw string) (models.TaskPriority, bool) {
	switch strings.ToLower(raw) {
	case "":
		return models.PriorityMedium, true
	case string(models.PriorityLow):
		return models.PriorityLow, true
	case string(models.PriorityMedium):
		return models.PriorityMedium, true
	case string(models.PriorityHigh):
		return models.PriorityHigh, true
	}
	return "", false
}

func (m taskFormModel) dueDate() (*time.Time, bool) {
	raw := m.value(formFieldDueDate)
	if raw == "" {
		return nil, true
	}
	due, err := time.Parse(dueDateLayout, raw)
	if err != nil {
		return nil, false
	}
	return &due, true
}

func (m taskFormModel) toTask(priority models.TaskPriority, due *time.Time) models.Task {
	return models.Task{
		Title:       m.value(formFieldTitle),
		Description: m.value(formFieldDescription),
		Priority:    priority,
		DueDate:     due,
		Category:    m.value(formFieldCategory),
		Project:     m.value(formFieldProject),
	}
}

func (m taskFormModel) toUpdate(priority models.TaskPriority, due *time.Time) models.TaskUpdate {
	title := m.value(formFieldTitle)
	description := m.value(formFieldDescription)
	category := m.value(formFieldCategory)
	project := m.value(formFieldProject)
	return models.TaskUpdate{
		ID:          m.taskID,
		Title:       &title,
		Description: &description,
		Priority:    &priority,
		DueDate:     due,
		Category:    &category,
		Project:     &project,
	}
}

func (m taskFormModel) View() string {
	title := "New task"
	if m.editing {
		title = "Edit task"
	}

	labels := [formFieldCount]string{
		"Title", "Description", "Priority", "Due date", "Category", "Project",
	}

	out := title + "\n\n"
	for i := range m.inputs {
		out += labels[i] + ":\n" + m.inputs[i].View() + "\n\n"
	}

	if m.submitting {
		out += "[Saving...]\n"
	} else {
		out += "[Save]\n"
	}
	out += "\n" + helpStyle.Render("tab next field  enter save  esc cancel")
	return out
}

// backFromForm returns to where the form was opened from.
func (m appModel) backFromForm() appModel {
	if m.form.editing {
		m.location = screenDetail
	} else {
		m.location = screenList
	}
	return m
}

func (m appModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		return m.backFromForm(), nil

	case key.Matches(keyMsg, keys.tab):
		m.form.setFocus((m.form.focus + 1) % formFieldCount)
		return m, textinput.Blink

	case key.Matches(keyMsg, keys.backtab):
		m.form.setFocus((m.form.focus + formFieldCount - 1) % formFieldCount)
		return m, textinput.Blink

	case key.Matches(keyMsg, keys.enter):
		if m.form.submitting {
			return m, nil
		}
		if m.form.value(formFieldTitle) == "" {
			m.showErrorf("Title is required")
			return m, nil
		}
		priority, ok := parsePriority(m.form.value(formFieldPriority))
		if !ok {
			m.showErrorf("Priority must be low, medium or high")
			return m, nil
		}
		due, ok := m.form.dueDate()
		if !ok {
			m.showErrorf("Due date must look like " + dueDateLayout)
			return m, nil
		}
		m.form.submitting = true
		if m.form.editing {
			return m, m.cmdUpdateTask(m.form.toUpdate(priority, due))
		}
		return m, m.cmdCreateTask(m.form.toTask(priority, due))
	}

	var cmd tea.Cmd
	m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
	return m, cmd
}
