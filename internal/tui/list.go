package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/taskdeck/taskdeck/models"
)

// listEntry is one rendered row: either a bucket header or a task.
type listEntry struct {
	header string
	task   models.Task
}

type listModel struct {
	entries []listEntry
	idx     int
	loading bool

	filter    models.TaskFilter
	search    textinput.Model
	searching bool
}

func newListModel() listModel {
	search := textinput.New()
	search.Placeholder = "search"
	search.Width = 40
	return listModel{search: search, loading: true}
}

// setBuckets flattens the bucket groups into display rows and keeps the
// cursor on a task row.
func (m *listModel) setBuckets(buckets []models.TaskBucket) {
	m.entries = m.entries[:0]
	for _, bucket := range buckets {
		m.entries = append(m.entries, listEntry{header: bucket.Name})
		for _, task := range bucket.Tasks {
			m.entries = append(m.entries, listEntry{task: task})
		}
	}
	if m.idx >= len(m.entries) {
		m.idx = len(m.entries) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
	m.snapToTask(1)
}

func (m listModel) current() (models.Task, bool) {
	if m.idx < 0 || m.idx >= len(m.entries) || m.entries[m.idx].header != "" {
		return models.Task{}, false
	}
	return m.entries[m.idx].task, true
}

// move shifts the cursor by dir (+1 or -1), skipping header rows.
func (m *listModel) move(dir int) {
	i := m.idx + dir
	for i >= 0 && i < len(m.entries) && m.entries[i].header != "" {
		i += dir
	}
	if i >= 0 && i < len(m.entries) {
		m.idx = i
	}
}

// snapToTask places the cursor on the nearest task row in direction dir.
func (m *listModel) snapToTask(dir int) {
	if _, ok := m.current(); ok {
		return
	}
	m.move(dir)
	if _, ok := m.current(); !ok {
		m.move(-dir)
	}
}

func priorityMark(p models.TaskPriority) string {
	switch p {
	case models.PriorityHigh:
		return "!"
	case models.PriorityLow:
		return "."
	default:
		return " "
	}
}

func taskLine(task models.Task) string {
	check := "[ ]"
	if task.Status == models.StatusCompleted {
		check = "[x]"
	}
	line := fmt.Sprintf("%s%s %s", check, priorityMark(task.Priority), task.Title)
	if task.DueDate != nil {
		line += "  (" + task.DueDate.Format("Jan 2") + ")"
	}
	if task.Status == models.StatusCompleted {
		return doneStyle.Render(line)
	}
	return line
}

func (m listModel) View() string {
	out := "taskdeck\n"
	if m.searching {
		out += "\nSearch: [" + m.search.View() + "]\n"
	} else if m.filter.Search != "" {
		out += "\nFiltered by: " + m.filter.Search + "\n"
	}
	out += "\n"

	switch {
	case m.loading:
		out += "Loading tasks...\n"
	case len(m.entries) == 0:
		out += "No tasks yet. Press n to add one.\n"
	default:
		for i, entry := range m.entries {
			if entry.header != "" {
				out += bucketStyle.Render(entry.header) + "\n"
				continue
			}
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			out += cursor + taskLine(entry.task) + "\n"
		}
	}

	out += "\n" + helpStyle.Render("n new  enter open  x done  d delete  / search  r refresh  L logout  q quit")
	return out
}

func (m appModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.list.searching {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.list.searching = false
			m.list.search.SetValue("")
			m.list.search.Blur()
			if m.list.filter.Search != "" {
				m.list.filter.Search = ""
				m.list.loading = true
				return m, m.cmdLoadTasks()
			}
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			m.list.searching = false
			m.list.search.Blur()
			m.list.filter.Search = strings.TrimSpace(m.list.search.Value())
			m.list.loading = true
			return m, m.cmdLoadTasks()
		}
		var cmd tea.Cmd
		m.list.search, cmd = m.list.search.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		m.list.move(-1)
	case key.Matches(keyMsg, keys.down):
		m.list.move(1)
	case key.Matches(keyMsg, keys.enter):
		task, ok := m.list.current()
		if !ok {
			return m, nil
		}
		m.detail = detailModel{task: task}
		m.location = screenDetail
	case key.Matches(keyMsg, keys.newItem):
		m.form = newTaskFormModel(nil)
		m.location = screenForm
	case key.Matches(keyMsg, keys.complete):
		task, ok := m.list.current()
		if !ok || task.Status == models.StatusCompleted {
			return m, nil
		}
		return m, m.cmdCompleteTask(task.ID)
	case key.Matches(keyMsg, keys.delete):
		task, ok := m.list.current()
		if !ok {
			return m, nil
		}
		m.showConfirm = true
		m.confirm.message = task.Title
		m.pendingDelete = task.ID
	case key.Matches(keyMsg, keys.search):
		m.list.searching = true
		m.list.search.Focus()
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.refresh):
		m.list.loading = true
		return m, m.cmdLoadTasks()
	case key.Matches(keyMsg, keys.logout):
		m.authState = authUnauthenticated
		m.session = models.Session{}
		m.location = screenWelcome
		m.notifyAuthChange(false)
		return m, m.cmdLogout()
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}
