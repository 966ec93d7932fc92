package validators

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/taskdeck/taskdeck/models"
)

// Field names reported in task validation failures.
const (
	FieldTaskID       = "id"
	FieldTaskUserID   = "user_id"
	FieldTaskTitle    = "title"
	FieldTaskPriority = "priority"
	FieldTaskStatus   = "status"
)

// TitleMaxLength bounds task titles, measured in runes.
const TitleMaxLength = 255

// TaskValidator validates task payloads before they reach storage.
type TaskValidator struct {
}

// NewTaskValidator constructs a [Validator] for task payloads.
func NewTaskValidator() Validator {
	return &TaskValidator{}
}

// Validate validates [models.Task] and [models.TaskUpdate] inputs (values or
// pointers); any other type yields ErrUnsupportedType.
func (v *TaskValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Task:
		return v.validateTask(value)
	case *models.Task:
		return v.validateTask(*value)

	case models.TaskUpdate:
		return v.validateTaskUpdate(value)
	case *models.TaskUpdate:
		return v.validateTaskUpdate(*value)

	default:
		return ErrUnsupportedType
	}
}

func (v *TaskValidator) validateTask(task models.Task) error {
	vErr := NewValidationError()

	title := strings.TrimSpace(task.Title)
	if title == "" {
		vErr.Add(FieldTaskTitle, "title is required")
	} else if utf8.RuneCountInString(title) > TitleMaxLength {
		vErr.Add(FieldTaskTitle, "title must be at most 255 characters")
	}

	if task.Priority != "" && !task.Priority.Valid() {
		vErr.Add(FieldTaskPriority, "priority must be low, medium, or high")
	}
	if task.Status != "" && !task.Status.Valid() {
		vErr.Add(FieldTaskStatus, "status must be pending or completed")
	}

	if vErr.HasErrors() {
		return vErr
	}
	return nil
}

func (v *TaskValidator) validateTaskUpdate(update models.TaskUpdate) error {
	vErr := NewValidationError()

	if update.ID == "" {
		vErr.Add(FieldTaskID, "task id is required")
	}
	if update.UserID == "" {
		vErr.Add(FieldTaskUserID, "user id is required")
	}

	if update.Title != nil {
		title := strings.TrimSpace(*update.Title)
		if title == "" {
			vErr.Add(FieldTaskTitle, "title cannot be empty")
		} else if utf8.RuneCountInString(title) > TitleMaxLength {
			vErr.Add(FieldTaskTitle, "title must be at most 255 characters")
		}
	}
	if update.Priority != nil && !update.Priority.Valid() {
		vErr.Add(FieldTaskPriority, "priority must be low, medium, or high")
	}
	if update.Status != nil && !update.Status.Valid() {
		vErr.Add(FieldTaskStatus, "status must be pending or completed")
	}

	if vErr.HasErrors() {
		return vErr
	}
	return nil
}
