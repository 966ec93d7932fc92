package models

import "time"

// TaskPriority is the urgency level assigned to a task.
type TaskPriority string

// Recognized task priorities. The zero value is treated as PriorityMedium
// at the persistence layer.
const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
)

// Valid reports whether p is one of the recognized priority values.
func (p TaskPriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// TaskStatus is the completion state of a task.
type TaskStatus string

// Recognized task statuses.
const (
	StatusPending   TaskStatus = "pending"
	StatusCompleted TaskStatus = "completed"
)

// Valid reports whether s is one of the recognized status values.
func (s TaskStatus) Valid() bool {
	return s == StatusPending || s == StatusCompleted
}

// Task is a single to-do item owned by exactly one user.
type Task struct {
	// ID is the opaque unique identifier of the task (UUID string).
	ID string `json:"id"`

	// UserID is the owner of the task. Required for data isolation:
	// every query is scoped by it.
	UserID string `json:"user_id"`

	// Title is the short text shown in task lists. Required.
	Title string `json:"title"`

	// Description is optional free-form detail text.
	Description string `json:"description,omitempty"`

	// Priority is the urgency level (low, medium, high).
	Priority TaskPriority `json:"priority"`

	// Status is the completion state (pending, completed).
	Status TaskStatus `json:"status"`

	// DueDate is the optional date the task is due. Nil means no due date.
	DueDate *time.Time `json:"due_date,omitempty"`

	// Category is an optional user-defined tag (e.g. "Personal", "Learning").
	Category string `json:"category,omitempty"`

	// Project is an optional project label the task belongs to.
	Project string `json:"project,omitempty"`

	CreatedAt time.Time `json:"created_at,omitzero"`
	UpdatedAt time.Time `json:"updated_at,omitzero"`
}

// TableName returns the name of the database table
// associated with the Task model.
func (t Task) TableName() string {
	return "tasks"
}

// TaskFilter is the set of optional criteria for listing tasks.
// Only non-zero fields participate in the query; Search matches
// case-insensitively against title, description, category, and project.
type TaskFilter struct {
	Status   TaskStatus   `json:"status,omitempty"`
	Priority TaskPriority `json:"priority,omitempty"`
	Category string       `json:"category,omitempty"`
	Project  string       `json:"project,omitempty"`
	Search   string       `json:"search,omitempty"`
}

// TaskBucket is a named group of tasks used by the client to present a task
// list sectioned by due date (Today, This week, Upcoming, Someday, Completed).
type TaskBucket struct {
	Name  string `json:"name"`
	Tasks []Task `json:"tasks"`
}

// TaskUpdate carries a partial update for a single task.
// Only non-nil fields are applied.
type TaskUpdate struct {
	// ID identifies the task to update. Required.
	ID string `json:"id"`

	// UserID is the owner of the task. Required for data isolation.
	UserID string `json:"user_id"`

	Title       *string       `json:"title,omitempty"`
	Description *string       `json:"description,omitempty"`
	Priority    *TaskPriority `json:"priority,omitempty"`
	Status      *TaskStatus   `json:"status,omitempty"`
	DueDate     *time.Time    `json:"due_date,omitempty"`
	Category    *string       `json:"category,omitempty"`
	Project     *string       `json:"project,omitempty"`
}
