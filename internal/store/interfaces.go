package store

import (
	"context"

	"github.com/taskdeck/taskdeck/models"
)

// UserRepository is a persistent storage for registered users.
type UserRepository interface {
	// CreateUser inserts a new user and returns the created record with the
	// database-assigned fields populated. Returns ErrEmailAlreadyExists when
	// the email is already taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail looks up a user by email. Returns ErrNoUserWasFound when
	// no such user exists.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID looks up a user by id. Returns ErrNoUserWasFound when no
	// such user exists.
	FindUserByID(ctx context.Context, id string) (models.User, error)
}

// TaskRepository is a persistent storage for user tasks.
type TaskRepository interface {
	// CreateTask inserts a new task owned by task.UserID.
	CreateTask(ctx context.Context, task models.Task) (models.Task, error)

	// FindTaskByID looks up a single task by id scoped to the owning user.
	// Returns ErrTaskNotFound when no such task exists.
	FindTaskByID(ctx context.Context, id string, userID string) (models.Task, error)

	// FindTasks returns all tasks of the user matching the filter, newest first.
	FindTasks(ctx context.Context, userID string, filter models.TaskFilter) ([]models.Task, error)

	// UpdateTask applies a partial update to an existing task. Returns
	// ErrTaskNotFound when the task does not exist or belongs to another user.
	UpdateTask(ctx context.Context, update models.TaskUpdate) (models.Task, error)

	// DeleteTask removes a task. Returns ErrTaskNotFound when the task does
	// not exist or belongs to another user.
	DeleteTask(ctx context.Context, id string, userID string) error
}
