package service

import (
	"context"

	"github.com/taskdeck/taskdeck/models"
)

// AuthService handles account registration, credential verification and
// session token lifecycle.
type AuthService interface {
	// RegisterUser creates a new account from validated registration data.
	// Returns ErrEmailAlreadyTaken when the email is already in use.
	RegisterUser(ctx context.Context, data models.RegisterData) (models.User, error)

	// Login verifies credentials and returns the matching account. Returns
	// ErrInvalidCredentials on any failure, never revealing whether the
	// email exists.
	Login(ctx context.Context, data models.LoginData) (models.User, error)

	// CreateToken issues a signed session token for the user.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken validates a raw token string and returns its decoded form.
	// Returns ErrTokenIsExpiredOrInvalid on any validation failure.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// TaskService implements the task operations exposed over the HTTP API.
// Every method is scoped by the authenticated user's id.
type TaskService interface {
	CreateTask(ctx context.Context, task models.Task) (models.Task, error)
	GetTask(ctx context.Context, id string, userID string) (models.Task, error)
	ListTasks(ctx context.Context, userID string, filter models.TaskFilter) ([]models.Task, error)
	UpdateTask(ctx context.Context, update models.TaskUpdate) (models.Task, error)
	DeleteTask(ctx context.Context, id string, userID string) error
}
