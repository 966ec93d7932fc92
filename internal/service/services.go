package service

import (
	"github.com/taskdeck/taskdeck/internal/config"
	"github.com/taskdeck/taskdeck/internal/logger"
	"github.com/taskdeck/taskdeck/internal/store"
	"github.com/taskdeck/taskdeck/internal/validators"
)

// Services groups the server-side services into a single value handed to the
// HTTP layer.
type Services struct {
	AuthService AuthService
	TaskService TaskService
}

// NewServices wires up the service layer on top of the given storages.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService: NewAuthService(storages.UserRepository, validators.NewCredentialsValidator(), cfg.Auth, logger),
		TaskService: NewTaskService(storages.TaskRepository, validators.NewTaskValidator(), logger),
	}
}
