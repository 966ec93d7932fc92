package store

import (
	"context"
	"fmt"

	"github.com/taskdeck/taskdeck/internal/config"
	"github.com/taskdeck/taskdeck/internal/logger"
)

// Storages groups the server-side repositories into a single value that can
// be passed to the service layer.
type Storages struct {
	UserRepository UserRepository
	TaskRepository TaskRepository
}

// NewStorages connects to PostgreSQL, applies pending migrations and wires
// up all server-side repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		UserRepository: NewUserRepository(db, log),
		TaskRepository: NewTaskRepository(db, log),
	}, nil
}
