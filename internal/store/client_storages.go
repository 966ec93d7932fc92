package store

import (
	"context"
	"fmt"

	"github.com/taskdeck/taskdeck/internal/config"
	"github.com/taskdeck/taskdeck/internal/logger"
)

// ClientStorages groups the client-side repositories into a single value
// that can be passed around the client service layer.
type ClientStorages struct {
	// SessionStore persists the authenticated session between runs.
	SessionStore SessionStore
}

// NewClientStorages opens the local SQLite database (creating it if it does
// not yet exist), applies the bootstrap schema and wires up the client
// repositories.
func NewClientStorages(cfg config.ClientStorage, log *logger.Logger) (*ClientStorages, error) {
	log.Info().Msg("creating client storages...")

	db, err := NewConnectSQLite(context.Background(), cfg, log)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	return &ClientStorages{
		SessionStore: NewSessionStore(db, log),
	}, nil
}
