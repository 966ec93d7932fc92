package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/taskdeck/taskdeck/internal/logger"
	"github.com/taskdeck/taskdeck/models"
)

// Well-known keys in the client kv table. The token and the cached user are
// stored as two separate rows so each can be inspected independently.
const (
	sessionTokenKey = "session_token"
	sessionUserKey  = "session_user"
)

const (
	upsertKV = `INSERT INTO kv (key, value) VALUES (?, ?)
	ON CONFLICT(key) DO UPDATE SET value = excluded.value;`

	selectKV = `SELECT value FROM kv WHERE key = ?;`

	deleteSessionKV = `DELETE FROM kv WHERE key IN (?, ?);`
)

// sessionStore is the SQLite-backed implementation of [SessionStore].
type sessionStore struct {
	logger *logger.Logger
	db     *DB
}

// NewSessionStore constructs a [SessionStore] backed by the client's local
// SQLite database.
func NewSessionStore(db *DB, logger *logger.Logger) SessionStore {
	logger.Debug().Msg("creating session store")
	return &sessionStore{
		db:     db,
		logger: logger,
	}
}

// SaveSession writes the token and the cached user record under their
// well-known keys. Both rows are written in one transaction so a crash can
// never leave a token without its user or vice versa.
func (s *sessionStore) SaveSession(ctx context.Context, session models.Session) error {
	log := logger.FromContext(ctx)

	userJSON, err := json.Marshal(session.User)
	if err != nil {
		return fmt.Errorf("encode session user: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*sessionStore.SaveSession").Msg("error starting transaction")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, upsertKV, sessionTokenKey, session.Token); err != nil {
		log.Err(err).Str("func", "*sessionStore.SaveSession").Msg("error saving session token")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if _, err = tx.ExecContext(ctx, upsertKV, sessionUserKey, string(userJSON)); err != nil {
		log.Err(err).Str("func", "*sessionStore.SaveSession").Msg("error saving session user")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return tx.Commit()
}

// LoadSession reads the persisted session. A missing token, a missing user
// row or a user row that fails to decode all collapse into
// [ErrLocalSessionNotFound]: a half-written or corrupted session is treated
// the same as no session at all.
func (s *sessionStore) LoadSession(ctx context.Context) (models.Session, error) {
	log := logger.FromContext(ctx)

	token, err := s.loadValue(ctx, sessionTokenKey)
	if err != nil {
		return models.Session{}, err
	}
	if token == "" {
		return models.Session{}, ErrLocalSessionNotFound
	}

	rawUser, err := s.loadValue(ctx, sessionUserKey)
	if err != nil {
		return models.Session{}, err
	}

	var user models.User
	if err = json.Unmarshal([]byte(rawUser), &user); err != nil {
		log.Warn().Err(err).Str("func", "*sessionStore.LoadSession").Msg("stored session user is malformed, treating as no session")
		return models.Session{}, ErrLocalSessionNotFound
	}

	return models.Session{Token: token, User: user}, nil
}

// ClearSession removes both session rows. Clearing an empty store succeeds.
func (s *sessionStore) ClearSession(ctx context.Context) error {
	log := logger.FromContext(ctx)

	if _, err := s.db.ExecContext(ctx, deleteSessionKV, sessionTokenKey, sessionUserKey); err != nil {
		log.Err(err).Str("func", "*sessionStore.ClearSession").Msg("error clearing session")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (s *sessionStore) loadValue(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, selectKV, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrLocalSessionNotFound
		}
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, nil
}
