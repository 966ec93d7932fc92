package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/taskdeck/taskdeck/internal/config"
	"github.com/taskdeck/taskdeck/internal/logger"
	"github.com/taskdeck/taskdeck/models"
)

func newTestSessionStore(t *testing.T) SessionStore {
	t.Helper()

	l := logger.Nop()
	db, err := NewConnectSQLite(context.Background(), config.ClientStorage{DBPath: ":memory:"}, l)
	if err != nil {
		t.Fatalf("failed to open in-memory sqlite: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return NewSessionStore(db, l)
}

func TestSessionStore_SaveAndLoad(t *testing.T) {
	s := newTestSessionStore(t)
	ctx := context.Background()

	session := models.Session{
		Token: "header.payload.signature",
		User: models.User{
			ID:    "user-1",
			Email: "a@b.com",
			Name:  "Alice",
		},
		SavedAt: time.Now(),
	}

	if err := s.SaveSession(ctx, session); err != nil {
		t.Fatalf("unexpected save error: %v", err)
	}

	loaded, err := s.LoadSession(ctx)
	if err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}
	if loaded.Token != session.Token {
		t.Errorf("expected token %s, got %s", session.Token, loaded.Token)
	}
	if loaded.User.Email != "a@b.com" {
		t.Errorf("expected email a@b.com, got %s", loaded.User.Email)
	}
}

func TestSessionStore_LoadEmpty(t *testing.T) {
	s := newTestSessionStore(t)

	_, err := s.LoadSession(context.Background())
	if !errors.Is(err, ErrLocalSessionNotFound) {
		t.Fatalf("expected ErrLocalSessionNotFound, got %v", err)
	}
}

func TestSessionStore_SaveOverwrites(t *testing.T) {
	s := newTestSessionStore(t)
	ctx := context.Background()

	first := models.Session{Token: "first", User: models.User{ID: "user-1", Email: "a@b.com"}}
	second := models.Session{Token: "second", User: models.User{ID: "user-2", Email: "c@d.com"}}

	if err := s.SaveSession(ctx, first); err != nil {
		t.Fatalf("unexpected save error: %v", err)
	}
	if err := s.SaveSession(ctx, second); err != nil {
		t.Fatalf("unexpected save error: %v", err)
	}

	loaded, err := s.LoadSession(ctx)
	if err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}
	if loaded.Token != "second" {
		t.Errorf("expected token second, got %s", loaded.Token)
	}
	if loaded.User.ID != "user-2" {
		t.Errorf("expected user-2, got %s", loaded.User.ID)
	}
}

func TestSessionStore_MalformedUserTreatedAsNoSession(t *testing.T) {
	l := logger.Nop()
	db, err := NewConnectSQLite(context.Background(), config.ClientStorage{DBPath: ":memory:"}, l)
	if err != nil {
		t.Fatalf("failed to open in-memory sqlite: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	ctx := context.Background()
	if _, err = db.ExecContext(ctx, upsertKV, sessionTokenKey, "some-token"); err != nil {
		t.Fatalf("failed to seed token: %v", err)
	}
	if _, err = db.ExecContext(ctx, upsertKV, sessionUserKey, "{not valid json"); err != nil {
		t.Fatalf("failed to seed malformed user: %v", err)
	}

	s := NewSessionStore(db, l)
	_, err = s.LoadSession(ctx)
	if !errors.Is(err, ErrLocalSessionNotFound) {
		t.Fatalf("expected ErrLocalSessionNotFound for malformed user, got %v", err)
	}
}

func TestSessionStore_Clear(t *testing.T) {
	s := newTestSessionStore(t)
	ctx := context.Background()

	session := models.Session{Token: "tok", User: models.User{ID: "user-1"}}
	if err := s.SaveSession(ctx, session); err != nil {
		t.Fatalf("unexpected save error: %v", err)
	}

	if err := s.ClearSession(ctx); err != nil {
		t.Fatalf("unexpected clear error: %v", err)
	}

	_, err := s.LoadSession(ctx)
	if !errors.Is(err, ErrLocalSessionNotFound) {
		t.Fatalf("expected ErrLocalSessionNotFound after clear, got %v", err)
	}
}

func TestSessionStore_ClearEmpty(t *testing.T) {
	s := newTestSessionStore(t)

	if err := s.ClearSession(context.Background()); err != nil {
		t.Fatalf("clearing an empty store must not fail: %v", err)
	}
}
