package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/taskdeck/taskdeck/internal/adapter"
	"github.com/taskdeck/taskdeck/internal/logger"
	"github.com/taskdeck/taskdeck/internal/store"
	"github.com/taskdeck/taskdeck/internal/utils"
	"github.com/taskdeck/taskdeck/models"
)

type clientAuthService struct {
	localStore *store.ClientStorages
	adapter    adapter.ServerAdapter
	logger     *logger.Logger
}

func NewClientAuthService(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, log *logger.Logger) ClientAuthService {
	return &clientAuthService{localStore: localStore, adapter: serverAdapter, logger: log}
}

func (a *clientAuthService) Register(ctx context.Context, data models.RegisterData) (models.Session, error) {
	session, err := a.adapter.Register(ctx, data)
	if err != nil {
		return models.Session{}, mapAdapterError(err)
	}

	if err = a.localStore.SessionStore.SaveSession(ctx, session); err != nil {
		return models.Session{}, fmt.Errorf("save session after register: %w", err)
	}

	return session, nil
}

func (a *clientAuthService) Login(ctx context.Context, data models.LoginData) (models.Session, error) {
	session, err := a.adapter.Login(ctx, data)
	if err != nil {
		return models.Session{}, mapAdapterError(err)
	}

	if err = a.localStore.SessionStore.SaveSession(ctx, session); err != nil {
		return models.Session{}, fmt.Errorf("save session after login: %w", err)
	}

	return session, nil
}

func (a *clientAuthService) RestoreSession(ctx context.Context) (models.Session, error) {
	session, err := a.localStore.SessionStore.LoadSession(ctx)
	if err != nil {
		return models.Session{}, err
	}

	// Expired tokens are dropped locally instead of being sent to the server
	// only to bounce with a 401.
	expiry, err := utils.TokenExpiry(session.Token)
	if err != nil || !expiry.After(time.Now()) {
		if clearErr := a.localStore.SessionStore.ClearSession(ctx); clearErr != nil {
			a.logger.Warn().Err(clearErr).Msg("failed to clear expired session")
		}
		return models.Session{}, store.ErrLocalSessionNotFound
	}

	a.adapter.SetToken(session.Token)

	return session, nil
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	a.adapter.SetToken("")

	if err := a.localStore.SessionStore.ClearSession(ctx); err != nil && !errors.Is(err, store.ErrLocalSessionNotFound) {
		return fmt.Errorf("clear session: %w", err)
	}

	return nil
}
