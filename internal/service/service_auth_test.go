// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Taskdeck Authors

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskdeck/taskdeck/internal/config"
	"github.com/taskdeck/taskdeck/internal/logger"
	"github.com/taskdeck/taskdeck/internal/store"
	"github.com/taskdeck/taskdeck/internal/utils"
	"github.com/taskdeck/taskdeck/internal/validators"
	"github.com/taskdeck/taskdeck/models"
)

// ─────────────────────────────────────────────
// Mock: store.UserRepository
// ─────────────────────────────────────────────

type mockUserRepository struct {
	createFn      func(ctx context.Context, user models.User) (models.User, error)
	findByEmailFn func(ctx context.Context, email string) (models.User, error)
	findByIDFn    func(ctx context.Context, id string) (models.User, error)
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	return user, nil
}

func (m *mockUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	if m.findByEmailFn != nil {
		return m.findByEmailFn(ctx, email)
	}
	return models.User{}, store.ErrNoUserWasFound
}

func (m *mockUserRepository) FindUserByID(ctx context.Context, id string) (models.User, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return models.User{}, store.ErrNoUserWasFound
}

func newTestAuthService(repo store.UserRepository) AuthService {
	cfg := config.Auth{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "taskdeck",
		TokenDuration: time.Hour,
	}
	return NewAuthService(repo, validators.NewCredentialsValidator(), cfg, logger.Nop())
}

func validRegisterData() models.RegisterData {
	return models.RegisterData{
		Email:    "a@b.com",
		Name:     "Alice",
		Password: "correct horse battery",
	}
}

func TestRegisterUser_Success(t *testing.T) {
	var persisted models.User
	repo := &mockUserRepository{
		createFn: func(ctx context.Context, user models.User) (models.User, error) {
			persisted = user
			user.CreatedAt = time.Now()
			return user, nil
		},
	}
	svc := newTestAuthService(repo)

	user, err := svc.RegisterUser(context.Background(), validRegisterData())
	require.NoError(t, err)

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "a@b.com", user.Email)
	assert.Equal(t, "Alice", user.Name)

	// the stored value must be a bcrypt hash, never the plain password
	require.NotEmpty(t, persisted.PasswordHash)
	assert.NotEqual(t, "correct horse battery", persisted.PasswordHash)
	assert.True(t, utils.VerifyPassword(persisted.PasswordHash, "correct horse battery"))
}

func TestRegisterUser_ValidationFailure(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	cases := []struct {
		name string
		data models.RegisterData
	}{
		{"empty email", models.RegisterData{Name: "Alice", Password: "long enough pw"}},
		{"bad email", models.RegisterData{Email: "not-an-email", Name: "Alice", Password: "long enough pw"}},
		{"short password", models.RegisterData{Email: "a@b.com", Name: "Alice", Password: "short"}},
		{"empty name", models.RegisterData{Email: "a@b.com", Password: "long enough pw"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.RegisterUser(context.Background(), tc.data)
			require.ErrorIs(t, err, validators.ErrValidation)
		})
	}
}

func TestRegisterUser_EmailTaken(t *testing.T) {
	repo := &mockUserRepository{
		createFn: func(ctx context.Context, user models.User) (models.User, error) {
			return models.User{}, store.ErrEmailAlreadyExists
		},
	}
	svc := newTestAuthService(repo)

	_, err := svc.RegisterUser(context.Background(), validRegisterData())
	require.ErrorIs(t, err, ErrEmailAlreadyTaken)
}

func TestRegisterUser_RepositoryError(t *testing.T) {
	repo := &mockUserRepository{
		createFn: func(ctx context.Context, user models.User) (models.User, error) {
			return models.User{}, errors.New("db down")
		},
	}
	svc := newTestAuthService(repo)

	_, err := svc.RegisterUser(context.Background(), validRegisterData())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrEmailAlreadyTaken)
}

func TestLogin_Success(t *testing.T) {
	hash, err := utils.HashPassword("correct horse battery")
	require.NoError(t, err)

	repo := &mockUserRepository{
		findByEmailFn: func(ctx context.Context, email string) (models.User, error) {
			return models.User{ID: "user-1", Email: email, PasswordHash: hash}, nil
		},
	}
	svc := newTestAuthService(repo)

	user, err := svc.Login(context.Background(), models.LoginData{
		Email:    "a@b.com",
		Password: "correct horse battery",
	})
	require.NoError(t, err)
	assert.Equal(t, "user-1", user.ID)
}

func TestLogin_UnknownEmail(t *testing.T) {
	repo := &mockUserRepository{
		findByEmailFn: func(ctx context.Context, email string) (models.User, error) {
			return models.User{}, store.ErrNoUserWasFound
		},
	}
	svc := newTestAuthService(repo)

	_, err := svc.Login(context.Background(), models.LoginData{
		Email:    "nobody@b.com",
		Password: "whatever pw",
	})
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_WrongPassword(t *testing.T) {
	hash, err := utils.HashPassword("the real password")
	require.NoError(t, err)

	repo := &mockUserRepository{
		findByEmailFn: func(ctx context.Context, email string) (models.User, error) {
			return models.User{ID: "user-1", Email: email, PasswordHash: hash}, nil
		},
	}
	svc := newTestAuthService(repo)

	_, err = svc.Login(context.Background(), models.LoginData{
		Email:    "a@b.com",
		Password: "a wrong password",
	})
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

// Unknown email and wrong password must be indistinguishable to the caller.
func TestLogin_FailuresAreIndistinguishable(t *testing.T) {
	hash, err := utils.HashPassword("the real password")
	require.NoError(t, err)

	unknownEmailRepo := &mockUserRepository{
		findByEmailFn: func(ctx context.Context, email string) (models.User, error) {
			return models.User{}, store.ErrNoUserWasFound
		},
	}
	wrongPasswordRepo := &mockUserRepository{
		findByEmailFn: func(ctx context.Context, email string) (models.User, error) {
			return models.User{ID: "user-1", Email: email, PasswordHash: hash}, nil
		},
	}

	_, errUnknown := newTestAuthService(unknownEmailRepo).Login(context.Background(),
		models.LoginData{Email: "nobody@b.com", Password: "some password"})
	_, errWrong := newTestAuthService(wrongPasswordRepo).Login(context.Background(),
		models.LoginData{Email: "a@b.com", Password: "some password"})

	require.ErrorIs(t, errUnknown, ErrInvalidCredentials)
	require.ErrorIs(t, errWrong, ErrInvalidCredentials)
	assert.Equal(t, errUnknown.Error(), errWrong.Error())
}

func TestCreateToken_ParseToken_RoundTrip(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})
	user := models.User{ID: "user-1", Email: "a@b.com", Name: "Alice"}

	token, err := svc.CreateToken(context.Background(), user)
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(context.Background(), token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, "user-1", parsed.UserID)
	assert.Equal(t, "a@b.com", parsed.Claims.Email)
}

func TestParseToken_Invalid(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	cases := []struct {
		name  string
		token string
	}{
		{"malformed", "not-a-jwt"},
		{"empty", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.ParseToken(context.Background(), tc.token)
			require.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
		})
	}
}

func TestParseToken_WrongSignKey(t *testing.T) {
	issuing := newTestAuthService(&mockUserRepository{})
	token, err := issuing.CreateToken(context.Background(), models.User{ID: "user-1"})
	require.NoError(t, err)

	verifying := NewAuthService(&mockUserRepository{}, validators.NewCredentialsValidator(), config.Auth{
		TokenSignKey:  "a different key",
		TokenIssuer:   "taskdeck",
		TokenDuration: time.Hour,
	}, logger.Nop())

	_, err = verifying.ParseToken(context.Background(), token.SignedString)
	require.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}
