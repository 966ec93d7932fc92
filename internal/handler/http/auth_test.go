// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Taskdeck Authors

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskdeck/taskdeck/internal/logger"
	"github.com/taskdeck/taskdeck/internal/service"
	"github.com/taskdeck/taskdeck/models"
)

// ─────────────────────────────────────────────
// Mock AuthService
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerUserFn func(ctx context.Context, data models.RegisterData) (models.User, error)
	loginFn        func(ctx context.Context, data models.LoginData) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, data models.RegisterData) (models.User, error) {
	return m.registerUserFn(ctx, data)
}

func (m *mockAuthService) Login(ctx context.Context, data models.LoginData) (models.User, error) {
	return m.loginFn(ctx, data)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func newHandlerWithAuth(t *testing.T, auth service.AuthService) *Handler {
	t.Helper()
	svcs := &service.Services{
		AuthService: auth,
	}
	return NewHandler(svcs, logger.Nop())
}

func requestBody(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) models.Envelope {
	t.Helper()
	var env models.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func stubToken(signed string) models.Token {
	return models.Token{SignedString: signed, UserID: "user-1"}
}

var validRegister = models.RegisterRequest{
	Data: models.RegisterData{
		Email:    "a@b.com",
		Name:     "Alice",
		Password: "correct horse battery",
	},
	CSRFToken:     "csrf-token",
	CorrelationID: "corr-123",
}

var validLogin = models.LoginRequest{
	Data: models.LoginData{
		Email:    "a@b.com",
		Password: "correct horse battery",
	},
	CSRFToken:     "csrf-token",
	CorrelationID: "corr-456",
}

// ─────────────────────────────────────────────
// register
// ─────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	const signedToken = "signed.jwt.token"

	auth := &mockAuthService{
		registerUserFn: func(_ context.Context, data models.RegisterData) (models.User, error) {
			return models.User{ID: "user-1", Email: data.Email, Name: data.Name, PasswordHash: "$2a$10$hash"}, nil
		},
		createTokenFn: func(_ context.Context, _ models.User) (models.Token, error) {
			return stubToken(signedToken), nil
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/users/register", strings.NewReader(requestBody(t, validRegister)))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Bearer "+signedToken, rec.Header().Get("Authorization"))

	env := decodeEnvelope(t, rec)
	assert.True(t, env.Success)
	assert.Equal(t, "User registered successfully", env.Message)
	assert.Equal(t, "corr-123", env.Meta.CorrelationID)
	assert.Equal(t, models.APIVersion, env.Meta.Version)
	assert.NotEmpty(t, env.Meta.Timestamp)

	// no password material may appear anywhere in the response
	assert.NotContains(t, rec.Body.String(), "password")
	assert.NotContains(t, rec.Body.String(), "$2a$10$hash")
	assert.Contains(t, rec.Body.String(), signedToken)
	assert.Contains(t, rec.Body.String(), "a@b.com")
}

func TestRegister_InvalidJSON(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})
	req := httptest.NewRequest(http.MethodPost, "/api/users/register", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.False(t, env.Success)
}

func TestRegister_MissingCSRFToken(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})

	body := validRegister
	body.CSRFToken = ""
	req := httptest.NewRequest(http.MethodPost, "/api/users/register", strings.NewReader(requestBody(t, body)))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.False(t, env.Success)
	assert.Contains(t, env.Errors, ErrMissingCSRFToken.Error())
}

func TestRegister_EmailTaken(t *testing.T) {
	auth := &mockAuthService{
		registerUserFn: func(_ context.Context, _ models.RegisterData) (models.User, error) {
			return models.User{}, service.ErrEmailAlreadyTaken
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/users/register", strings.NewReader(requestBody(t, validRegister)))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	require.Equal(t, http.StatusConflict, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.False(t, env.Success)
	assert.Contains(t, env.Errors, service.ErrEmailAlreadyTaken.Error())
}

func TestRegister_TokenCreationFails(t *testing.T) {
	auth := &mockAuthService{
		registerUserFn: func(_ context.Context, data models.RegisterData) (models.User, error) {
			return models.User{ID: "user-1", Email: data.Email}, nil
		},
		createTokenFn: func(_ context.Context, _ models.User) (models.Token, error) {
			return models.Token{}, service.ErrTokenCreationFailed
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/users/register", strings.NewReader(requestBody(t, validRegister)))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.False(t, env.Success)
	// internal failures are reduced to a generic message
	assert.Equal(t, []string{http.StatusText(http.StatusInternalServerError)}, env.Errors)
}

// ─────────────────────────────────────────────
// login
// ─────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	const signedToken = "signed.jwt.token"

	auth := &mockAuthService{
		loginFn: func(_ context.Context, data models.LoginData) (models.User, error) {
			return models.User{ID: "user-1", Email: data.Email, Name: "Alice", PasswordHash: "$2a$10$hash"}, nil
		},
		createTokenFn: func(_ context.Context, _ models.User) (models.Token, error) {
			return stubToken(signedToken), nil
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/users/login", strings.NewReader(requestBody(t, validLogin)))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bearer "+signedToken, rec.Header().Get("Authorization"))

	env := decodeEnvelope(t, rec)
	assert.True(t, env.Success)
	assert.Equal(t, "Login successful", env.Message)
	assert.Equal(t, "corr-456", env.Meta.CorrelationID)
	assert.NotContains(t, rec.Body.String(), "$2a$10$hash")
}

func TestLogin_MissingCSRFToken(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})

	body := validLogin
	body.CSRFToken = ""
	req := httptest.NewRequest(http.MethodPost, "/api/users/login", strings.NewReader(requestBody(t, body)))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

// An unregistered email must produce the same response as a wrong password.
func TestLogin_InvalidCredentials(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _ models.LoginData) (models.User, error) {
			return models.User{}, service.ErrInvalidCredentials
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/users/login", strings.NewReader(requestBody(t, validLogin)))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.False(t, env.Success)
	assert.Equal(t, []string{service.ErrInvalidCredentials.Error()}, env.Errors)

	// the envelope must not hint at which part of the credentials failed
	assert.NotContains(t, rec.Body.String(), "email")
	assert.NotContains(t, rec.Body.String(), "password")
}
