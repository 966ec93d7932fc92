package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/taskdeck/taskdeck/internal/logger"
	"github.com/taskdeck/taskdeck/internal/service"
	"github.com/taskdeck/taskdeck/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, service.ErrInvalidDataProvided, "Invalid request body", "")
		return
	}

	// never log req.Data: it carries the plain password
	if req.CSRFToken == "" {
		log.Error().Msg("registration request without csrf token")
		writeError(w, ErrMissingCSRFToken, "Registration failed", req.CorrelationID)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, req.Data)
	if err != nil {
		log.Err(err).Str("email", req.Data.Email).Msg("user registration failed")
		writeError(w, err, "Registration failed", req.CorrelationID)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, registeredUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		writeError(w, err, "Registration failed", req.CorrelationID)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	writeSuccess(w, http.StatusCreated, models.AuthResponseData{
		Token: token.SignedString,
		User:  registeredUser.Sanitized(),
	}, "User registered successfully", req.CorrelationID)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, service.ErrInvalidDataProvided, "Invalid request body", "")
		return
	}

	if req.CSRFToken == "" {
		log.Error().Msg("login request without csrf token")
		writeError(w, ErrMissingCSRFToken, "Login failed", req.CorrelationID)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, req.Data)
	if err != nil {
		log.Err(err).Str("email", req.Data.Email).Msg("user login failed")
		writeError(w, err, "Login failed", req.CorrelationID)
		return
	}

	log.Debug().Str("userID", foundUser.ID).Msg("user successfully logged in")

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		writeError(w, err, "Login failed", req.CorrelationID)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	writeSuccess(w, http.StatusOK, models.AuthResponseData{
		Token: token.SignedString,
		User:  foundUser.Sanitized(),
	}, "Login successful", req.CorrelationID)
}
