package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/taskdeck/taskdeck/internal/config"
	"github.com/taskdeck/taskdeck/internal/logger"
	"github.com/taskdeck/taskdeck/internal/store"
	"github.com/taskdeck/taskdeck/internal/utils"
	"github.com/taskdeck/taskdeck/internal/validators"
	"github.com/taskdeck/taskdeck/internal/workers"
	"github.com/taskdeck/taskdeck/models"
)

// authService is the concrete implementation of [AuthService]. It handles
// user registration, credential verification and JWT token lifecycle using
// a UserRepository for persistence and bcrypt for password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// validator checks registration and login payloads before any storage
	// or hashing work happens.
	validator validators.Validator

	// ids mints identifiers for new accounts.
	ids *utils.UUIDGenerator

	// pool bounds concurrent bcrypt work so a burst of auth requests cannot
	// pin every goroutine on hashing.
	pool *workers.Pool

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs an [AuthService] wired to the given
// UserRepository and populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, validator validators.Validator, cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		validator:      validator,
		ids:            utils.NewUUIDGenerator(),
		pool:           workers.NewPool(0),
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// RegisterUser creates a new user account.
//
// The registration payload is validated, the password is hashed with bcrypt,
// and persistence is delegated to the UserRepository. The plain password is
// never stored or logged.
//
// Returns the persisted user or:
//   - A validation error wrapping [validators.ErrValidation].
//   - [ErrEmailAlreadyTaken] if the email is already registered.
func (a *authService) RegisterUser(ctx context.Context, data models.RegisterData) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, data); err != nil {
		log.Error().Err(err).Str("email", data.Email).Msg("registration payload failed validation")
		return models.User{}, err
	}

	var hash string
	err := a.pool.Do(ctx, func() error {
		var hashErr error
		hash, hashErr = utils.HashPassword(data.Password)
		return hashErr
	})
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user := models.User{
		ID:           a.ids.Generate(),
		Email:        data.Email,
		Name:         data.Name,
		Phone:        data.Phone,
		PasswordHash: hash,
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			log.Warn().Str("email", data.Email).Msg("registration rejected: email already taken")
			return models.User{}, ErrEmailAlreadyTaken
		}
		log.Err(err).Str("email", data.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Str("userID", registeredUser.ID).Msg("user registered")
	return registeredUser, nil
}

// Login authenticates an existing user.
//
// The account is looked up by email and the supplied password is compared
// against the stored bcrypt hash. An unknown email and a wrong password both
// return [ErrInvalidCredentials]; the response never reveals which of the
// two failed.
func (a *authService) Login(ctx context.Context, data models.LoginData) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, data); err != nil {
		log.Error().Err(err).Str("email", data.Email).Msg("login payload failed validation")
		return models.User{}, err
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, data.Email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Warn().Str("email", data.Email).Msg("login rejected: unknown email")
			return models.User{}, ErrInvalidCredentials
		}
		log.Err(err).Str("email", data.Email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	var matches bool
	err = a.pool.Do(ctx, func() error {
		matches = utils.VerifyPassword(foundUser.PasswordHash, data.Password)
		return nil
	})
	if err != nil {
		return models.User{}, fmt.Errorf("password verification failed: %w", err)
	}
	if !matches {
		log.Warn().Str("userID", foundUser.ID).Msg("login rejected: wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the
// configured tokenIssuer as the "iss" claim, and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature
// and the issuer claim. Any validation failure (expired, wrong issuer,
// malformed) is normalised to [ErrTokenIsExpiredOrInvalid] so that callers
// do not need to inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
