package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fieldpress/fieldpress/internal/config"
	"github.com/fieldpress/fieldpress/internal/logger"
	"github.com/fieldpress/fieldpress/internal/store"
	"github.com/fieldpress/fieldpress/internal/utils"
	"github.com/fieldpress/fieldpress/models"
)

// authService is the concrete implementation of AuthService.
// It handles account registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and bcrypt for password
// hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// adminUsername, adminEmail, and adminPassword describe the bootstrap
	// administrator account created by EnsureAdmin. An empty adminUsername
	// disables the bootstrap.
	adminUsername string
	adminEmail    string
	adminPassword string

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		adminUsername:  cfg.AdminUsername,
		adminEmail:     cfg.AdminEmail,
		adminPassword:  cfg.AdminPassword,
		logger:         logger,
	}
}

// Register creates a new user account.
//
// The password is bcrypt-hashed before storage; new accounts always get the
// non-privileged role and start active. Role elevation is an operator action,
// not an API one.
//
// Returns the persisted user (with a server-assigned ID) or:
//   - ErrInvalidDataProvided if username, email, or password is empty.
//   - A wrapped storage error if the repository call fails (e.g. username
//     already taken, see store.ErrUserAlreadyExists).
func (a *authService) Register(ctx context.Context, username, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if username == "" || email == "" || password == "" {
		log.Error().Str("username", username).Msg("invalid registration data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registered, err := a.userRepository.CreateUser(ctx, models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         models.RoleUser,
		IsActive:     true,
	})
	if err != nil {
		log.Err(err).Str("username", username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registered, nil
}

// Login authenticates an existing user.
//
// The bcrypt comparison runs even for unknown usernames where possible, and
// all credential failures normalise to ErrInvalidCredentials so responses do
// not reveal whether the username exists. Inactive accounts are rejected with
// ErrUserInactive even when the password matches. A successful login stamps
// the account's last_login column.
func (a *authService) Login(ctx context.Context, username, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if username == "" || password == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	found, err := a.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		log.Err(err).Str("username", username).Msg("user search by username failed")
		return models.User{}, ErrInvalidCredentials
	}

	if !utils.CheckPassword(found.PasswordHash, password) {
		log.Error().Int64("id", found.ID).Str("username", found.Username).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	if !found.IsActive {
		log.Error().Int64("id", found.ID).Str("username", found.Username).Msg("inactive account login attempt")
		return models.User{}, ErrUserInactive
	}

	if err := a.userRepository.TouchLastLogin(ctx, found.ID); err != nil {
		// A failed timestamp must not block an otherwise valid login.
		log.Err(err).Int64("id", found.ID).Msg("updating last login failed")
	}

	return found, nil
}

// EnsureAdmin creates the configured bootstrap administrator account when no
// user with that name exists yet. Called once at startup; a restart with the
// same configuration is a no-op, and without a configured admin username the
// bootstrap is disabled entirely.
//
// Register only mints regular users, so this account (or an operator promoting
// a row by hand) is what makes the admin endpoints reachable.
func (a *authService) EnsureAdmin(ctx context.Context) error {
	if a.adminUsername == "" {
		return nil
	}
	if a.adminPassword == "" {
		return fmt.Errorf("%w: admin bootstrap needs a password", ErrInvalidDataProvided)
	}

	_, err := a.userRepository.FindUserByUsername(ctx, a.adminUsername)
	if err == nil {
		return nil
	}
	if !errors.Is(err, store.ErrUserNotFound) {
		return fmt.Errorf("admin account lookup failed: %w", err)
	}

	hash, err := utils.HashPassword(a.adminPassword)
	if err != nil {
		return fmt.Errorf("password hashing failed: %w", err)
	}

	_, err = a.userRepository.CreateUser(ctx, models.User{
		Username:     a.adminUsername,
		Email:        a.adminEmail,
		PasswordHash: hash,
		Role:         models.RoleAdmin,
		IsActive:     true,
	})
	if err != nil {
		return fmt.Errorf("admin account creation failed: %w", err)
	}

	a.logger.Info().Str("username", a.adminUsername).Msg("bootstrap admin account created")
	return nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim plus the account role, and expires after
// tokenDuration.
//
// Returns the token model on success or a wrapped error if JWT generation fails.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, user.Role, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature and
// the issuer claim. Any validation failure (expired, wrong issuer, malformed)
// is normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
