package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/DariushJinx/restaurants-api/internal/domain"
	"github.com/DariushJinx/restaurants-api/internal/platform/logger"
	"github.com/DariushJinx/restaurants-api/internal/service/auth"
	"github.com/DariushJinx/restaurants-api/internal/store"
)

// AuthService provides user registration and login, issuing bearer tokens
// through the token issuer on success.
type AuthService interface {
	// SignUp registers a new user and returns a token bound to their identity.
	// Returns ErrEmailTaken if the email is already registered.
	SignUp(ctx context.Context, name, email, password string) (string, error)

	// LogIn authenticates a user by email and password and returns a token.
	// Returns ErrInvalidCredentials for an unknown email or a wrong password;
	// the caller cannot tell the two apart.
	LogIn(ctx context.Context, email, password string) (string, error)
}

// AuthServiceError wraps unexpected errors from the auth service with context.
type AuthServiceError struct {
	Operation string
	Message   string
	Err       error
}

// Error implements the error interface for AuthServiceError.
func (e *AuthServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("auth service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("auth service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *AuthServiceError) Unwrap() error {
	return e.Err
}

// authServiceImpl implements the AuthService interface
type authServiceImpl struct {
	userStore store.UserStore
	jwt       auth.JWTService
	hasher    auth.PasswordHasher
	verifier  auth.PasswordVerifier
	logger    *slog.Logger
}

// NewAuthService creates a new AuthService.
// It returns an error if any of the required dependencies are nil.
func NewAuthService(
	userStore store.UserStore,
	jwtService auth.JWTService,
	hasher auth.PasswordHasher,
	verifier auth.PasswordVerifier,
	log *slog.Logger,
) (AuthService, error) {
	if userStore == nil {
		return nil, domain.NewValidationError("userStore", "cannot be nil", domain.ErrValidation)
	}
	if jwtService == nil {
		return nil, domain.NewValidationError("jwtService", "cannot be nil", domain.ErrValidation)
	}
	if hasher == nil {
		return nil, domain.NewValidationError("hasher", "cannot be nil", domain.ErrValidation)
	}
	if verifier == nil {
		return nil, domain.NewValidationError("verifier", "cannot be nil", domain.ErrValidation)
	}
	if log == nil {
		log = slog.Default()
	}

	return &authServiceImpl{
		userStore: userStore,
		jwt:       jwtService,
		hasher:    hasher,
		verifier:  verifier,
		logger:    log.With(slog.String("component", "auth_service")),
	}, nil
}

// SignUp implements AuthService.SignUp
func (s *authServiceImpl) SignUp(ctx context.Context, name, email, password string) (string, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := domain.NewUser(name, email, password)
	if err != nil {
		log.Warn("sign-up validation failed", slog.String("error", err.Error()))
		return "", err
	}

	hashed, err := s.hasher.Hash(user.Password)
	if err != nil {
		log.Error("failed to hash password", slog.String("error", err.Error()))
		return "", &AuthServiceError{Operation: "sign_up", Message: "failed to hash password", Err: err}
	}
	user.HashedPassword = hashed
	user.Password = "" // never persists or outlives registration

	if err := s.userStore.Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			log.Debug("sign-up rejected: email already registered")
			return "", ErrEmailTaken
		}
		log.Error("failed to persist user",
			slog.String("error", err.Error()),
			slog.String("user_id", user.ID.String()))
		return "", err
	}

	token, err := s.jwt.GenerateToken(ctx, user.ID)
	if err != nil {
		log.Error("failed to issue token after sign-up",
			slog.String("error", err.Error()),
			slog.String("user_id", user.ID.String()))
		return "", &AuthServiceError{Operation: "sign_up", Message: "failed to issue token", Err: err}
	}

	log.Info("user signed up", slog.String("user_id", user.ID.String()))
	return token, nil
}

// LogIn implements AuthService.LogIn
func (s *authServiceImpl) LogIn(ctx context.Context, email, password string) (string, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := s.userStore.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Debug("login rejected: unknown email")
			return "", ErrInvalidCredentials
		}
		log.Error("failed to look up user for login", slog.String("error", err.Error()))
		return "", err
	}

	if err := s.verifier.Compare(user.HashedPassword, password); err != nil {
		log.Debug("login rejected: password mismatch",
			slog.String("user_id", user.ID.String()))
		return "", ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(ctx, user.ID)
	if err != nil {
		log.Error("failed to issue token after login",
			slog.String("error", err.Error()),
			slog.String("user_id", user.ID.String()))
		return "", &AuthServiceError{Operation: "log_in", Message: "failed to issue token", Err: err}
	}

	log.Info("user logged in", slog.String("user_id", user.ID.String()))
	return token, nil
}
