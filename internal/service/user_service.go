package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/handover-labs/handover/internal/domain"
	"github.com/handover-labs/handover/internal/service/auth"
	"github.com/handover-labs/handover/internal/store"
)

// UserService provides registration, login, and user lookup.
type UserService interface {
	// Register creates a new user with the given username and plaintext
	// password. Returns store.ErrUsernameExists when the username is taken.
	Register(ctx context.Context, username, password string) (*domain.User, error)

	// Login verifies the credentials and issues a session token.
	// Returns store.ErrUserNotFound for an unknown username and
	// ErrWrongPassword for a bad password.
	Login(ctx context.Context, username, password string) (string, error)

	// GetByUsername retrieves a user by username.
	// Returns store.ErrUserNotFound if the user does not exist.
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

// UserServiceImpl implements the UserService interface.
type UserServiceImpl struct {
	userStore    store.UserStore
	tokenService auth.TokenService
	hasher       auth.PasswordHasher
	verifier     auth.PasswordVerifier
	db           *sql.DB
	runTx        store.TxRunner
	logger       *slog.Logger
}

// Ensure UserServiceImpl implements UserService interface
var _ UserService = (*UserServiceImpl)(nil)

// NewUserService creates a new UserService.
func NewUserService(
	userStore store.UserStore,
	tokenService auth.TokenService,
	hasher auth.PasswordHasher,
	verifier auth.PasswordVerifier,
	db *sql.DB,
	logger *slog.Logger,
) *UserServiceImpl {
	return &UserServiceImpl{
		userStore:    userStore,
		tokenService: tokenService,
		hasher:       hasher,
		verifier:     verifier,
		db:           db,
		runTx:        store.RunInTransaction,
		logger:       logger.With("component", "user_service"),
	}
}

// Register creates a new user, hashing the password before it reaches the
// store. The creation runs in a transaction so a half-created user never
// becomes visible.
func (s *UserServiceImpl) Register(
	ctx context.Context,
	username, password string,
) (*domain.User, error) {
	user, err := domain.NewUser(username, password)
	if err != nil {
		s.logger.Warn("invalid registration data",
			"error", err,
			"username", username)
		return nil, err
	}

	digest, err := s.hasher.Hash(password)
	if err != nil {
		s.logger.Error("failed to hash password",
			"error", err,
			"username", username)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user.HashedPassword = digest
	user.Password = ""

	err = s.runTx(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		return s.userStore.WithTx(tx).Create(ctx, user)
	})
	if err != nil {
		if errors.Is(err, store.ErrUsernameExists) {
			s.logger.Debug("attempted to register existing username",
				"username", username)
			return nil, store.ErrUsernameExists
		}
		s.logger.Error("failed to save user",
			"error", err,
			"username", username)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("user registered",
		"user_id", user.ID,
		"username", user.Username)

	return user, nil
}

// Login verifies credentials against the stored digest and, on success,
// issues a session token asserting the user's identity.
func (s *UserServiceImpl) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.userStore.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			s.logger.Debug("login attempt for unknown user", "username", username)
			return "", store.ErrUserNotFound
		}
		s.logger.Error("failed to look up user for login",
			"error", err,
			"username", username)
		return "", fmt.Errorf("failed to look up user: %w", err)
	}

	if err := s.verifier.Compare(user.HashedPassword, password); err != nil {
		s.logger.Debug("wrong password", "username", username)
		return "", ErrWrongPassword
	}

	token, err := s.tokenService.GenerateSessionToken(ctx, user.Username)
	if err != nil {
		s.logger.Error("failed to issue session token",
			"error", err,
			"username", username)
		return "", fmt.Errorf("failed to issue session token: %w", err)
	}

	s.logger.Info("user logged in",
		"user_id", user.ID,
		"username", user.Username)

	return token, nil
}

// GetByUsername retrieves a user by username.
func (s *UserServiceImpl) GetByUsername(
	ctx context.Context,
	username string,
) (*domain.User, error) {
	return s.userStore.GetByUsername(ctx, username)
}
