package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/devhussain7/medium-api/internal/domain"
	"github.com/devhussain7/medium-api/internal/service/auth"
	"github.com/devhussain7/medium-api/internal/store"
)

// AuthResult is the outcome of a successful signup or signin: the user's
// store-assigned id and a freshly minted token identifying them.
type AuthResult struct {
	UserID int64
	Token  string
}

// UserService provides account creation and credential authentication.
type UserService interface {
	// Signup validates the input, creates the user record and returns the
	// new id together with an issued token.
	// Returns store.ErrUsernameExists when the username is taken and
	// domain validation errors for malformed input.
	Signup(ctx context.Context, username, name, password string) (*AuthResult, error)

	// Signin authenticates the given credentials and returns the user's id
	// together with an issued token.
	// Returns ErrInvalidCredentials when no user matches.
	Signin(ctx context.Context, username, password string) (*AuthResult, error)
}

// UserServiceImpl implements the UserService interface
type UserServiceImpl struct {
	userStore  store.UserStore
	jwtService auth.JWTService
	hasher     auth.PasswordHasher
	verifier   auth.PasswordVerifier
	db         *sql.DB
	runInTx    func(ctx context.Context, db *sql.DB, fn store.TxFn) error
	logger     *slog.Logger
}

// NewUserService creates a new UserService
func NewUserService(
	userStore store.UserStore,
	jwtService auth.JWTService,
	hasher auth.PasswordHasher,
	verifier auth.PasswordVerifier,
	db *sql.DB,
	logger *slog.Logger,
) *UserServiceImpl {
	return &UserServiceImpl{
		userStore:  userStore,
		jwtService: jwtService,
		hasher:     hasher,
		verifier:   verifier,
		db:         db,
		runInTx:    store.RunInTransaction,
		logger:     logger.With("component", "user_service"),
	}
}

// Signup creates a new user and mints a token for the assigned id.
// Only a salted one-way hash of the password is persisted.
func (s *UserServiceImpl) Signup(
	ctx context.Context,
	username, name, password string,
) (*AuthResult, error) {
	user, err := domain.NewUser(username, name, password)
	if err != nil {
		s.logger.Debug("signup rejected by domain validation",
			"error", err)
		return nil, err
	}

	hashed, err := s.hasher.Hash(user.Password)
	if err != nil {
		s.logger.Error("failed to hash password", "error", err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user.HashedPassword = hashed
	user.Password = ""

	// The insert runs in a transaction; uniqueness of the username is
	// enforced by the store constraint, so concurrent signups race safely.
	err = s.runInTx(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		return s.userStore.WithTx(tx).Create(ctx, user)
	})
	if err != nil {
		if errors.Is(err, store.ErrUsernameExists) {
			s.logger.Debug("attempted signup with existing username")
		} else {
			s.logger.Error("failed to save user", "error", err)
		}
		return nil, err
	}

	token, err := s.jwtService.GenerateToken(ctx, user.ID)
	if err != nil {
		s.logger.Error("failed to generate token after signup",
			"error", err,
			"user_id", user.ID)
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	s.logger.Info("user signed up", "user_id", user.ID)
	return &AuthResult{UserID: user.ID, Token: token}, nil
}

// Signin verifies the credentials against the stored hash and mints a
// token on success. Missing users and wrong passwords both surface as
// ErrInvalidCredentials.
func (s *UserServiceImpl) Signin(
	ctx context.Context,
	username, password string,
) (*AuthResult, error) {
	user, err := s.userStore.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			s.logger.Debug("signin attempt for unknown username")
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("failed to look up user for signin", "error", err)
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := s.verifier.Compare(user.HashedPassword, password); err != nil {
		s.logger.Debug("signin attempt with wrong password",
			"user_id", user.ID)
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(ctx, user.ID)
	if err != nil {
		s.logger.Error("failed to generate token after signin",
			"error", err,
			"user_id", user.ID)
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	s.logger.Info("user signed in", "user_id", user.ID)
	return &AuthResult{UserID: user.ID, Token: token}, nil
}

// Ensure UserServiceImpl implements UserService
var _ UserService = (*UserServiceImpl)(nil)
