package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/user/purpleshorts-go/apperror"
	"github.com/user/purpleshorts-go/config"
)

// Closed error set for authentication operations.
const (
	CodeConflictingUsername  = "CONFLICTING_USERNAME"
	CodeIncorrectCredentials = "INCORRECT_USERNAME_OR_PASSWORD"
	CodeUnknown              = "UNKNOWN"
)

// pgUniqueViolation is the PostgreSQL error code for unique constraint violations.
const pgUniqueViolation = "23505"

// Service provides sign-up and log-in.
type Service interface {
	SignUp(ctx context.Context, req SignUpRequest) (*AuthPayload, error)
	LogIn(ctx context.Context, req LogInRequest) (*AuthPayload, error)
}

type authService struct {
	store  UserStore
	cfg    *config.AuthConfig
	logger *zap.Logger
}

// NewService creates the authentication service.
func NewService(store UserStore, cfg *config.AuthConfig, logger *zap.Logger) Service {
	return &authService{store: store, cfg: cfg, logger: logger}
}

// SignUp creates a new account and returns a signed token for it.
// A taken username fails with CONFLICTING_USERNAME; the pre-check is backed by
// the unique constraint on users.username so a concurrent duplicate sign-up
// still resolves to the same error.
func (s *authService) SignUp(ctx context.Context, req SignUpRequest) (*AuthPayload, error) {
	_, err := s.store.GetUserByUsername(ctx, req.Username)
	if err == nil {
		return nil, apperror.NewConflictError("Username already exists", nil).WithCode(CodeConflictingUsername)
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		s.logger.Error("sign-up: username lookup failed", zap.Error(err))
		return nil, apperror.NewInternalError("Unknown error", err).WithCode(CodeUnknown)
	}

	digest, err := HashPassword(req.Password)
	if err != nil {
		s.logger.Error("sign-up: password hashing failed", zap.Error(err))
		return nil, apperror.NewInternalError("Unknown error", err).WithCode(CodeUnknown)
	}

	user := &User{
		ID:             uuid.NewString(),
		Username:       req.Username,
		Name:           req.Name,
		HashedPassword: digest,
	}
	if err := s.store.CreateUser(ctx, user); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation && strings.Contains(pgErr.ConstraintName, "username") {
			return nil, apperror.NewConflictError("Username already exists", nil).WithCode(CodeConflictingUsername)
		}
		s.logger.Error("sign-up: user insert failed", zap.Error(err))
		return nil, apperror.NewInternalError("Unknown error", err).WithCode(CodeUnknown)
	}

	token, err := IssueToken(s.cfg, user.ID, user.Username)
	if err != nil {
		s.logger.Error("sign-up: token issuance failed", zap.Error(err))
		return nil, apperror.NewInternalError("Unknown error", err).WithCode(CodeUnknown)
	}
	return &AuthPayload{Token: token, User: user}, nil
}

// LogIn authenticates a username/password pair and returns a signed token.
// A missing user and a wrong password are indistinguishable to the client.
func (s *authService) LogIn(ctx context.Context, req LogInRequest) (*AuthPayload, error) {
	user, err := s.store.GetUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewAuthError("Incorrect username or password", nil).WithCode(CodeIncorrectCredentials)
		}
		s.logger.Error("log-in: username lookup failed", zap.Error(err))
		return nil, apperror.NewInternalError("Unknown error", err).WithCode(CodeUnknown)
	}

	if !CheckPassword(user.HashedPassword, req.Password) {
		return nil, apperror.NewAuthError("Incorrect username or password", nil).WithCode(CodeIncorrectCredentials)
	}

	token, err := IssueToken(s.cfg, user.ID, user.Username)
	if err != nil {
		s.logger.Error("log-in: token issuance failed", zap.Error(err))
		return nil, apperror.NewInternalError("Unknown error", err).WithCode(CodeUnknown)
	}
	return &AuthPayload{Token: token, User: user}, nil
}
