package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/portfolio-service/internal/auth"
	"github.com/spec-kit/portfolio-service/internal/config"
	"github.com/spec-kit/portfolio-service/internal/domain"
	"github.com/spec-kit/portfolio-service/internal/repository"
	"github.com/spec-kit/portfolio-service/internal/session"
	"github.com/spec-kit/portfolio-service/internal/validation"
	apperrors "github.com/spec-kit/portfolio-service/pkg/util/errorutil"
)

// LoginResult carries the authenticated user together with the issued
// session token.
type LoginResult struct {
	User      domain.User
	Token     string
	ExpiresAt time.Time
}

// AccountService coordinates registration, login and logout over the Users
// collection and the session holder.
type AccountService struct {
	users      *repository.UserCollection
	sessions   session.Holder
	tokenMgr   *auth.TokenManager
	bcryptCost int
}

// AccountDependencies bundles requirements for the account service.
type AccountDependencies struct {
	Users    *repository.UserCollection
	Sessions session.Holder
}

// NewAccountService builds the service.
func NewAccountService(cfg config.Config, deps AccountDependencies) *AccountService {
	return &AccountService{
		users:      deps.Users,
		sessions:   deps.Sessions,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.SessionTTLMinutes),
		bcryptCost: cfg.Auth.BcryptCost,
	}
}

// Register creates a new account. Validation runs before any mutation; a
// duplicate email fails without side effects. Registration does not log the
// user in.
func (s *AccountService) Register(ctx context.Context, name, email, password string, role domain.Role) (*domain.User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)

	if errs := validation.Registration(name, email, password, role); len(errs) > 0 {
		return nil, apperrors.NewValidationError("validation failed", errs.Details())
	}

	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.NewDuplicateEmail()
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}
	if err := s.users.Append(ctx, user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Login authenticates the email/password pair. On success it writes the
// user record into the session holder under a fresh session id and issues a
// signed token referencing it. Failure is reported identically on both
// fields so the response does not confirm which one was wrong.
func (s *AccountService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	email = strings.TrimSpace(email)

	if errs := validation.Credentials(email, password); len(errs) > 0 {
		return nil, apperrors.NewValidationError("validation failed", errs.Details())
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.NewInvalidCredentials()
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, apperrors.NewInvalidCredentials()
	}

	sessionID := uuid.NewString()
	if err := s.sessions.Put(ctx, sessionID, *user); err != nil {
		return nil, err
	}

	token, expiresAt, err := s.tokenMgr.GenerateToken(sessionID)
	if err != nil {
		return nil, err
	}
	return &LoginResult{User: *user, Token: token, ExpiresAt: expiresAt}, nil
}

// Logout clears the session slot unconditionally.
func (s *AccountService) Logout(ctx context.Context, sessionID string) error {
	return s.sessions.Delete(ctx, sessionID)
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AccountService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
