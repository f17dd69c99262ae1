package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/portfolio-service/internal/domain"
	"github.com/spec-kit/portfolio-service/internal/session"
	apperrors "github.com/spec-kit/portfolio-service/pkg/util/errorutil"
)

const principalKey = "auth_principal"

// Principal represents the authenticated caller resolved from the session.
type Principal struct {
	SessionID string
	User      domain.User
}

// Middleware validates bearer tokens and resolves the session record.
type Middleware struct {
	tokens   *TokenManager
	sessions session.Holder
}

// NewMiddleware constructs the middleware.
func NewMiddleware(tokens *TokenManager, sessions session.Holder) *Middleware {
	return &Middleware{tokens: tokens, sessions: sessions}
}

// Handle enforces authentication for protected routes.
func (m *Middleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return apperrors.NewUnauthorized("missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return apperrors.NewUnauthorized("invalid authorization header")
	}

	claims, err := m.tokens.ParseToken(parts[1])
	if err != nil {
		return apperrors.NewUnauthorized("invalid token")
	}

	user, err := m.sessions.Get(c.UserContext(), claims.SessionID)
	if err != nil {
		return apperrors.MapError(err)
	}
	if user == nil {
		// Token is syntactically fine but the session was logged out or
		// expired out from under it.
		return apperrors.NewUnauthorized("session expired")
	}

	c.Locals(principalKey, &Principal{SessionID: claims.SessionID, User: *user})
	return c.Next()
}

// PrincipalFromContext retrieves the authenticated caller.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}
