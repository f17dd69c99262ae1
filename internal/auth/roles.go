package auth

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/portfolio-service/internal/domain"
)

// RequireStudent ensures the caller is an authenticated student.
func RequireStudent() fiber.Handler {
	return requireRole(domain.RoleStudent)
}

// RequireAdmin ensures the caller is an authenticated faculty admin.
func RequireAdmin() fiber.Handler {
	return requireRole(domain.RoleAdmin)
}

// RequireAnyRole ensures the caller is authenticated, whatever the role.
func RequireAnyRole() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := PrincipalFromContext(c); !ok {
			return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
		}
		return c.Next()
	}
}

func requireRole(role domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
		}
		if principal.User.Role != role {
			return fiber.NewError(http.StatusForbidden, string(role)+" role required")
		}
		return c.Next()
	}
}
