package middleware

import (
	"errors"

	"cmms-backend/internal/core/domain"
	"cmms-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

const principalKey = "principal"

// Authorizer turns an Authorization header into a principal
type Authorizer interface {
	Authorize(header string) (*domain.Principal, error)
}

// AuthMiddleware rejects requests without a valid bearer credential and
// stores the principal in the request locals
func AuthMiddleware(auth Authorizer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, err := auth.Authorize(c.Get(fiber.HeaderAuthorization))
		if err != nil {
			if errors.Is(err, domain.ErrUnauthenticated) {
				return response.Unauthorized(c, "Access token required")
			}
			return response.Forbidden(c, "Invalid or expired access token")
		}

		c.Locals(principalKey, principal)
		return c.Next()
	}
}

// RoleMiddleware allows only principals holding one of the given roles
func RoleMiddleware(allowed ...domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal := GetPrincipal(c)
		if principal == nil {
			return response.Unauthorized(c, "Unauthorized")
		}
		if !principal.Is(allowed...) {
			return response.NotAuthorized(c, "You don't have permission to access this resource")
		}
		return c.Next()
	}
}

// AdminOnly allows only administrators
func AdminOnly() fiber.Handler {
	return RoleMiddleware(domain.RoleAdmin)
}

// GetPrincipal returns the principal set by AuthMiddleware, or nil
func GetPrincipal(c *fiber.Ctx) *domain.Principal {
	p, _ := c.Locals(principalKey).(*domain.Principal)
	return p
}
