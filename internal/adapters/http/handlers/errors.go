package handlers

import (
	"errors"

	"cmms-backend/internal/core/domain"
	"cmms-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

// respondError maps a service error onto the response envelope.
// Unclassified errors are logged with detail and answered with an opaque 500.
func respondError(c *fiber.Ctx, err error, action string) error {
	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		return response.Unauthorized(c, "Access token required")
	case errors.Is(err, domain.ErrInvalidCredentials):
		return response.InvalidCredentials(c, "Invalid email or password")
	case errors.Is(err, domain.ErrForbidden):
		return response.Forbidden(c, "Invalid or expired access token")
	case errors.Is(err, domain.ErrNotAuthorized):
		return response.NotAuthorized(c, "You don't have permission to perform this action")
	case errors.Is(err, domain.ErrMissingField):
		return response.MissingField(c, err.Error())
	case errors.Is(err, domain.ErrInvalidInput):
		return response.BadRequest(c, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		return response.NotFound(c, err.Error())
	case errors.Is(err, domain.ErrReferentialConflict):
		return response.Conflict(c, "Resource is still referenced by other records")
	case errors.Is(err, domain.ErrDuplicateEntry):
		return response.Conflict(c, "Email is already registered")
	case errors.Is(err, domain.ErrAlreadyReported), errors.Is(err, domain.ErrInvalidTransition):
		return response.Conflict(c, err.Error())
	}

	log.Errorf("❌ Failed to %s: %v", action, err)
	return response.InternalServerError(c, "Failed to "+action)
}
