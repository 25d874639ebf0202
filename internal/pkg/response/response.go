package response

import "github.com/gofiber/fiber/v2"

// Response represents a standard API response
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Code    string      `json:"code,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// Error codes carried in failure bodies
const (
	CodeBadRequest      = "bad_request"
	CodeMissingField    = "missing_field"
	CodeUnauthenticated = "unauthenticated"
	CodeInvalidLogin    = "invalid_credentials"
	CodeForbidden       = "forbidden"
	CodeNotAuthorized   = "not_authorized"
	CodeNotFound        = "not_found"
	CodeConflict        = "conflict"
	CodeStoreFailure    = "store_failure"
	CodeRateLimited     = "rate_limited"
	CodeTooLarge        = "payload_too_large"
)

// Success sends a success response
func Success(c *fiber.Ctx, message string, data interface{}) error {
	return c.JSON(Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Error sends an error response with a machine readable code
func Error(c *fiber.Ctx, statusCode int, code, message string) error {
	return c.Status(statusCode).JSON(Response{
		Success: false,
		Code:    code,
		Error:   message,
	})
}

// BadRequest sends a 400 bad request response
func BadRequest(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusBadRequest, CodeBadRequest, message)
}

// MissingField sends a 400 response naming the absent input
func MissingField(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusBadRequest, CodeMissingField, message)
}

// Unauthorized sends a 401 response for absent credentials
func Unauthorized(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusUnauthorized, CodeUnauthenticated, message)
}

// InvalidCredentials sends a 401 response for a failed login
func InvalidCredentials(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusUnauthorized, CodeInvalidLogin, message)
}

// Forbidden sends a 403 response for a rejected credential
func Forbidden(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusForbidden, CodeForbidden, message)
}

// NotAuthorized sends a 403 response for a valid credential lacking role or ownership
func NotAuthorized(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusForbidden, CodeNotAuthorized, message)
}

// NotFound sends a 404 not found response
func NotFound(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusNotFound, CodeNotFound, message)
}

// Conflict sends a 409 conflict response
func Conflict(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusConflict, CodeConflict, message)
}

// InternalServerError sends a 500 response; message must not carry store detail
func InternalServerError(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusInternalServerError, CodeStoreFailure, message)
}
