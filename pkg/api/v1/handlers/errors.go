package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/labtrack/labtrack/internal/domain"
	"github.com/labtrack/labtrack/internal/logger"
)

// Common error messages
const (
	ErrMsgInvalidDocumentID = "Invalid document id"
	ErrMsgFileRequired      = "Form field \"file\" is required"
	ErrMsgFileUnreadable    = "Uploaded file could not be read"
	ErrMsgInternal          = "Internal server error"
	ErrMsgDatabaseDown      = "Database unavailable"
)

// ErrorResponse is the body of every failed REST request
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// StatusFor maps an error code to its HTTP status
func StatusFor(code string) int {
	switch code {
	case "NOT_FOUND":
		return fiber.StatusNotFound
	case "VALIDATION":
		return fiber.StatusBadRequest
	case "CONFLICT":
		return fiber.StatusConflict
	case "UNAUTHENTICATED":
		return fiber.StatusUnauthorized
	case "FORBIDDEN":
		return fiber.StatusForbidden
	default:
		return fiber.StatusInternalServerError
	}
}

// CodeFor is the inverse of StatusFor, used for errors raised by fiber itself
func CodeFor(status int) string {
	switch status {
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusConflict:
		return "CONFLICT"
	case fiber.StatusUnauthorized:
		return "UNAUTHENTICATED"
	case fiber.StatusForbidden:
		return "FORBIDDEN"
	}
	if status >= fiber.StatusInternalServerError {
		return "INTERNAL"
	}
	return "VALIDATION"
}

// respondWithError writes err with the status of its domain code. Internal
// errors are logged and not echoed to the client.
func respondWithError(c *fiber.Ctx, err error) error {
	code := domain.Code(err)
	status := StatusFor(code)
	msg := err.Error()
	if status == fiber.StatusInternalServerError {
		logger.ErrorWithFields("request failed", map[string]interface{}{
			"path":  c.Path(),
			"error": err.Error(),
		})
		msg = ErrMsgInternal
	}
	return c.Status(status).JSON(ErrorResponse{Error: msg, Code: code})
}

func respondWithMessage(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(ErrorResponse{Error: msg, Code: CodeFor(status)})
}
