// Package domain holds the error taxonomy shared by the repository, service and API layers.
package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors, matched with errors.Is
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("already exists")
	ErrValidation   = errors.New("validation failed")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
)

// NotFound returns an ErrNotFound naming the missing entity
func NotFound(entity string, id uint) error {
	return fmt.Errorf("%s %d: %w", entity, id, ErrNotFound)
}

// Conflict returns an ErrConflict describing the duplicated field
func Conflict(entity, field, value string) error {
	return fmt.Errorf("%s with %s %q %w", entity, field, value, ErrConflict)
}

// Invalid wraps a validation failure
func Invalid(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %v", ErrValidation, err)
}

// Invalidf formats a validation failure
func Invalidf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// Code returns the stable error code exposed to API clients
func Code(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNotFound):
		return "NOT_FOUND"
	case errors.Is(err, ErrConflict):
		return "CONFLICT"
	case errors.Is(err, ErrValidation):
		return "VALIDATION"
	case errors.Is(err, ErrUnauthorized):
		return "UNAUTHENTICATED"
	case errors.Is(err, ErrForbidden):
		return "FORBIDDEN"
	default:
		return "INTERNAL"
	}
}
