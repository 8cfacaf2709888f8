package apperror

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// ValidationError rejects malformed input at creation/update time. Nothing is
// persisted when one is returned.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// ConflictError rejects an operation that would violate an invariant
// (duplicate active assignment, deleting a system role). State is unchanged.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

// NotFoundError signals that a referenced document does not resolve.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

func Validation(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

func Conflict(format string, args ...any) error {
	return &ConflictError{Message: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...any) error {
	return &NotFoundError{Message: fmt.Sprintf(format, args...)}
}

func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

func IsConflict(err error) bool {
	var target *ConflictError
	return errors.As(err, &target)
}

func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

// StatusCode maps the taxonomy onto HTTP statuses; anything unrecognized is an
// infrastructure failure and stays a 500.
func StatusCode(err error) int {
	switch {
	case IsValidation(err):
		return fiber.StatusBadRequest
	case IsConflict(err):
		return fiber.StatusConflict
	case IsNotFound(err):
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}
