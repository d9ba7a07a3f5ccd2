package models

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation is returned for out-of-domain input. It is always
	// surfaced before any mutation is attempted.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound is returned when a household, member, account or record is missing.
	ErrNotFound = errors.New("not found")

	// ErrAccountNotFound is returned when a member has no usable designated account.
	ErrAccountNotFound = fmt.Errorf("account %w", ErrNotFound)

	// ErrOperationFailed is returned when the store rejected an atomic batch.
	// Nothing from the batch was committed.
	ErrOperationFailed = errors.New("operation failed")
)

// Validationf returns an error wrapping ErrValidation.
func Validationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// NotFoundf returns an error wrapping ErrNotFound.
func NotFoundf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}
