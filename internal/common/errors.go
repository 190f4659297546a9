// Package common defines sentinel errors and small helpers shared by the
// TreeKeeper client layers. Callers should use errors.Is to match errors.
package common

import (
	"errors"
	"fmt"
)

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Stored value could not be decoded. Readers recover from it by
	// substituting an empty collection, so it is only ever logged.
	ErrCorruptStore = errors.New("corrupt store")

	// Account errors.
	ErrDuplicateEmail     = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")

	// Session errors.
	ErrUnauthenticated = errors.New("user not authenticated")

	// Input errors.
	ErrValidation = errors.New("validation error")
)

// ValidationError reports a missing or malformed input field.
// It matches ErrValidation with errors.Is.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// Required returns a ValidationError for an empty mandatory field.
func Required(field string) error {
	return &ValidationError{Field: field, Message: "is required"}
}
