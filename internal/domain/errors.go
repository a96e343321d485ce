package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when no row matches the requested id
	// within the caller's organization.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate is returned on unique-constraint violations, e.g. a
	// second user with the same email.
	ErrDuplicate = errors.New("duplicate record")

	// ErrDuplicateField is returned when a custom field name is already
	// defined for the same (organization, entity) pair.
	ErrDuplicateField = errors.New("custom field already defined")

	// ErrForeignKey is returned when a write references a row that does
	// not exist.
	ErrForeignKey = errors.New("referenced record does not exist")

	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
)

// ValidationError reports a client-side shape problem: a missing
// required field, a bad enum value, a type mismatch on a custom field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %q: %s", e.Field, e.Reason)
}

func Invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
