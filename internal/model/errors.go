package model

import (
	"errors"
	"fmt"
)

// ValidationError reports a record that failed construction at the boundary.
// It never reaches the store.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// IsValidation reports whether err is (or wraps) a *ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}
