package task

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a referenced task id does not exist.
	ErrNotFound = errors.New("task not found")

	// ErrValidation is the kind wrapped by every ValidationError.
	ErrValidation = errors.New("invalid task")
)

// ValidationError reports an invalid field value on create or update.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), e.Msg)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

func validationf(field, format string, args ...any) error {
	return &ValidationError{Field: field, Msg: fmt.Sprintf(format, args...)}
}

func notFound(id string) error {
	return fmt.Errorf("%w: %s", ErrNotFound, id)
}
