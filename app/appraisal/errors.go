package appraisal

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the appraisal core. Handlers match these
// with errors.Is and map them to HTTP statuses; nothing in this package
// panics on bad input.
var (
	ErrUnknownCadre      = errors.New("unknown cadre")
	ErrUnknownSection    = errors.New("unknown section")
	ErrFrozen            = errors.New("external assignments are frozen")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrNotFound          = errors.New("not found")
	ErrNotYetEvaluated   = errors.New("no submitted interaction evaluations")
)

// ValidationError reports a single malformed or missing field. The field
// is recovered locally (clamped or rejected); the rest of the request is
// unaffected.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// NewValidationError builds a ValidationError for one field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
