package domain

import (
	"errors"
	"strings"
)

// Error classes surfaced by the wizard. None of them is fatal: the caller
// corrects the input or repeats the action.
var (
	// ErrValidation marks input that fails completeness or format rules.
	ErrValidation = errors.New("validation failed")
	// ErrVerification marks a one-time code that does not match.
	ErrVerification = errors.New("verification failed")
	// ErrGateBlocked is returned when launch is attempted before the
	// payment method has been verified.
	ErrGateBlocked = errors.New("payment method not verified")
	// ErrInvalidTransition is returned when an event is not accepted in
	// the current state of a flow.
	ErrInvalidTransition = errors.New("invalid state transition")
	// ErrNotFound is returned when a required record is absent.
	ErrNotFound = errors.New("not found")
)

// FieldError describes one failed rule on one input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError collects every failed rule of a single validation pass.
// It matches ErrValidation with errors.Is.
type ValidationError struct {
	Fields []FieldError `json:"fields"`
}

// Add records a failed rule.
func (e *ValidationError) Add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

// Err returns e when at least one rule failed and nil otherwise.
func (e *ValidationError) Err() error {
	if e == nil || len(e.Fields) == 0 {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return ErrValidation.Error() + ": " + strings.Join(parts, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// Invalid builds a ValidationError with a single failed rule.
func Invalid(field, message string) error {
	v := &ValidationError{}
	v.Add(field, message)
	return v
}
