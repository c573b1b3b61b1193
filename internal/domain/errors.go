package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrFormNotFound signals a missing stored form.
	ErrFormNotFound = errors.New("form not found")
	// ErrFieldNotFound signals that no field with the requested id exists in the form.
	ErrFieldNotFound = errors.New("field not found")
	// ErrAlreadyExists signals a duplicate stored form.
	ErrAlreadyExists = errors.New("already exists")
	// ErrInvalidMove signals a move operation at a sequence boundary.
	ErrInvalidMove = errors.New("invalid move")
	// ErrInvalidForm signals that a form failed validation.
	ErrInvalidForm = errors.New("form validation failed")
	// ErrMalformedDocument signals a persisted document that does not conform to the schema.
	ErrMalformedDocument = errors.New("malformed form document")
	// ErrUnknownKind signals a field kind outside the closed set.
	ErrUnknownKind = errors.New("unknown field kind")
	// ErrUnsupportedKind signals a field kind the publish target cannot represent.
	ErrUnsupportedKind = errors.New("unsupported field kind for export")
	// ErrRemoteUnavailable signals that the publish target could not be reached.
	ErrRemoteUnavailable = errors.New("remote site unavailable")
	// ErrPublishRejected signals that the publish target rejected the request.
	ErrPublishRejected = errors.New("publish rejected by remote site")
)

// ValidationError wraps ErrInvalidForm with the full list of rule violations.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInvalidForm.Error(), strings.Join(e.Messages, "; "))
}

func (e *ValidationError) Unwrap() error { return ErrInvalidForm }

// NewValidationError creates a validation error from collected messages.
func NewValidationError(messages []string) error {
	return &ValidationError{Messages: messages}
}
