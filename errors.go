package formdex

import (
	"errors"

	"github.com/kailas-cloud/formdex/internal/domain"
)

// Sentinel errors, for use with errors.Is.
var (
	ErrFormNotFound      = domain.ErrFormNotFound
	ErrFieldNotFound     = domain.ErrFieldNotFound
	ErrAlreadyExists     = domain.ErrAlreadyExists
	ErrInvalidMove       = domain.ErrInvalidMove
	ErrInvalidForm       = domain.ErrInvalidForm
	ErrMalformedDocument = domain.ErrMalformedDocument
	ErrUnknownFieldType  = domain.ErrUnknownKind
	ErrUnsupportedField  = domain.ErrUnsupportedKind
	ErrRemoteUnavailable = domain.ErrRemoteUnavailable
	ErrPublishRejected   = domain.ErrPublishRejected
)

// ValidationMessages extracts the per-rule messages from a validation
// failure, or nil when err is not one.
func ValidationMessages(err error) []string {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return ve.Messages
	}
	return nil
}
