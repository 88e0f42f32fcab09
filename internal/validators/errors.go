package validators

import (
	"errors"
	"strings"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrNoFieldsToUpdate = errors.New("At least one field must be provided for update")
)

// ValidationError carries every field-level message produced by a single
// validation run.
type ValidationError struct {
	Messages []string

	// Err is an optional sentinel describing a record-level failure.
	Err error
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, "; ")
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError builds a [ValidationError] from messages.
func NewValidationError(messages ...string) *ValidationError {
	return &ValidationError{Messages: messages}
}

// Messages returns the messages carried by err if it is a
// [ValidationError], and nil otherwise.
func Messages(err error) []string {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Messages
	}
	return nil
}
