package booking

import (
	"errors"
	"fmt"
)

// ErrSuperseded is returned when a newer rate request for the same session replaced this one.
// Callers must drop the result silently.
var ErrSuperseded = errors.New("rate request superseded by a newer selection")

// ErrCheckoutNotFound is returned when the session has no checkout in progress.
var ErrCheckoutNotFound = errors.New("no checkout in progress")

// ValidationError is a local check that failed before any call was made.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ErrPhoneRequired is returned for operations keyed by phone when the session has none.
var ErrPhoneRequired = NewValidationError("phone", "A mobile number is required for this action")

func NewValidationError(field, msg string) error {
	return &ValidationError{
		Field:   field,
		Message: msg,
	}
}

// IsValidation reports whether err carries a *ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
