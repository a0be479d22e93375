package diagram

import "fmt"

// ValidationError is the typed failure surface of the validator and the
// statement parsers. The message wording is part of the contract with
// the editing collaborator, which surfaces it verbatim and keeps the
// previously accepted value.
type ValidationError struct {
	Message string
}

// Error returns the human-readable message.
func (e *ValidationError) Error() string { return e.Message }

// NewValidationError builds a ValidationError from a format string.
func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}
