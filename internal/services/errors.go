package services

import "fmt"

// ValidationError marks a client-side input fault: missing required input
// or an unparsable field. The boundary maps it to a client-fault response.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// NewValidationError creates a validation fault with the given reason.
func NewValidationError(reason string) *ValidationError {
	return &ValidationError{Reason: reason}
}

// CollaboratorError marks a failure inside a delegated model (the forecast
// engine or the sentiment analyzer). The boundary maps it to a server-fault
// response.
type CollaboratorError struct {
	Collaborator string
	Err          error
}

func (e *CollaboratorError) Error() string {
	return fmt.Sprintf("%s collaborator: %v", e.Collaborator, e.Err)
}

func (e *CollaboratorError) Unwrap() error {
	return e.Err
}
