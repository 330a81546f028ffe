package domain

import "errors"

// Sentinel errors shared by repositories and services.
var (
	ErrNotFound    = errors.New("not found")
	ErrDuplicateID = errors.New("duplicate id")
	ErrValidation  = errors.New("validation failed")
)

// Sentinel errors for event registration.
var (
	ErrEventFull         = errors.New("event is full")
	ErrAlreadyRegistered = errors.New("already registered for this event")
	ErrNotRegistered     = errors.New("not registered for this event")
	ErrNotRsvpRequired   = errors.New("this event does not require RSVP")
)

// ValidationError reports the first rejected field of an input.
// Error returns Message unchanged so it can be shown to the member as-is.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// NewValidationError returns a ValidationError for field with the given message.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Is lets errors.Is(err, ErrValidation) match any ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
