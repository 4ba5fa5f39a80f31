package domain

import (
	"errors"
	"fmt"
)

// Error categories surfaced by the services. Handlers translate these to HTTP
// statuses; anything else is treated as an internal error.
var (
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("incorrect email or password")
	ErrUnauthenticated    = errors.New("could not validate credentials")
	ErrNotFound           = errors.New("record not found")
)

// ValidationError reports malformed or out-of-range input. It is always
// returned before storage is touched.
type ValidationError struct {
	Field  string // Offending field
	Reason string // Human-readable reason
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
