package application

import (
	"errors"
	"fmt"

	"redpoint/internal/domain"
)

// Sentinel errors for common conditions
var (
	ErrNotFound           = domain.ErrNodeNotFound
	ErrInvalidPath        = domain.ErrInvalidPath
	ErrNotInitialized     = errors.New("redpoint system not initialized")
	ErrAlreadyInitialized = errors.New("redpoint system already initialized")
)

// ValidationError reports a rejected input field. Err, when set, is the
// underlying cause such as ErrInvalidPath.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// SetError represents a failed count update
type SetError struct {
	Path  string
	Count int
	Err   error
}

func (e *SetError) Error() string {
	return fmt.Sprintf("cannot set %s to %d: %v", e.Path, e.Count, e.Err)
}

func (e *SetError) Unwrap() error {
	return e.Err
}
