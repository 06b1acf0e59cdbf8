package apperror

import (
	"errors"
	"fmt"
)

// Sentinel errors for the content system. Services return these (possibly
// wrapped); the API boundary translates them to HTTP responses and the
// client session translates them into its error field.
var (
	ErrNotFound             = errors.New("content not found")
	ErrUnauthorized         = errors.New("unauthorized")
	ErrInvalidToken         = errors.New("invalid token")
	ErrValidation           = errors.New("invalid content format")
	ErrAuthRequired         = errors.New("authentication required")
	ErrAssistantUnavailable = errors.New("assistant unavailable")
)

// StoreError wraps a lower-level storage or network failure.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store: %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func NewStoreError(op string, err error) error {
	return &StoreError{Op: op, Err: err}
}
