// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Catalog errors.
	ErrNotFound       = errors.New("not found")
	ErrCatalogCorrupt = errors.New("card catalog corrupt")

	// Validation errors. These are the only errors a caller can provoke;
	// everything else degrades to a defined fallback.
	ErrInvalidQuestion  = errors.New("invalid question")
	ErrInvalidDrawCount = errors.New("invalid draw count")
	ErrUnknownSpread    = errors.New("unknown spread")

	// Collaborator errors.
	ErrGeneratorUnavailable = errors.New("text generator unavailable")
)

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}

// IsRetryable determines if an error should trigger a retry.
func IsRetryable(err error) bool {
	if errors.Is(err, ErrRateLimit) {
		return true
	}

	var retryableErr *RetryableError
	if errors.As(err, &retryableErr) {
		return retryableErr.Retryable
	}

	return false
}
