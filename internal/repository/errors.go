package repository

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when presence was required, e.g. an update
	// on a missing id.
	ErrNotFound = errors.New("record not found")

	// ErrNotAuthenticated is returned when no user context exists where
	// one is required.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrNotImplemented marks operations a partial binding does not carry.
	// Callers must be able to catch it as a distinct condition.
	ErrNotImplemented = errors.New("not implemented by this binding")
)

// RemoteError wraps a transport-level failure from a remote binding.
type RemoteError struct {
	StatusCode int
	Message    string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("remote backend error: status %d: %s", e.StatusCode, e.Message)
}
