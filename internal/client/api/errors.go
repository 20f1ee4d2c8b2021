package api

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable marks transport failures: the server could not be
	// reached or did not answer in time.
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized marks a 401 response. By the time a caller sees it the
	// session has already been evicted.
	ErrUnauthorized = errors.New("unauthorized")
)

// Error is a well-formed rejection from the backend: a non-2xx status whose
// body carried a message. The message is surfaced to the user verbatim.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("unexpected status %d", e.Status)
}

// BackendMessage returns the backend-supplied message, if any. The async
// operation layer prefers this over the generic error text.
func (e *Error) BackendMessage() string {
	return e.Message
}
