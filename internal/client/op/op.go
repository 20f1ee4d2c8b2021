// Package op models the lifecycle shared by every remote-backed operation:
// pending, then fulfilled or rejected. It also owns error normalization, so
// the rest of the client never shows a raw transport error to the user.
package op

import (
	"context"
	"errors"
)

// Status is the observable phase of a named operation.
type Status string

const (
	StatusIdle      Status = "idle"
	StatusPending   Status = "pending"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

// State is one operation slot inside a service's state slice. A new dispatch
// replaces whatever outcome the previous one left behind; overlapping
// dispatches of the same kind are not de-duplicated, last write wins.
type State struct {
	Status Status
	Err    string
}

// Begin marks the operation pending and clears any prior error.
func (s *State) Begin() {
	s.Status = StatusPending
	s.Err = ""
}

// Succeed marks the operation fulfilled and clears any prior error.
func (s *State) Succeed() {
	s.Status = StatusSucceeded
	s.Err = ""
}

// Fail marks the operation rejected with a normalized message. Data fields
// owned by the caller are left untouched.
func (s *State) Fail(msg string) {
	s.Status = StatusFailed
	s.Err = msg
}

// Loading reports whether the operation is in flight.
func (s State) Loading() bool {
	return s.Status == StatusPending
}

// backendMessager is implemented by errors that carry a message supplied by
// the backend (see api.Error).
type backendMessager interface {
	BackendMessage() string
}

// Message normalizes a rejection into a human-readable string: the nested
// backend message when present, otherwise the generic error text, otherwise
// the operation-specific fallback.
func Message(err error, fallback string) string {
	if err == nil {
		return fallback
	}

	var bm backendMessager
	if errors.As(err, &bm) && bm.BackendMessage() != "" {
		return bm.BackendMessage()
	}

	if msg := err.Error(); msg != "" {
		return msg
	}
	return fallback
}

// Run drives a remote call through the three phases. begin is invoked before
// the call, fulfill with the result on success, and fail with the normalized
// message on rejection. The raw error is returned for callers that need to
// branch on it (e.g. errors.Is checks); state mutation stays inside the
// callbacks so each service can hold its own lock.
func Run[T any](ctx context.Context, begin func(), call func(context.Context) (T, error), fulfill func(T), fail func(msg string), fallback string) error {
	begin()

	result, err := call(ctx)
	if err != nil {
		fail(Message(err, fallback))
		return err
	}

	fulfill(result)
	return nil
}
