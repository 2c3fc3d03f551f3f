package api

import (
	"errors"
	"fmt"
)

// Sentinel errors for the status classes callers branch on.
// Match with errors.Is.
var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrBadRequest   = errors.New("bad request")
	ErrServer       = errors.New("server error")
)

// Error is a failure response from the backend. Detail carries the backend's
// human-readable message (the `detail` field of the error envelope) and is
// what views show to the user.
type Error struct {
	Status int
	Detail string
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("api: %s (status %d)", e.Detail, e.Status)
	}
	return fmt.Sprintf("api: status %d", e.Status)
}

// Unwrap maps the status code onto the matching sentinel so callers can use
// errors.Is without inspecting numeric codes.
func (e *Error) Unwrap() error {
	switch {
	case e.Status == 401:
		return ErrUnauthorized
	case e.Status == 404:
		return ErrNotFound
	case e.Status == 409:
		return ErrConflict
	case e.Status >= 400 && e.Status < 500:
		return ErrBadRequest
	case e.Status >= 500:
		return ErrServer
	}
	return nil
}

// Message extracts the backend's message from err, falling back to the given
// string for transport-level failures that carry no usable detail.
func Message(err error, fallback string) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		return apiErr.Detail
	}
	return fallback
}
