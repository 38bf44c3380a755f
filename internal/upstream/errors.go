package upstream

import (
	"errors"
	"fmt"
)

// ErrorType classifies an upstream failure for presentation decisions.
type ErrorType string

const (
	// ErrorNetwork means no response reached us at all.
	ErrorNetwork ErrorType = "network"
	// ErrorServer is a 5xx response.
	ErrorServer ErrorType = "server"
	// ErrorRequest is a 4xx response other than the specifically handled 401/404.
	ErrorRequest ErrorType = "request"
	// ErrorUnknown is anything that does not fit the other classes.
	ErrorUnknown ErrorType = "unknown"
)

// ErrGuestSession marks a 401 from an unauthenticated session. Callers treat
// it as an accepted outcome, not an application error.
var ErrGuestSession = errors.New("upstream: guest session")

// Error is a classified failure from the marketplace API.
type Error struct {
	Type   ErrorType
	Status int
	Op     string
	Err    error
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("upstream: %s returned status %d (%s)", e.Op, e.Status, e.Type)
	}
	return fmt.Sprintf("upstream: %s failed (%s): %v", e.Op, e.Type, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// statusError builds a classified error from a non-2xx response status.
func statusError(op string, status int) *Error {
	e := &Error{Status: status, Op: op}
	switch {
	case status >= 500:
		e.Type = ErrorServer
	case status >= 400:
		e.Type = ErrorRequest
	default:
		e.Type = ErrorUnknown
	}
	return e
}

// transportError wraps a failure that produced no response.
func transportError(op string, err error) *Error {
	return &Error{Type: ErrorNetwork, Op: op, Err: err}
}

// TypeOf extracts the error class, defaulting to unknown for errors that did
// not originate here.
func TypeOf(err error) ErrorType {
	var ue *Error
	if errors.As(err, &ue) {
		return ue.Type
	}
	return ErrorUnknown
}
