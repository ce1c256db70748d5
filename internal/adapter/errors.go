package adapter

import "errors"

// Sentinel errors returned by the adapters. Non-2xx responses are wrapped
// by status so callers can use [errors.Is].
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrUnprocessable       = errors.New("unprocessable entity")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")
	ErrUnexpectedStatus    = errors.New("unexpected status")
)

var (
	// ErrTransport wraps failures where no response was received.
	ErrTransport = errors.New("server unreachable")

	// ErrDecodeResponse is returned when a 2xx body is not the expected JSON.
	ErrDecodeResponse = errors.New("malformed server response")
)

// StatusError carries the HTTP status and server message of a failed call.
// It unwraps to the matching sentinel.
type StatusError struct {
	Status  int
	Message string
	err     error
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return e.err.Error()
	}
	return e.err.Error() + ": " + e.Message
}

func (e *StatusError) Unwrap() error {
	return e.err
}
