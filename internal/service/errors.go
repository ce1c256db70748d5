package service

import (
	"errors"

	"github.com/MKhiriev/go-site-client/internal/adapter"
	"github.com/MKhiriev/go-site-client/internal/validators"
)

// User-facing failure messages.
const (
	MsgServerUnavailable = "Unable to reach the server. Please check your connection and try again."
	MsgMalformedResponse = "The server sent an unexpected response. Please try again."
	MsgSessionExpired    = "Your session has expired. Please log in again."
	MsgForbidden         = "You do not have permission to do that."
	MsgNotFound          = "The requested item was not found."
	MsgTooManyRequests   = "Too many requests. Please wait a moment and try again."
	MsgServerError       = "The server encountered an error. Please try again later."
	MsgRequestFailed     = "Request failed. Please try again."
)

// FailureMessage turns an error from the content or admin services into a
// message the screens can show as is.
func FailureMessage(err error) string {
	if err == nil {
		return ""
	}

	if validators.FieldOf(err) != "" {
		return err.Error()
	}

	switch {
	case errors.Is(err, adapter.ErrTransport):
		return MsgServerUnavailable
	case errors.Is(err, adapter.ErrDecodeResponse):
		return MsgMalformedResponse
	case errors.Is(err, adapter.ErrUnauthorized):
		return MsgSessionExpired
	case errors.Is(err, adapter.ErrForbidden):
		return MsgForbidden
	case errors.Is(err, adapter.ErrNotFound):
		if msg := adapter.MessageOf(err); msg != "" && msg != "Not Found" {
			return msg
		}
		return MsgNotFound
	case errors.Is(err, adapter.ErrTooManyRequests):
		return MsgTooManyRequests
	case errors.Is(err, adapter.ErrInternalServerError),
		errors.Is(err, adapter.ErrBadGateway),
		errors.Is(err, adapter.ErrServiceUnavailable):
		return MsgServerError
	}

	if msg := adapter.MessageOf(err); msg != "" {
		return msg
	}
	return MsgRequestFailed
}
