package service

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-site-client/internal/adapter"
	"github.com/MKhiriev/go-site-client/models"
)

// toResult normalises an adapter call into an [models.AuthResult]. Server
// flags are copied even from failed responses.
func toResult(resp models.AuthResponse, err error) models.AuthResult {
	res := models.AuthResult{
		Success:                   err == nil && resp.Success,
		Message:                   firstNonEmpty(resp.Message, resp.Error),
		User:                      resp.User,
		Requires2FA:               resp.Requires2FA,
		AccountLocked:             resp.AccountLocked,
		FailedAttempts:            resp.FailedAttempts,
		Errors:                    resp.Errors,
		RequiresEmailVerification: resp.RequiresEmailVerification,
		PasswordStrength:          resp.PasswordStrength,
	}

	if err == nil {
		res.Status = http.StatusOK
	} else {
		res.Status = adapter.StatusOf(err)
	}

	res.Kind = resultKind(res, err)
	if res.Message == "" {
		res.Message = defaultMessage(res.Kind, err)
	}
	return res
}

func resultKind(res models.AuthResult, err error) models.ResultKind {
	switch {
	case res.Requires2FA:
		return models.ResultRequires2FA
	case res.Locked():
		return models.ResultLocked
	case res.Success:
		return models.ResultOK
	case errors.Is(err, adapter.ErrTransport), errors.Is(err, adapter.ErrDecodeResponse):
		return models.ResultTransport
	case errors.Is(err, adapter.ErrUnauthorized):
		return models.ResultUnauthorized
	case res.Status >= http.StatusInternalServerError:
		return models.ResultServer
	default:
		return models.ResultInvalid
	}
}

func defaultMessage(kind models.ResultKind, err error) string {
	switch kind {
	case models.ResultOK:
		return ""
	case models.ResultRequires2FA:
		return "Two-factor authentication code required"
	case models.ResultLocked:
		return "Account locked due to too many failed attempts"
	case models.ResultTransport:
		if errors.Is(err, adapter.ErrDecodeResponse) {
			return MsgMalformedResponse
		}
		return MsgServerUnavailable
	case models.ResultUnauthorized:
		return MsgSessionExpired
	case models.ResultServer:
		return MsgServerError
	}

	if msg := adapter.MessageOf(err); msg != "" {
		return msg
	}
	return MsgRequestFailed
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
