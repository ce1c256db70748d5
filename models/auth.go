// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"strings"
)

// LoginTypeAdmin selects the admin login endpoint.
const LoginTypeAdmin = "admin"

// LockoutThreshold is the number of failed attempts after which the admin
// login screen shows the locked state. The server is the authority; the
// client only compares the counter it receives.
const LockoutThreshold = 5

// Credentials is the login request body.
type Credentials struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	RememberMe bool   `json:"remember_me"`

	// LoginType is "admin" for the admin login flow and empty otherwise.
	LoginType string `json:"login_type,omitempty"`

	// TwoFAToken is the one-time code for accounts with 2FA enabled.
	TwoFAToken string `json:"two_fa_token,omitempty"`

	// DeviceFingerprint is filled in by the auth client.
	DeviceFingerprint string `json:"device_fingerprint"`
}

// RegisterData is the registration request body.
type RegisterData struct {
	Name              string `json:"name"`
	Email             string `json:"email"`
	Password          string `json:"password"`
	ConfirmPassword   string `json:"confirm_password,omitempty"`
	AcceptTerms       bool   `json:"accept_terms"`
	DeviceFingerprint string `json:"device_fingerprint,omitempty"`
}

// ProfileUpdate is the body of PUT /api/auth/profile.
type ProfileUpdate struct {
	Name      string `json:"name,omitempty"`
	Bio       string `json:"bio,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

// ChangePasswordRequest is the body of the change-password call.
type ChangePasswordRequest struct {
	CurrentPassword   string `json:"current_password"`
	NewPassword       string `json:"new_password"`
	LogoutAllSessions bool   `json:"logout_all_sessions"`
}

// FieldErrors maps a form field to a human readable message. The server may
// send either a string or a list of strings per field; lists are joined.
type FieldErrors map[string]string

// UnmarshalJSON implements [json.Unmarshaler].
func (f *FieldErrors) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	out := make(FieldErrors, len(raw))
	for field, value := range raw {
		var single string
		if err := json.Unmarshal(value, &single); err == nil {
			out[field] = single
			continue
		}

		var list []string
		if err := json.Unmarshal(value, &list); err == nil {
			out[field] = strings.Join(list, "; ")
			continue
		}

		out[field] = strings.Trim(string(value), `"`)
	}

	*f = out
	return nil
}

// AuthResponse is the JSON envelope returned by every auth endpoint.
type AuthResponse struct {
	Success        bool        `json:"success"`
	Message        string      `json:"message,omitempty"`
	Error          string      `json:"error,omitempty"`
	User           *User       `json:"user,omitempty"`
	SessionInfo    SessionInfo `json:"session_info,omitempty"`
	Requires2FA    bool        `json:"requires_2fa,omitempty"`
	AccountLocked  bool        `json:"account_locked,omitempty"`
	FailedAttempts int         `json:"failed_attempts,omitempty"`
	Errors         FieldErrors `json:"errors,omitempty"`

	RequiresEmailVerification bool            `json:"requires_email_verification,omitempty"`
	PasswordStrength          json.RawMessage `json:"password_strength,omitempty"`

	Secret      string          `json:"secret,omitempty"`
	QRCodeURL   string          `json:"qr_code_url,omitempty"`
	BackupCodes []string        `json:"backup_codes,omitempty"`
	Sessions    []ActiveSession `json:"sessions,omitempty"`
}

// ResultKind discriminates the outcome of an auth operation.
type ResultKind string

const (
	// ResultOK means the server accepted the operation.
	ResultOK ResultKind = "ok"
	// ResultInvalid means the server rejected the input (bad credentials,
	// validation errors).
	ResultInvalid ResultKind = "invalid"
	// ResultRequires2FA means the password was accepted but a 2FA code is
	// still needed.
	ResultRequires2FA ResultKind = "requires_2fa"
	// ResultLocked means the account is locked after too many failures.
	ResultLocked ResultKind = "locked"
	// ResultUnauthorized means the session is missing or expired.
	ResultUnauthorized ResultKind = "unauthorized"
	// ResultTransport means the server could not be reached or the response
	// could not be decoded.
	ResultTransport ResultKind = "transport"
	// ResultServer means the server failed (5xx).
	ResultServer ResultKind = "server"
)

// AuthResult is the uniform outcome returned by every auth client operation.
// Expected failures never surface as Go errors; they are described here.
type AuthResult struct {
	Kind    ResultKind
	Success bool
	Message string
	Status  int

	User           *User
	Requires2FA    bool
	AccountLocked  bool
	FailedAttempts int
	Errors         FieldErrors

	RequiresEmailVerification bool
	PasswordStrength          json.RawMessage
}

// Locked reports whether the login form must switch to the locked state.
func (r AuthResult) Locked() bool {
	return r.AccountLocked || r.FailedAttempts >= LockoutThreshold
}

// TwoFASetupResult is returned by the 2FA setup call.
type TwoFASetupResult struct {
	AuthResult
	Secret      string
	QRCodeURL   string
	BackupCodes []string
}

// SessionsResult is returned by the active sessions listing.
type SessionsResult struct {
	AuthResult
	Sessions []ActiveSession
}
