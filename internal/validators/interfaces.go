// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds the client-side form checks.
//
// They are hints for the user: the server re-validates everything. The
// password and e-mail helpers are pure functions; [Validator] checks whole
// request bodies before they are sent.
package validators

import "context"

// Validator validates the provided input and optionally restricts
// validation to specific named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
