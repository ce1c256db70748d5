// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package guard decides whether a route may be rendered for the current
// session and where to redirect otherwise.
package guard

import "github.com/MKhiriev/go-site-client/internal/service"

// Kind selects the guard protecting a route.
type Kind int

const (
	// Public routes are always rendered.
	Public Kind = iota
	// User routes need any authenticated user.
	User
	// Admin routes need an authenticated user with an admin level.
	Admin
)

func (k Kind) String() string {
	switch k {
	case User:
		return "user"
	case Admin:
		return "admin"
	default:
		return "public"
	}
}

// State is the outcome of a guard evaluation.
type State string

const (
	Pending    State = "PENDING"
	Denied     State = "DENIED"
	DeniedRole State = "DENIED_ROLE"
	Allowed    State = "ALLOWED"
)

// Redirect targets.
const (
	HomePath       = "/"
	LoginPath      = "/login"
	AdminLoginPath = "/admin/login"
	AdminPath      = "/admin"
	ProfilePath    = "/profile"
)

// Decision is what the router does with a guarded route. Redirect is set
// only for the denied states.
type Decision struct {
	State    State
	Redirect string
}

// Evaluate runs the guard of kind against snap. It is a pure function of
// its arguments and is re-run on every session change.
func Evaluate(kind Kind, snap service.Snapshot) Decision {
	if kind == Public {
		return Decision{State: Allowed}
	}

	if snap.Loading || !snap.Initialized {
		return Decision{State: Pending}
	}

	if !snap.IsAuthenticated() {
		if kind == Admin {
			return Decision{State: Denied, Redirect: AdminLoginPath}
		}
		return Decision{State: Denied, Redirect: LoginPath}
	}

	if kind == Admin && !snap.IsAdmin() {
		return Decision{State: DeniedRole, Redirect: HomePath}
	}

	return Decision{State: Allowed}
}
