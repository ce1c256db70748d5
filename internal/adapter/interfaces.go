// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the REST transport of the site client.
//
// All adapters share one HTTP client whose cookie jar carries the server
// session. [Interceptor] hooks into that client: it tags and logs every
// request and, on 401, clears the local session mirror and emits a
// [SessionExpired] event for the application shell.
//
// Non-2xx responses are mapped to the sentinel errors in errors.go so
// callers can use [errors.Is] (e.g. [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-site-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// AuthAdapter calls the /api/auth endpoints.
//
// Every method decodes the JSON envelope even when the status is not 2xx,
// because failed logins carry their flags in the body. The returned error
// is nil only for a 2xx response with a well-formed body.
type AuthAdapter interface {
	// Login posts to the admin endpoint when c.LoginType is "admin".
	Login(ctx context.Context, c models.Credentials) (models.AuthResponse, error)
	Register(ctx context.Context, d models.RegisterData) (models.AuthResponse, error)
	Logout(ctx context.Context) (models.AuthResponse, error)
	LogoutAll(ctx context.Context) (models.AuthResponse, error)

	GetProfile(ctx context.Context) (models.AuthResponse, error)
	UpdateProfile(ctx context.Context, p models.ProfileUpdate) (models.AuthResponse, error)

	ChangePassword(ctx context.Context, r models.ChangePasswordRequest) (models.AuthResponse, error)
	ForgotPassword(ctx context.Context, email string) (models.AuthResponse, error)
	ResetPassword(ctx context.Context, token, password string) (models.AuthResponse, error)
	VerifyEmail(ctx context.Context, token string) (models.AuthResponse, error)

	Setup2FA(ctx context.Context) (models.AuthResponse, error)
	Verify2FA(ctx context.Context, code string) (models.AuthResponse, error)
	Disable2FA(ctx context.Context, password, code string) (models.AuthResponse, error)

	GetSessions(ctx context.Context) (models.AuthResponse, error)
	TerminateSession(ctx context.Context, sessionID string) (models.AuthResponse, error)

	// ClearCookies drops the session cookie locally.
	ClearCookies() error
}

// FeatureAdapter calls the content, booking, contact, admin and analytics
// endpoints.
type FeatureAdapter interface {
	ListStories(ctx context.Context, q models.ListQuery) (models.Page[models.Story], error)
	GetStory(ctx context.Context, id int64) (models.Story, error)
	LikeStory(ctx context.Context, id int64) (models.ToggleResult, error)
	BookmarkStory(ctx context.Context, id int64) (models.ToggleResult, error)

	ListGallery(ctx context.Context, q models.ListQuery) (models.Page[models.GalleryItem], error)

	ListTours(ctx context.Context, q models.ListQuery) (models.Page[models.Tour], error)
	GetTour(ctx context.Context, id int64) (models.Tour, error)
	CreateBooking(ctx context.Context, b models.Booking) (models.BookingConfirmation, error)

	SendContactMessage(ctx context.Context, m models.ContactMessage) error

	ListMessages(ctx context.Context, q models.ListQuery) (models.Page[models.ContactMessage], error)
	MarkMessageRead(ctx context.Context, id int64) error
	AdminStats(ctx context.Context) (models.AdminStats, error)

	TrackPageView(ctx context.Context, v models.PageView) error
}
