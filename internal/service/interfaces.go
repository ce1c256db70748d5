// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the client's business layer: the auth client,
// the session state consumed by the router, and the content and admin
// services used by the screens.
package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-site-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthClient wraps the auth endpoints and keeps the local session mirror in
// step with them.
//
// No method returns a Go error: bad credentials, lockout, 2FA challenges,
// transport and server failures are all described by the returned result.
type AuthClient interface {
	// Login attaches the device fingerprint and persists the user on
	// success. A 2FA challenge persists nothing.
	Login(ctx context.Context, c models.Credentials) models.AuthResult
	Register(ctx context.Context, d models.RegisterData) models.AuthResult

	// Logout and LogoutAll clear the local session even when the server
	// cannot be reached.
	Logout(ctx context.Context) models.AuthResult
	LogoutAll(ctx context.Context) models.AuthResult

	GetProfile(ctx context.Context) models.AuthResult
	UpdateProfile(ctx context.Context, p models.ProfileUpdate) models.AuthResult

	ChangePassword(ctx context.Context, current, next string, logoutAllSessions bool) models.AuthResult
	ForgotPassword(ctx context.Context, email string) models.AuthResult
	ResetPassword(ctx context.Context, token, password string) models.AuthResult
	VerifyEmail(ctx context.Context, token string) models.AuthResult

	Setup2FA(ctx context.Context) models.TwoFASetupResult
	Verify2FA(ctx context.Context, code string) models.AuthResult
	Disable2FA(ctx context.Context, password, code string) models.AuthResult

	GetSessions(ctx context.Context) models.SessionsResult
	TerminateSession(ctx context.Context, sessionID string) models.AuthResult

	// CurrentUser returns the cached user snapshot or nil.
	CurrentUser(ctx context.Context) *models.User
	// IsAuthenticated reports whether a user snapshot is cached. It does not
	// ask the server; an expired session is only noticed on the next 401.
	IsAuthenticated(ctx context.Context) bool
	IsAdmin(ctx context.Context) bool
}

// ContentService serves the public screens.
type ContentService interface {
	ListStories(ctx context.Context, q models.ListQuery) (models.Page[models.Story], error)
	GetStory(ctx context.Context, id int64) (models.Story, error)
	LikeStory(ctx context.Context, id int64) (models.ToggleResult, error)
	BookmarkStory(ctx context.Context, id int64) (models.ToggleResult, error)
	// ShareURL returns the absolute link to a story.
	ShareURL(story models.Story) string

	ListGallery(ctx context.Context, q models.ListQuery) (models.Page[models.GalleryItem], error)

	ListTours(ctx context.Context, q models.ListQuery) (models.Page[models.Tour], error)
	GetTour(ctx context.Context, id int64) (models.Tour, error)
	// CreateBooking validates b before sending it.
	CreateBooking(ctx context.Context, b models.Booking) (models.BookingConfirmation, error)

	// SendContactMessage validates m before sending it.
	SendContactMessage(ctx context.Context, m models.ContactMessage) error

	// TrackPageView reports a screen visit. Failures are logged only.
	TrackPageView(ctx context.Context, path, referrer string)
}

// AdminService serves the admin panel.
type AdminService interface {
	// LoadMessages fetches a page of contact messages. Concurrent calls for
	// the same page share one request and its result.
	LoadMessages(ctx context.Context, q models.ListQuery) (models.Page[models.ContactMessage], error)
	MarkMessageRead(ctx context.Context, id int64) error
	Stats(ctx context.Context) (models.AdminStats, error)
}

// ProfileRefreshJob periodically re-reads the profile while a user is
// logged in, so an expired session is noticed without user action.
type ProfileRefreshJob interface {
	// Start stops any running job and launches a new one ticking every
	// interval.
	Start(ctx context.Context, interval time.Duration)
	// Stop blocks until the background goroutine has exited.
	Stop()
}

// FingerprintSource supplies the device fingerprint sent with logins.
type FingerprintSource interface {
	Value(ctx context.Context) string
}
