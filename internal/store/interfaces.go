// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-site-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// LocalStorage is a persistent string key/value store. Writes are
// last-write-wins and values never expire.
type LocalStorage interface {
	// GetItem returns the value stored under key. ok is false when the key
	// is absent.
	GetItem(ctx context.Context, key string) (value string, ok bool, err error)
	SetItem(ctx context.Context, key, value string) error
	RemoveItem(ctx context.Context, keys ...string) error
	Clear(ctx context.Context) error
}

// SessionStore is the typed view over [LocalStorage] used by the auth layer.
//
// Reads never fail: a missing or malformed entry reads as absent. Writes
// report storage failures.
type SessionStore interface {
	GetUser(ctx context.Context) *models.User
	// SetUser persists u. A nil u removes the entry.
	SetUser(ctx context.Context, u *models.User) error
	GetSessionInfo(ctx context.Context) models.SessionInfo
	// SetSessionInfo persists info. A nil info removes the entry.
	SetSessionInfo(ctx context.Context, info models.SessionInfo) error
	// Clear removes the user, the session info and the legacy token.
	Clear(ctx context.Context) error
}

// CookieStore keeps the session cookies of the backend origin so a
// restarted client resumes the server session.
type CookieStore interface {
	LoadCookies(ctx context.Context) ([]*http.Cookie, error)
	// SaveCookies replaces the saved set. An empty set removes it.
	SaveCookies(ctx context.Context, cookies []*http.Cookie) error
	ClearCookies(ctx context.Context) error
}
