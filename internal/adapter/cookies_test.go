// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-site-client/internal/config"
	"github.com/MKhiriev/go-site-client/internal/logger"
	"github.com/MKhiriev/go-site-client/models"
)

type memoryCookieStore struct {
	mu      sync.Mutex
	cookies []*http.Cookie
}

func (m *memoryCookieStore) LoadCookies(context.Context) ([]*http.Cookie, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*http.Cookie, 0, len(m.cookies))
	for _, c := range m.cookies {
		out = append(out, &http.Cookie{Name: c.Name, Value: c.Value})
	}
	return out, nil
}

func (m *memoryCookieStore) SaveCookies(_ context.Context, cookies []*http.Cookie) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cookies = cookies
	return nil
}

func (m *memoryCookieStore) ClearCookies(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cookies = nil
	return nil
}

func (m *memoryCookieStore) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.cookies)
}

// sessionBackend sets a session cookie on login and rejects requests
// without it.
func sessionBackend(t *testing.T) string {
	return newTestBackend(t, func(r chi.Router) {
		r.Post("/api/auth/login", func(w http.ResponseWriter, r *http.Request) {
			http.SetCookie(w, &http.Cookie{Name: "sid", Value: "s-1", Path: "/", HttpOnly: true})
			writeJSON(w, http.StatusOK, map[string]any{"success": true, "user": map[string]any{"id": 1}})
		})
		r.Get("/api/stories", func(w http.ResponseWriter, r *http.Request) {
			if c, err := r.Cookie("sid"); err != nil || c.Value != "s-1" {
				writeJSON(w, http.StatusUnauthorized, map[string]any{"success": false})
				return
			}
			writeJSON(w, http.StatusOK, map[string]any{"success": true, "data": map[string]any{"items": []any{}}})
		})
		r.Get("/api/admin/stats", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusUnauthorized, map[string]any{"success": false})
		})
	}).URL
}

func newPersistentAdapters(t *testing.T, serverURL string, cookies *memoryCookieStore) *Adapters {
	t.Helper()
	cfg := config.ClientAdapter{BaseURL: serverURL, RequestTimeout: 2 * time.Second}
	a, err := NewAdapters(cfg, &spySessionStore{}, logger.Nop(), WithCookieStore(cookies))
	require.NoError(t, err)
	return a
}

func TestAdapters_SessionCookieSurvivesRestart(t *testing.T) {
	ctx := context.Background()
	serverURL := sessionBackend(t)
	cookies := &memoryCookieStore{}

	first := newPersistentAdapters(t, serverURL, cookies)
	_, err := first.Auth.Login(ctx, models.Credentials{Email: "ann@example.com", Password: "secret"})
	require.NoError(t, err)
	require.Equal(t, 1, cookies.count())

	restarted := newPersistentAdapters(t, serverURL, cookies)
	_, err = restarted.Feature.ListStories(ctx, models.ListQuery{})
	require.NoError(t, err)
}

func TestAdapters_ExpiredSessionDropsSavedCookies(t *testing.T) {
	ctx := context.Background()
	serverURL := sessionBackend(t)
	cookies := &memoryCookieStore{}

	a := newPersistentAdapters(t, serverURL, cookies)
	_, err := a.Auth.Login(ctx, models.Credentials{Email: "ann@example.com", Password: "secret"})
	require.NoError(t, err)

	_, err = a.Feature.AdminStats(ctx)
	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Zero(t, cookies.count())

	_, err = a.Feature.ListStories(ctx, models.ListQuery{})
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestAdapters_ClearCookiesDropsSavedCopy(t *testing.T) {
	ctx := context.Background()
	serverURL := sessionBackend(t)
	cookies := &memoryCookieStore{}

	a := newPersistentAdapters(t, serverURL, cookies)
	_, err := a.Auth.Login(ctx, models.Credentials{Email: "ann@example.com", Password: "secret"})
	require.NoError(t, err)

	require.NoError(t, a.Auth.ClearCookies())
	assert.Zero(t, cookies.count())

	restarted := newPersistentAdapters(t, serverURL, cookies)
	_, err = restarted.Feature.ListStories(ctx, models.ListQuery{})
	require.ErrorIs(t, err, ErrUnauthorized)
}
