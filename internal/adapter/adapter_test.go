// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-site-client/internal/config"
	"github.com/MKhiriev/go-site-client/internal/logger"
	"github.com/MKhiriev/go-site-client/models"
)

// spySessionStore records Clear calls.
type spySessionStore struct {
	mu      sync.Mutex
	user    *models.User
	info    models.SessionInfo
	cleared atomic.Int32
}

func (s *spySessionStore) GetUser(context.Context) *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

func (s *spySessionStore) SetUser(_ context.Context, u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = u
	return nil
}

func (s *spySessionStore) GetSessionInfo(context.Context) models.SessionInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.info
}

func (s *spySessionStore) SetSessionInfo(_ context.Context, info models.SessionInfo) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.info = info
	return nil
}

func (s *spySessionStore) Clear(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cleared.Add(1)
	s.user, s.info = nil, nil
	return nil
}

type fixedIDs string

func (f fixedIDs) Generate() string { return string(f) }

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// newTestBackend starts a chi router mounted by routes.
func newTestBackend(t *testing.T, routes func(r chi.Router)) *httptest.Server {
	t.Helper()
	r := chi.NewRouter()
	routes(r)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

// newTestAdapters wires adapters to serverURL with a spy session store.
func newTestAdapters(t *testing.T, serverURL string) (*Adapters, *spySessionStore) {
	t.Helper()
	sessions := &spySessionStore{}
	a, err := NewAdapters(config.ClientAdapter{BaseURL: serverURL, RequestTimeout: 2 * time.Second}, sessions, logger.Nop())
	require.NoError(t, err)
	return a, sessions
}
