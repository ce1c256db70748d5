package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-site-client/internal/logger"
	"github.com/MKhiriev/go-site-client/models"
)

type sessionStore struct {
	storage LocalStorage
	logger  *logger.Logger
}

// NewSessionStore wraps storage with typed accessors for the session keys.
func NewSessionStore(storage LocalStorage, logger *logger.Logger) SessionStore {
	return &sessionStore{
		storage: storage,
		logger:  logger,
	}
}

func (s *sessionStore) GetUser(ctx context.Context) *models.User {
	var user models.User
	if !s.readJSON(ctx, KeyUserData, &user) {
		return nil
	}
	return &user
}

func (s *sessionStore) SetUser(ctx context.Context, u *models.User) error {
	if u == nil {
		return s.storage.RemoveItem(ctx, KeyUserData)
	}
	return s.writeJSON(ctx, KeyUserData, u)
}

func (s *sessionStore) GetSessionInfo(ctx context.Context) models.SessionInfo {
	var info models.SessionInfo
	if !s.readJSON(ctx, KeySessionInfo, &info) {
		return nil
	}
	return info
}

func (s *sessionStore) SetSessionInfo(ctx context.Context, info models.SessionInfo) error {
	if info == nil {
		return s.storage.RemoveItem(ctx, KeySessionInfo)
	}
	return s.writeJSON(ctx, KeySessionInfo, info)
}

func (s *sessionStore) Clear(ctx context.Context) error {
	return s.storage.RemoveItem(ctx, KeyUserData, KeySessionInfo, KeyAuthToken)
}

// readJSON decodes the value under key into dst. It reports false when the
// entry is missing, unreadable or not valid JSON.
func (s *sessionStore) readJSON(ctx context.Context, key string, dst any) bool {
	raw, ok, err := s.storage.GetItem(ctx, key)
	if err != nil {
		s.logger.Err(err).Str("func", "sessionStore.readJSON").Str("key", key).Msg("failed to read local storage")
		return false
	}
	if !ok || raw == "" || raw == "null" {
		return false
	}

	if err = json.Unmarshal([]byte(raw), dst); err != nil {
		s.logger.Warn().Err(err).Str("func", "sessionStore.readJSON").Str("key", key).Msg("malformed value in local storage, treating as absent")
		return false
	}
	return true
}

func (s *sessionStore) writeJSON(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return s.storage.SetItem(ctx, key, string(raw))
}
