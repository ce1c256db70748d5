package store

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-site-client/internal/logger"
)

// storedCookie is the saved form of a session cookie. The jar only
// exposes name and value for a URL, so nothing else is kept.
type storedCookie struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type cookieStore struct {
	storage LocalStorage
	logger  *logger.Logger
}

// NewCookieStore keeps the session cookies under [KeySessionCookies].
func NewCookieStore(storage LocalStorage, logger *logger.Logger) CookieStore {
	return &cookieStore{
		storage: storage,
		logger:  logger,
	}
}

// LoadCookies returns the saved cookies. A malformed entry reads as empty.
func (c *cookieStore) LoadCookies(ctx context.Context) ([]*http.Cookie, error) {
	raw, ok, err := c.storage.GetItem(ctx, KeySessionCookies)
	if err != nil {
		return nil, err
	}
	if !ok || raw == "" {
		return nil, nil
	}

	var stored []storedCookie
	if err = json.Unmarshal([]byte(raw), &stored); err != nil {
		c.logger.Warn().Err(err).Str("func", "cookieStore.LoadCookies").Msg("malformed cookies in local storage, treating as absent")
		return nil, nil
	}

	cookies := make([]*http.Cookie, 0, len(stored))
	for _, s := range stored {
		if s.Name == "" {
			continue
		}
		cookies = append(cookies, &http.Cookie{Name: s.Name, Value: s.Value})
	}
	return cookies, nil
}

func (c *cookieStore) SaveCookies(ctx context.Context, cookies []*http.Cookie) error {
	if len(cookies) == 0 {
		return c.ClearCookies(ctx)
	}

	stored := make([]storedCookie, 0, len(cookies))
	for _, ck := range cookies {
		stored = append(stored, storedCookie{Name: ck.Name, Value: ck.Value})
	}

	raw, err := json.Marshal(stored)
	if err != nil {
		return fmt.Errorf("encode %s: %w", KeySessionCookies, err)
	}
	if err = c.storage.SetItem(ctx, KeySessionCookies, string(raw)); err != nil {
		c.logger.Err(err).Str("func", "cookieStore.SaveCookies").Msg("failed to save session cookies")
		return err
	}
	return nil
}

func (c *cookieStore) ClearCookies(ctx context.Context) error {
	if err := c.storage.RemoveItem(ctx, KeySessionCookies); err != nil {
		c.logger.Err(err).Str("func", "cookieStore.ClearCookies").Msg("failed to remove session cookies")
		return err
	}
	return nil
}
