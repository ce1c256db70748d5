package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-site-client/internal/config"
	"github.com/MKhiriev/go-site-client/internal/logger"
)

// ClientStorages groups the client-side stores.
type ClientStorages struct {
	LocalStorage LocalStorage
	SessionStore SessionStore
	Cookies      CookieStore

	db *DB
}

// NewClientStorages opens the sqlite file from cfg, runs pending
// migrations and wires the stores.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	local := NewLocalStorage(db, logger)
	return &ClientStorages{
		LocalStorage: local,
		SessionStore: NewSessionStore(local, logger),
		Cookies:      NewCookieStore(local, logger),
		db:           db,
	}, nil
}

// Close closes the underlying database.
func (c *ClientStorages) Close() error {
	if c.db == nil {
		return nil
	}
	return c.db.Close()
}
