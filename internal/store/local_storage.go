package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-site-client/internal/logger"
)

type localStorage struct {
	*DB
	logger *logger.Logger
}

// NewLocalStorage returns a [LocalStorage] backed by db.
func NewLocalStorage(db *DB, logger *logger.Logger) LocalStorage {
	return &localStorage{
		DB:     db,
		logger: logger,
	}
}

func (l *localStorage) GetItem(ctx context.Context, key string) (string, bool, error) {
	log := logger.FromContext(ctx)

	if key == "" {
		return "", false, ErrEmptyKey
	}

	query, args, err := buildGetItemQuery(key)
	if err != nil {
		log.Err(err).Str("func", "localStorage.GetItem").Str("key", key).Msg("failed to build query")
		return "", false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	err = l.DB.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		log.Err(err).Str("func", "localStorage.GetItem").Str("key", key).Msg("failed to read item")
		return "", false, fmt.Errorf("%w (key=%s): %w", ErrScanningRow, key, err)
	}

	return value, true, nil
}

func (l *localStorage) SetItem(ctx context.Context, key, value string) error {
	log := logger.FromContext(ctx)

	if key == "" {
		return ErrEmptyKey
	}

	query, args, err := buildSetItemQuery(key, value, time.Now().UTC())
	if err != nil {
		log.Err(err).Str("func", "localStorage.SetItem").Str("key", key).Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = l.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "localStorage.SetItem").Str("key", key).Msg("failed to upsert item")
		return fmt.Errorf("%w (key=%s): %w", ErrExecutingStatement, key, err)
	}

	return nil
}

func (l *localStorage) RemoveItem(ctx context.Context, keys ...string) error {
	log := logger.FromContext(ctx)

	if len(keys) == 0 {
		return nil
	}

	query, args, err := buildRemoveItemsQuery(keys)
	if err != nil {
		log.Err(err).Str("func", "localStorage.RemoveItem").Strs("keys", keys).Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = l.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "localStorage.RemoveItem").Strs("keys", keys).Msg("failed to delete items")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (l *localStorage) Clear(ctx context.Context) error {
	log := logger.FromContext(ctx)

	query, args, err := buildClearQuery()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = l.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "localStorage.Clear").Msg("failed to clear local storage")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
