// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-site-client/internal/logger"
)

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func newTestLocalStorage(db *sql.DB) LocalStorage {
	return NewLocalStorage(&DB{DB: db, logger: logger.Nop()}, logger.Nop())
}

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

// ── GetItem ─────────────────────────────────────────────────────────────────

func TestLocalStorage_GetItem(t *testing.T) {
	query := regexp.QuoteMeta("SELECT value FROM local_storage WHERE key = ? LIMIT 1")

	tests := []struct {
		name      string
		setup     func(mock sqlmock.Sqlmock)
		wantValue string
		wantOK    bool
		wantErr   error
	}{
		{
			name: "present",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(query).WithArgs("user_data").
					WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(`{"id":1}`))
			},
			wantValue: `{"id":1}`,
			wantOK:    true,
		},
		{
			name: "absent",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(query).WithArgs("user_data").
					WillReturnRows(sqlmock.NewRows([]string{"value"}))
			},
		},
		{
			name: "driver error",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(query).WithArgs("user_data").
					WillReturnError(errors.New("disk I/O error"))
			},
			wantErr: ErrScanningRow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newTestDB(t)
			tt.setup(mock)

			value, ok, err := newTestLocalStorage(db).GetItem(testContext(), "user_data")
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantValue, value)
			assert.Equal(t, tt.wantOK, ok)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestLocalStorage_EmptyKey(t *testing.T) {
	db, mock := newTestDB(t)
	s := newTestLocalStorage(db)

	_, _, err := s.GetItem(testContext(), "")
	assert.ErrorIs(t, err, ErrEmptyKey)
	assert.ErrorIs(t, s.SetItem(testContext(), "", "v"), ErrEmptyKey)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ── SetItem ─────────────────────────────────────────────────────────────────

func TestLocalStorage_SetItem(t *testing.T) {
	query := regexp.QuoteMeta("INSERT INTO local_storage (key,value,updated_at) VALUES (?,?,?) ON CONFLICT(key)")

	t.Run("upsert", func(t *testing.T) {
		db, mock := newTestDB(t)
		mock.ExpectExec(query).
			WithArgs("device_fingerprint", "abc", sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(1, 1))

		require.NoError(t, newTestLocalStorage(db).SetItem(testContext(), "device_fingerprint", "abc"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("driver error", func(t *testing.T) {
		db, mock := newTestDB(t)
		mock.ExpectExec(query).WillReturnError(errors.New("readonly database"))

		err := newTestLocalStorage(db).SetItem(testContext(), "k", "v")
		assert.ErrorIs(t, err, ErrExecutingStatement)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

// ── RemoveItem / Clear ──────────────────────────────────────────────────────

func TestLocalStorage_RemoveItem(t *testing.T) {
	db, mock := newTestDB(t)
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM local_storage WHERE key IN (?,?,?)")).
		WithArgs(KeyUserData, KeySessionInfo, KeyAuthToken).
		WillReturnResult(sqlmock.NewResult(0, 2))

	err := newTestLocalStorage(db).RemoveItem(testContext(), KeyUserData, KeySessionInfo, KeyAuthToken)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLocalStorage_RemoveItem_NoKeys(t *testing.T) {
	db, mock := newTestDB(t)

	require.NoError(t, newTestLocalStorage(db).RemoveItem(testContext()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLocalStorage_Clear(t *testing.T) {
	db, mock := newTestDB(t)
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM local_storage")).
		WillReturnError(errors.New("locked"))

	err := newTestLocalStorage(db).Clear(testContext())
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}
