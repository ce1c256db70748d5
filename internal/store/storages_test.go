// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"net/http"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-site-client/internal/config"
	"github.com/MKhiriev/go-site-client/internal/logger"
	"github.com/MKhiriev/go-site-client/models"
)

func newTestStorages(t *testing.T, dsn string) *ClientStorages {
	t.Helper()
	s, err := NewClientStorages(context.Background(), config.ClientStorage{DB: config.ClientDB{DSN: dsn}}, logger.Nop())
	require.NoError(t, err)
	return s
}

func TestNewClientStorages_PersistsAcrossReopen(t *testing.T) {
	ctx := testContext()
	dsn := filepath.Join(t.TempDir(), "nested", "client.db")

	first := newTestStorages(t, dsn)
	require.NoError(t, first.LocalStorage.SetItem(ctx, KeyDeviceFingerprint, "abc"))
	require.NoError(t, first.SessionStore.SetUser(ctx, &models.User{ID: 1, Name: "Ann"}))
	// last write wins
	require.NoError(t, first.LocalStorage.SetItem(ctx, KeyDeviceFingerprint, "def"))
	require.NoError(t, first.Close())

	second := newTestStorages(t, dsn)
	defer second.Close()

	v, ok, err := second.LocalStorage.GetItem(ctx, KeyDeviceFingerprint)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "def", v)

	u := second.SessionStore.GetUser(ctx)
	require.NotNil(t, u)
	assert.Equal(t, "Ann", u.Name)

	require.NoError(t, second.SessionStore.Clear(ctx))
	assert.Nil(t, second.SessionStore.GetUser(ctx))

	_, ok, err = second.LocalStorage.GetItem(ctx, KeyDeviceFingerprint)
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, second.LocalStorage.Clear(ctx))
	_, ok, err = second.LocalStorage.GetItem(ctx, KeyDeviceFingerprint)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestNewClientStorages_CookiesPersistAcrossReopen(t *testing.T) {
	ctx := testContext()
	dsn := filepath.Join(t.TempDir(), "client.db")

	first := newTestStorages(t, dsn)
	require.NoError(t, first.Cookies.SaveCookies(ctx, []*http.Cookie{{Name: "sid", Value: "abc"}}))
	require.NoError(t, first.Close())

	second := newTestStorages(t, dsn)
	defer second.Close()

	cookies, err := second.Cookies.LoadCookies(ctx)
	require.NoError(t, err)
	require.Len(t, cookies, 1)
	assert.Equal(t, "abc", cookies[0].Value)
}
