package store

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-site-client/internal/logger"
)

func TestCookieStore_SaveLoadClear(t *testing.T) {
	ctx := testContext()
	storage := newMemoryStorage()
	cookies := NewCookieStore(storage, logger.Nop())

	loaded, err := cookies.LoadCookies(ctx)
	require.NoError(t, err)
	assert.Empty(t, loaded)

	require.NoError(t, cookies.SaveCookies(ctx, []*http.Cookie{{Name: "sid", Value: "abc", Path: "/", HttpOnly: true}}))
	assert.JSONEq(t, `[{"name":"sid","value":"abc"}]`, storage.items[KeySessionCookies])

	loaded, err = cookies.LoadCookies(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "sid", loaded[0].Name)
	assert.Equal(t, "abc", loaded[0].Value)

	require.NoError(t, cookies.SaveCookies(ctx, nil))
	_, ok := storage.items[KeySessionCookies]
	assert.False(t, ok)

	require.NoError(t, cookies.SaveCookies(ctx, []*http.Cookie{{Name: "sid", Value: "abc"}}))
	require.NoError(t, cookies.ClearCookies(ctx))
	_, ok = storage.items[KeySessionCookies]
	assert.False(t, ok)
}

func TestCookieStore_MalformedReadsAsEmpty(t *testing.T) {
	ctx := testContext()
	storage := newMemoryStorage()
	storage.items[KeySessionCookies] = "{not json"

	loaded, err := NewCookieStore(storage, logger.Nop()).LoadCookies(ctx)
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestCookieStore_ReadError(t *testing.T) {
	storage := newMemoryStorage()
	storage.getErr = assert.AnError

	_, err := NewCookieStore(storage, logger.Nop()).LoadCookies(testContext())
	require.ErrorIs(t, err, assert.AnError)
}
