// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package fingerprint

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-site-client/internal/logger"
	"github.com/MKhiriev/go-site-client/internal/store"
)

type staticEnv map[string]string

func (s staticEnv) UserAgent() string           { return s["ua"] }
func (s staticEnv) Language() string            { return s["lang"] }
func (s staticEnv) ScreenSize() string          { return s["screen"] }
func (s staticEnv) TimezoneOffset() string      { return s["tz"] }
func (s staticEnv) Platform() string            { return s["platform"] }
func (s staticEnv) HardwareConcurrency() string { return s["cpu"] }
func (s staticEnv) DeviceMemory() string        { return s["mem"] }
func (s staticEnv) MaxTouchPoints() string      { return s["touch"] }

type spyStorage struct {
	mu     sync.Mutex
	items  map[string]string
	sets   int
	gets   int
	setErr error
}

func newSpyStorage() *spyStorage { return &spyStorage{items: map[string]string{}} }

func (s *spyStorage) GetItem(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gets++
	v, ok := s.items[key]
	return v, ok, nil
}

func (s *spyStorage) SetItem(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sets++
	if s.setErr != nil {
		return s.setErr
	}
	s.items[key] = value
	return nil
}

func (s *spyStorage) RemoveItem(context.Context, ...string) error { return nil }
func (s *spyStorage) Clear(context.Context) error                 { return nil }

// ── Hash / Compute ──────────────────────────────────────────────────────────

func TestHash_KnownValues(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "0"},
		{"a", "2p"},   // 97
		{"ab", "2e9"}, // 97*31+98 = 3105
		{"hello", "1n1e4y"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Hash(tt.in))
		})
	}
}

func TestHash_Wraps32Bit(t *testing.T) {
	long := "Mozilla/5.0 (X11; Linux x86_64)|en-US|1920x1080|-60|Linux x86_64|8|8|0"
	h := Hash(long)
	assert.NotEmpty(t, h)
	assert.NotContains(t, h, "-")
	assert.LessOrEqual(t, len(h), 7) // 2^31 in base 36 is "zik0zk"
}

func TestCompute_Deterministic(t *testing.T) {
	env := staticEnv{"ua": "term", "lang": "en-US", "screen": "80x24", "tz": "-60", "platform": "linux/amd64", "cpu": "8", "mem": "8", "touch": "0"}

	assert.Equal(t, Compute(env), Compute(env))

	other := staticEnv{"ua": "term", "lang": "de-DE", "screen": "80x24", "tz": "-60", "platform": "linux/amd64", "cpu": "8", "mem": "8", "touch": "0"}
	assert.NotEqual(t, Compute(env), Compute(other))
}

func TestCompute_MissingAttributesAreUnknown(t *testing.T) {
	attrs := Attributes(staticEnv{"ua": "term"})
	require.Len(t, attrs, 8)
	assert.Equal(t, "term", attrs[0])
	for _, v := range attrs[1:] {
		assert.Equal(t, Unknown, v)
	}

	assert.Equal(t, Hash("term|unknown|unknown|unknown|unknown|unknown|unknown|unknown"), Compute(staticEnv{"ua": "term"}))
}

// ── Fingerprinter ───────────────────────────────────────────────────────────

func TestFingerprinter_Initialize_PersistsOnce(t *testing.T) {
	ctx := context.Background()
	storage := newSpyStorage()
	env := staticEnv{"ua": "term"}
	f := New(storage, env, logger.Nop())

	first, err := f.Initialize(ctx)
	require.NoError(t, err)
	second, err := f.Initialize(ctx)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, Compute(env), first)
	assert.Equal(t, 1, storage.sets)
	assert.Equal(t, first, storage.items[store.KeyDeviceFingerprint])
}

func TestFingerprinter_Initialize_ReusesStored(t *testing.T) {
	storage := newSpyStorage()
	storage.items[store.KeyDeviceFingerprint] = "stored1"

	v, err := New(storage, staticEnv{}, logger.Nop()).Initialize(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "stored1", v)
	assert.Zero(t, storage.sets)
}

func TestFingerprinter_Initialize_AcrossInstances(t *testing.T) {
	storage := newSpyStorage()
	env := staticEnv{"ua": "term"}

	a := New(storage, env, logger.Nop()).Value(context.Background())
	b := New(storage, staticEnv{"ua": "changed"}, logger.Nop()).Value(context.Background())

	assert.Equal(t, a, b)
	assert.Equal(t, 1, storage.sets)
}

func TestFingerprinter_Initialize_StorageFailure(t *testing.T) {
	storage := newSpyStorage()
	storage.setErr = errors.New("read-only")
	env := staticEnv{"ua": "term"}

	v, err := New(storage, env, logger.Nop()).Initialize(context.Background())
	require.Error(t, err)
	assert.Equal(t, Compute(env), v)
}

func TestFingerprinter_Initialize_Concurrent(t *testing.T) {
	storage := newSpyStorage()
	f := New(storage, staticEnv{"ua": "term"}, logger.Nop())

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = f.Initialize(context.Background())
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, storage.sets)
}

// ── SystemEnvironment ───────────────────────────────────────────────────────

func TestSystemEnvironment(t *testing.T) {
	vars := map[string]string{"LANG": "en_US.UTF-8", "COLUMNS": "120", "LINES": "40"}
	env := &SystemEnvironment{
		Product: "site-client/1.0",
		getenv:  func(k string) string { return vars[k] },
		now: func() time.Time {
			return time.Date(2026, 1, 1, 0, 0, 0, 0, time.FixedZone("CET", 3600))
		},
	}

	assert.Equal(t, "en-US", env.Language())
	assert.Equal(t, "120x40", env.ScreenSize())
	assert.Equal(t, "-60", env.TimezoneOffset())
	assert.Contains(t, env.UserAgent(), "site-client/1.0")
	assert.NotEmpty(t, env.Platform())
	assert.Empty(t, env.DeviceMemory())

	noLocale := &SystemEnvironment{getenv: func(string) string { return "" }, now: time.Now}
	assert.Empty(t, noLocale.Language())
	assert.Empty(t, noLocale.ScreenSize())
	assert.Empty(t, noLocale.UserAgent())
}
