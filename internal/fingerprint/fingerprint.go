// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package fingerprint derives a stable device identifier that the client
// sends with every login so the server can spot logins from new devices.
package fingerprint

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"unicode/utf16"

	"github.com/MKhiriev/go-site-client/internal/logger"
	"github.com/MKhiriev/go-site-client/internal/store"
)

// Unknown replaces every attribute the environment cannot supply.
const Unknown = "unknown"

// Environment supplies the device attributes the fingerprint is computed
// from. Empty values are rendered as [Unknown].
type Environment interface {
	UserAgent() string
	Language() string
	ScreenSize() string
	TimezoneOffset() string
	Platform() string
	HardwareConcurrency() string
	DeviceMemory() string
	MaxTouchPoints() string
}

// Attributes returns the environment values in hashing order.
func Attributes(env Environment) []string {
	values := []string{
		env.UserAgent(),
		env.Language(),
		env.ScreenSize(),
		env.TimezoneOffset(),
		env.Platform(),
		env.HardwareConcurrency(),
		env.DeviceMemory(),
		env.MaxTouchPoints(),
	}
	for i, v := range values {
		if strings.TrimSpace(v) == "" {
			values[i] = Unknown
		}
	}
	return values
}

// Compute returns the base-36 fingerprint of env. It is deterministic for a
// given set of attribute values.
func Compute(env Environment) string {
	return Hash(strings.Join(Attributes(env), "|"))
}

// Hash folds s into a 32-bit signed integer with h = h*31 + c over UTF-16
// code units and renders its absolute value in base 36.
func Hash(s string) string {
	var h int32
	for _, c := range utf16.Encode([]rune(s)) {
		h = h*31 + int32(c)
	}

	abs := int64(h)
	if abs < 0 {
		abs = -abs
	}
	return strconv.FormatInt(abs, 36)
}

// Fingerprinter persists the fingerprint in local storage the first time it
// is needed and serves the stored value afterwards.
type Fingerprinter struct {
	storage store.LocalStorage
	env     Environment
	logger  *logger.Logger

	mu    sync.Mutex
	value string
}

// New returns a Fingerprinter reading and writing storage.
func New(storage store.LocalStorage, env Environment, logger *logger.Logger) *Fingerprinter {
	return &Fingerprinter{
		storage: storage,
		env:     env,
		logger:  logger,
	}
}

// Initialize returns the stored fingerprint, computing and storing it when
// absent. Subsequent calls return the cached value without touching
// storage.
//
// A storage failure does not prevent login: the computed value is still
// returned together with the error.
func (f *Fingerprinter) Initialize(ctx context.Context) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.value != "" {
		return f.value, nil
	}

	stored, ok, err := f.storage.GetItem(ctx, store.KeyDeviceFingerprint)
	if err != nil {
		f.logger.Err(err).Str("func", "Fingerprinter.Initialize").Msg("failed to read stored fingerprint")
	}
	if ok && stored != "" {
		f.value = stored
		return f.value, nil
	}

	computed := Compute(f.env)
	if err = f.storage.SetItem(ctx, store.KeyDeviceFingerprint, computed); err != nil {
		f.logger.Err(err).Str("func", "Fingerprinter.Initialize").Msg("failed to persist fingerprint")
		return computed, fmt.Errorf("persist device fingerprint: %w", err)
	}

	f.logger.Debug().Str("func", "Fingerprinter.Initialize").Str("fingerprint", computed).Msg("device fingerprint created")
	f.value = computed
	return f.value, nil
}

// Value returns the fingerprint, initializing it if needed. Errors are
// logged.
func (f *Fingerprinter) Value(ctx context.Context) string {
	v, _ := f.Initialize(ctx)
	return v
}
