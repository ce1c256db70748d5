// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container of the site
// client. It is populated by merging values from environment variables,
// command-line flags, an optional JSON file and built-in defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level switches.
	App App `envPrefix:"APP_"`

	// Storage holds configuration of the local persistent store that mirrors
	// the server session.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds the REST backend address and transport timeouts.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// Development enables diagnostics that must not reach end users, such as
	// stack traces on the admin recovery screen.
	// Env: APP_DEVELOPMENT
	Development bool `env:"DEVELOPMENT"`

	// Version is the semantic version string reported in the UI.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// SiteURL is the public origin used in story share links. The backend
	// base URL is used when empty.
	// Env: APP_SITE_URL
	SiteURL string `env:"SITE_URL"`
}

// Storage groups the configuration of local persistence.
type Storage struct {
	// DB holds the sqlite connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local sqlite file.
type DB struct {
	// DSN is the sqlite file path (e.g. "./site-client.db").
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Adapter holds settings of the outbound REST transport.
type Adapter struct {
	// BaseURL is the HTTPS origin of the backend (e.g. "https://api.example.com").
	// Env: ADAPTER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout bounds every outbound request (e.g. "10s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration of background jobs.
type Workers struct {
	// ProfileRefreshInterval is how often the cached user snapshot is
	// refreshed from the server while the client runs. Zero disables
	// periodic refresh; a single refresh still happens at start-up.
	// Env: WORKERS_PROFILE_REFRESH_INTERVAL
	ProfileRefreshInterval time.Duration `env:"PROFILE_REFRESH_INTERVAL"`
}

// Default values used when no source provides a value.
const (
	DefaultBaseURL        = "https://api.example.com"
	DefaultRequestTimeout = 10 * time.Second
	DefaultDSN            = "site-client.db"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Storage: Storage{DB: DB{DSN: DefaultDSN}},
		Adapter: Adapter{
			BaseURL:        DefaultBaseURL,
			RequestTimeout: DefaultRequestTimeout,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all sources. Earlier sources win for every non-zero field:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
