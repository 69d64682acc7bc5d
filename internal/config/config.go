// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/spf13/pflag"
)

// StructuredConfig is the top-level configuration container for the
// zotero-sync binaries. It aggregates all sub-configurations and is
// populated by merging values from command-line flags, environment
// variables, an optional JSON file and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings.
	App App `envPrefix:"APP_"`

	// Storage holds configuration of the local replica database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds the remote API address and per-call timeout.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Sync holds retry budgets and the session concurrency policy.
	Sync Sync `envPrefix:"SYNC_"`

	// Workers holds configuration for background sync jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// Log holds client log file settings.
	Log Log `envPrefix:"LOG_"`

	// Server holds settings of the reference API server.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// KeyringService is the OS keyring service name under which API keys
	// are stored.
	// Env: APP_KEYRING_SERVICE
	KeyringService string `env:"KEYRING_SERVICE"`
}

// Storage groups the configuration of local persistence.
type Storage struct {
	// DB holds the SQLite replica settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite replica.
type DB struct {
	// DSN is the SQLite database file path (e.g. "~/.zsync/library.db").
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Adapter holds configuration of the outbound API client.
type Adapter struct {
	// HTTPAddress is the base URL of the remote API
	// (e.g. "https://api.zotero.org").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every single HTTP call. A timeout is treated as a
	// transport failure and retried.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Sync holds the sync engine budgets.
type Sync struct {
	// MaxConflictRounds bounds refetch-and-retry rounds after a version
	// conflict before the object is reported as unresolved.
	// Env: SYNC_MAX_CONFLICT_ROUNDS
	MaxConflictRounds int `env:"MAX_CONFLICT_ROUNDS"`

	// MaxTransportAttempts bounds attempts of a single network operation.
	// Env: SYNC_MAX_TRANSPORT_ATTEMPTS
	MaxTransportAttempts int `env:"MAX_TRANSPORT_ATTEMPTS"`

	// SessionPolicy decides what happens when a sync is requested while
	// another one runs: "join", "ignore" or "queue".
	// Env: SYNC_SESSION_POLICY
	SessionPolicy string `env:"SESSION_POLICY"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// SyncInterval is the period of the background sync job.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`
}

// Log holds logging settings of the client.
type Log struct {
	// File is the path of the rotating client log file.
	// Env: LOG_FILE
	File string `env:"FILE"`
}

// Server holds settings of the reference API server.
type Server struct {
	// HTTPAddress is the listen address in "host:port" form.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// KeySignKey signs the API keys issued at /keys.
	// Env: SERVER_KEY_SIGN_KEY
	KeySignKey string `env:"KEY_SIGN_KEY"`

	// KeyTTL bounds the lifetime of issued API keys.
	// Env: SERVER_KEY_TTL
	KeyTTL time.Duration `env:"KEY_TTL"`

	// FixturesPath names a JSON file with the users and groups to serve.
	// Env: SERVER_FIXTURES
	FixturesPath string `env:"FIXTURES"`
}

// Defaults returns the built-in configuration used for every field that no
// other source sets.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{KeyringService: "zotero-sync"},
		Adapter: Adapter{
			HTTPAddress:    "https://api.zotero.org",
			RequestTimeout: 30 * time.Second,
		},
		Sync: Sync{
			MaxConflictRounds:    3,
			MaxTransportAttempts: 5,
			SessionPolicy:        "join",
		},
		Workers: Workers{SyncInterval: 15 * time.Minute},
		Server: Server{
			HTTPAddress: "localhost:8080",
			KeyTTL:      30 * 24 * time.Hour,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the configuration from all
// available sources. flags may be nil when the caller has no flag set; the
// priority order is flags, environment, JSON file, defaults (the first
// source that sets a field wins).
func GetStructuredConfig(flags *pflag.FlagSet) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(flags).
		withEnv().
		withJSON().
		withDefaults().
		build()
}
