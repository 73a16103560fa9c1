// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for go-study-sync.
// It aggregates all sub-configurations and is populated by merging values from
// environment variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the integrity hash key
	// and the application version.
	App App `envPrefix:"APP_"`

	// Storage holds configuration of the local SQLite store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings of the reference
	// reconciliation server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the remote endpoint settings used by the client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds the sync scheduler cadence.
	Workers Workers `envPrefix:"WORKERS_"`

	// Log holds log output settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the configuration for all storage backends used by the
// application.
type Storage struct {
	// DB holds the local database connection settings.
	DB DB `envPrefix:"DB_"`
}

// App holds application-level configuration values.
type App struct {
	// HashKey is the HMAC key used for request integrity checking
	// (the HashSHA256 header). Optional: when empty no hash is sent or checked.
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Exposed via the /api/version/ endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the path of the SQLite database file.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Adapter holds the settings of the outbound connection to the remote
// reconciliation endpoint.
type Adapter struct {
	// HTTPAddress is the base URL of the remote endpoint
	// (e.g. "http://localhost:8080").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds the sync scheduler cadence.
type Workers struct {
	// HotInterval is the period of the hot timer.
	// Env: WORKERS_HOT_INTERVAL
	HotInterval time.Duration `env:"HOT_INTERVAL"`

	// WarmInterval is the period of the warm timer.
	// Env: WORKERS_WARM_INTERVAL
	WarmInterval time.Duration `env:"WARM_INTERVAL"`

	// ConnectivityInterval is how often the connectivity monitor probes
	// the remote endpoint.
	// Env: WORKERS_CONNECTIVITY_INTERVAL
	ConnectivityInterval time.Duration `env:"CONNECTIVITY_INTERVAL"`

	// BackoffBase is the first retry delay after a transport failure.
	// Env: WORKERS_BACKOFF_BASE
	BackoffBase time.Duration `env:"BACKOFF_BASE"`

	// BackoffMax caps the retry delay.
	// Env: WORKERS_BACKOFF_MAX
	BackoffMax time.Duration `env:"BACKOFF_MAX"`
}

// Log holds log output settings.
type Log struct {
	// File is the path of the client log file. Empty means a "logs" file
	// next to the executable.
	// Env: LOG_FILE
	File string `env:"FILE"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
