// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// Client defaults applied to every zero value after all sources are merged.
const (
	DefaultHotInterval          = 60 * time.Second
	DefaultWarmInterval         = 300 * time.Second
	DefaultConnectivityInterval = 15 * time.Second
	DefaultBackoffBase          = 2 * time.Second
	DefaultBackoffMax           = 2 * time.Minute
	DefaultRequestTimeout       = 15 * time.Second
	DefaultHTTPAddress          = "http://localhost:8080"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// HashKey is the HMAC key used by the client for payload integrity checks.
	HashKey string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the remote reconciliation endpoint.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite database file path.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientWorkers contains the sync scheduler cadence.
type ClientWorkers struct {
	// HotInterval is the period of the hot timer (requests [hot]).
	HotInterval time.Duration
	// WarmInterval is the period of the warm timer (requests [hot, warm]).
	WarmInterval time.Duration
	// ConnectivityInterval is the probe period of the connectivity monitor.
	ConnectivityInterval time.Duration
	// BackoffBase is the first retry delay after a transport failure.
	BackoffBase time.Duration
	// BackoffMax caps the retry delay.
	BackoffMax time.Duration
}

// ClientLog holds client log output settings.
type ClientLog struct {
	// File is the rotating log file path.
	File string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains the remote endpoint address and timeout.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
	// Workers contains background job settings.
	Workers ClientWorkers
	// Log contains log output settings.
	Log ClientLog
}

// GetClientConfig builds and validates a client-specific config view.
//
// The client does not own the process flag set (the CLI does), so the
// sources are environment variables, then the overrides collected by the
// CLI, then the JSON file whose path may come from either of them. Zero
// values are replaced by the Default* constants before validation.
func GetClientConfig(overrides *StructuredConfig) (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withConfig(overrides).
		withJSON().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)

	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	clientCfg := &ClientConfig{
		App: ClientApp{
			HashKey: cfg.App.HashKey,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Workers: ClientWorkers{
			HotInterval:          cfg.Workers.HotInterval,
			WarmInterval:         cfg.Workers.WarmInterval,
			ConnectivityInterval: cfg.Workers.ConnectivityInterval,
			BackoffBase:          cfg.Workers.BackoffBase,
			BackoffMax:           cfg.Workers.BackoffMax,
		},
		Log: ClientLog{
			File: cfg.Log.File,
		},
	}
	clientCfg.applyDefaults()

	return clientCfg
}

func (cfg *ClientConfig) applyDefaults() {
	if cfg.Adapter.HTTPAddress == "" {
		cfg.Adapter.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Workers.HotInterval == 0 {
		cfg.Workers.HotInterval = DefaultHotInterval
	}
	if cfg.Workers.WarmInterval == 0 {
		cfg.Workers.WarmInterval = DefaultWarmInterval
	}
	if cfg.Workers.ConnectivityInterval == 0 {
		cfg.Workers.ConnectivityInterval = DefaultConnectivityInterval
	}
	if cfg.Workers.BackoffBase == 0 {
		cfg.Workers.BackoffBase = DefaultBackoffBase
	}
	if cfg.Workers.BackoffMax == 0 {
		cfg.Workers.BackoffMax = DefaultBackoffMax
	}
}
