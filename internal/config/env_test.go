// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_HASH_KEY": "security_hash",
		"APP_VERSION":  "1.4.0",

		"SERVER_ADDRESS":         "localhost:8080",
		"SERVER_REQUEST_TIMEOUT": "30s",

		"ADAPTER_ADDRESS":         "http://localhost:8080",
		"ADAPTER_REQUEST_TIMEOUT": "10s",

		// Storage has nested prefixes: STORAGE_ + DB_
		"STORAGE_DB_DSN": "/var/lib/study/study.db",

		"WORKERS_HOT_INTERVAL":          "1m",
		"WORKERS_WARM_INTERVAL":         "5m",
		"WORKERS_CONNECTIVITY_INTERVAL": "15s",
		"WORKERS_BACKOFF_BASE":          "2s",
		"WORKERS_BACKOFF_MAX":           "2m",

		"LOG_FILE": "/var/log/study/client.log",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "security_hash", cfg.App.HashKey)
	assert.Equal(t, "1.4.0", cfg.App.Version)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)

	assert.Equal(t, "http://localhost:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 10*time.Second, cfg.Adapter.RequestTimeout)

	assert.Equal(t, "/var/lib/study/study.db", cfg.Storage.DB.DSN)

	assert.Equal(t, time.Minute, cfg.Workers.HotInterval)
	assert.Equal(t, 5*time.Minute, cfg.Workers.WarmInterval)
	assert.Equal(t, 15*time.Second, cfg.Workers.ConnectivityInterval)
	assert.Equal(t, 2*time.Second, cfg.Workers.BackoffBase)
	assert.Equal(t, 2*time.Minute, cfg.Workers.BackoffMax)

	assert.Equal(t, "/var/log/study/client.log", cfg.Log.File)
}

func TestParseEnv_PartialFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"SERVER_ADDRESS":       "localhost:8080",
		"WORKERS_HOT_INTERVAL": "45s",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Zero(t, cfg.Server.RequestTimeout)
	assert.Equal(t, 45*time.Second, cfg.Workers.HotInterval)
	assert.Zero(t, cfg.Workers.WarmInterval)

	// Others untouched
	assert.Equal(t, App{}, cfg.App)
	assert.Equal(t, Storage{}, cfg.Storage)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	// Arrange
	clearEnvVars(t)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"WORKERS_BACKOFF_MAX": "invalid_duration",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "env")
}

func TestParseEnv_DurationFormats(t *testing.T) {
	tests := []struct {
		name     string
		envValue string
		expected time.Duration
	}{
		{"hours", "2h", 2 * time.Hour},
		{"minutes", "45m", 45 * time.Minute},
		{"seconds", "30s", 30 * time.Second},
		{"combined", "1h30m", 90 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			setEnvVars(t, map[string]string{
				"ADAPTER_REQUEST_TIMEOUT": tt.envValue,
			})

			// Act
			cfg := &StructuredConfig{}
			err := parseEnv(cfg)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg.Adapter.RequestTimeout)
		})
	}
}

// Helpers

var configEnvKeys = []string{
	"CONFIG",

	"APP_HASH_KEY",
	"APP_VERSION",

	"SERVER_ADDRESS",
	"SERVER_REQUEST_TIMEOUT",

	"ADAPTER_ADDRESS",
	"ADAPTER_REQUEST_TIMEOUT",

	"STORAGE_DB_DSN",

	"WORKERS_HOT_INTERVAL",
	"WORKERS_WARM_INTERVAL",
	"WORKERS_CONNECTIVITY_INTERVAL",
	"WORKERS_BACKOFF_BASE",
	"WORKERS_BACKOFF_MAX",

	"LOG_FILE",
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

// clearEnvVars unsets every known key and restores the previous values
// when the test ends.
func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, k := range configEnvKeys {
		if prev, ok := os.LookupEnv(k); ok {
			t.Cleanup(func() { _ = os.Setenv(k, prev) })
		}
		_ = os.Unsetenv(k)
	}
}
