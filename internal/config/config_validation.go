// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Only cross-source invariants live here. Role-specific rules are checked by
// [ClientConfig.validate] and [StructuredConfig.ValidateServer].
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.RequestTimeout < 0 || cfg.Adapter.RequestTimeout < 0 {
		return ErrInvalidTimeoutConfigs
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	w := cfg.Workers
	if w.HotInterval <= 0 || w.WarmInterval <= 0 || w.ConnectivityInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}
	if w.BackoffBase <= 0 || w.BackoffMax < w.BackoffBase {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

// ValidateServer checks the settings the reference server cannot start
// without.
func (cfg *StructuredConfig) ValidateServer() error {
	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}
	if cfg.App.Version == "" {
		return ErrInvalidAppConfigs
	}
	return nil
}
