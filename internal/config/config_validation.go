// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// engine invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error
// wrapping one of the Err* sentinels otherwise.
func (cfg *StructuredConfig) validate() error {
	switch cfg.Backend.Type {
	case BackendLocal:
		// No credentials, no base URL.
	case BackendCloudSync:
		if cfg.Backend.RefreshToken == "" {
			return fmt.Errorf("%w: cloudsync backend needs a refresh token", ErrInvalidBackendConfigs)
		}
	case BackendREST, BackendReaderAPI:
		if cfg.Backend.BaseURL == "" {
			return fmt.Errorf("%w: %s backend needs a base URL", ErrInvalidBackendConfigs, cfg.Backend.Type)
		}
		if cfg.Backend.Username == "" || cfg.Backend.Password == "" {
			return fmt.Errorf("%w: %s backend needs credentials", ErrInvalidBackendConfigs, cfg.Backend.Type)
		}
	default:
		return fmt.Errorf("%w: unknown backend type %q", ErrInvalidBackendConfigs, cfg.Backend.Type)
	}

	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Sync.Interval == 0 {
		return ErrInvalidSyncConfigs
	}

	return nil
}
