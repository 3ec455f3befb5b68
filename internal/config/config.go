// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Known backend type identifiers accepted in [Backend.Type].
const (
	// BackendCloudSync selects the proprietary sync-cloud adapter
	// (JWT session, incremental change feed).
	BackendCloudSync = "cloudsync"

	// BackendREST selects the Feedbin-style REST aggregator adapter.
	BackendREST = "rest"

	// BackendReaderAPI selects the Google-Reader-API-compatible adapter
	// (FreshRSS, The Old Reader, …).
	BackendReaderAPI = "readerapi"

	// BackendLocal selects the offline no-op adapter: all reads are
	// empty, all writes succeed without leaving the process.
	BackendLocal = "local"
)

// StructuredConfig is the top-level configuration container for the
// sync engine. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Backend selects and configures the remote service adapter.
	Backend Backend `envPrefix:"BACKEND_"`

	// Storage holds configuration for the local persistence layer.
	Storage Storage `envPrefix:"STORAGE_"`

	// Sync holds tuning knobs for the periodic refresh worker and the
	// sync coordinator.
	Sync Sync `envPrefix:"SYNC_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Backend selects the remote aggregator and carries its credentials.
type Backend struct {
	// Type names the adapter to run: one of "cloudsync", "rest",
	// "readerapi" or "local".
	// Env: BACKEND_TYPE
	Type string `env:"TYPE"`

	// BaseURL is the root URL of the remote service
	// (e.g. "https://freshrss.example.net/api/greader.php").
	// Ignored by the local backend.
	// Env: BACKEND_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// Username is the account name for basic-auth and ClientLogin
	// backends (rest, readerapi).
	// Env: BACKEND_USERNAME
	Username string `env:"USERNAME"`

	// Password is the account password for basic-auth and ClientLogin
	// backends. Must be kept confidential.
	// Env: BACKEND_PASSWORD
	Password string `env:"PASSWORD"`

	// RefreshToken is the long-lived token the cloudsync backend trades
	// for short-lived JWT sessions. Must be kept confidential.
	// Env: BACKEND_REFRESH_TOKEN
	RefreshToken string `env:"REFRESH_TOKEN"`

	// RequestTimeout is the maximum duration of one outbound request
	// before the adapter cancels it (e.g. "15s", "1m").
	// Env: BACKEND_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the configuration for the local persistence layer.
type Storage struct {
	// DB holds the local database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite data source name, a file path in practice
	// (e.g. "/var/lib/feedsync/feedsync.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Sync holds tuning knobs for the refresh worker and the coordinator.
type Sync struct {
	// Interval defines how often the background worker runs a full
	// refresh (e.g. "10m", "1h").
	// Env: SYNC_INTERVAL
	Interval time.Duration `env:"INTERVAL"`

	// FlushThreshold is the pending-status queue size above which a
	// local status change triggers an opportunistic push to the backend.
	// Zero keeps the coordinator default.
	// Env: SYNC_FLUSH_THRESHOLD
	FlushThreshold int `env:"FLUSH_THRESHOLD"`

	// MaxStreamPages bounds one article-ID stream drain as a runaway
	// guard against backends that never terminate their cursor chain.
	// Zero keeps the coordinator default.
	// Env: SYNC_MAX_STREAM_PAGES
	MaxStreamPages int `env:"MAX_STREAM_PAGES"`
}

// GetStructuredConfig loads, merges, and validates the engine
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
