package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-backend backend type: cloudsync, rest, readerapi or local
//	-base-url root URL of the remote service
//	-username remote account name
//	-password remote account password
//	-refresh-token long-lived cloudsync refresh token
//	-request-timeout outbound request timeout (e.g., "15s", "1m")
//	-d local database DSN (SQLite file path)
//	-c/-config json file path with configs
//	-sync-interval full refresh interval (e.g., "10m", "1h")
//	-flush-threshold pending-status queue size that triggers a push
//	-max-stream-pages page cap for one stream drain
func ParseFlags() *StructuredConfig {
	var backendType string
	var baseURL string
	var username string
	var password string
	var refreshToken string
	var requestTimeout time.Duration
	var databaseDSN string
	var jsonConfigPath string
	var syncInterval time.Duration
	var flushThreshold int
	var maxStreamPages int

	flag.StringVar(&backendType, "backend", "", "Backend type: cloudsync, rest, readerapi or local")
	flag.StringVar(&baseURL, "base-url", "", "Remote service base URL")
	flag.StringVar(&username, "username", "", "Remote account name")
	flag.StringVar(&password, "password", "", "Remote account password")
	flag.StringVar(&refreshToken, "refresh-token", "", "Cloudsync refresh token")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s, 1m)")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&syncInterval, "sync-interval", 0, "Full refresh interval (e.g., 10m, 1h)")
	flag.IntVar(&flushThreshold, "flush-threshold", 0, "Pending-status queue size that triggers a push")
	flag.IntVar(&maxStreamPages, "max-stream-pages", 0, "Page cap for one stream drain")

	flag.Parse()

	return &StructuredConfig{
		Backend: Backend{
			Type:           backendType,
			BaseURL:        baseURL,
			Username:       username,
			Password:       password,
			RefreshToken:   refreshToken,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Sync: Sync{
			Interval:       syncInterval,
			FlushThreshold: flushThreshold,
			MaxStreamPages: maxStreamPages,
		},
		JSONFilePath: jsonConfigPath,
	}
}
