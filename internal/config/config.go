// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Denis Kovalev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for qr-mint.
// It aggregates all sub-configurations and is populated by merging values
// from environment variables, command-line flags, an optional JSON file,
// and built-in defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version string.
	App App `envPrefix:"APP_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Render holds QR symbol rendering settings shared by server and client.
	Render Render `envPrefix:"RENDER_"`

	// Storage holds client-side persistence settings: the history database
	// and the PNG export directory.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds settings for the optional remote generation backend
	// used by the client in thin-client mode.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged underneath the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application.
	// Exposed via the /api/version/ endpoint.
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

// Render holds QR symbol rendering settings.
type Render struct {
	// PNGSize is the default PNG edge length in pixels used when a request
	// does not specify a size.
	// Env: RENDER_PNG_SIZE
	PNGSize int `env:"PNG_SIZE"`
}

// Storage groups the client-side persistence settings.
type Storage struct {
	// DB holds the history database settings.
	DB DB `envPrefix:"DB_"`

	// Exports holds the PNG export directory settings.
	Exports Exports `envPrefix:"EXPORTS_"`
}

// DB holds connection settings for the SQLite history database.
type DB struct {
	// DSN is the path to the SQLite database file holding the generation
	// history (e.g. "qr-mint.db").
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Exports holds file-system settings for saved QR code images.
type Exports struct {
	// Dir is the directory where generated PNG files are written.
	// Env: STORAGE_EXPORTS_DIR
	Dir string `env:"DIR"`
}

// Adapter holds settings for the optional remote generation backend.
// When HTTPAddress is empty the client generates payloads locally.
type Adapter struct {
	// HTTPAddress is the base URL of a qr-mint server
	// (e.g. "http://localhost:8080").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the timeout for outbound requests to the remote
	// backend.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background jobs.
type Workers struct {
	// HistoryLimit caps how many history entries the prune job keeps.
	// Env: WORKERS_HISTORY_LIMIT
	HistoryLimit int `env:"HISTORY_LIMIT"`

	// PruneInterval defines how often the history prune job runs.
	// Env: WORKERS_PRUNE_INTERVAL
	PruneInterval time.Duration `env:"PRUNE_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in priority order (earlier
// sources win for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
