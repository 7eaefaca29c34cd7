// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-budget-sync application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Auth holds token issuance settings used by the reference server.
	Auth Auth `envPrefix:"AUTH_"`

	// Security holds shared transport security settings.
	Security Security `envPrefix:"SECURITY_"`

	// Storage holds configuration for all persistence backends: the
	// server-side document database and the client-side replica cache.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds settings for the client's remote store transport.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Auth holds configuration for issuing and validating JWT bearer tokens.
type Auth struct {
	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Must be kept confidential.
	// Env: AUTH_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// Env: AUTH_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a JWT token remains valid after
	// issuance (e.g. "1h", "30m").
	// Env: AUTH_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`
}

// Security holds shared transport-security settings used by both halves.
type Security struct {
	// HashKey is the HMAC key used for request integrity checking
	// (the HashSHA256 header).
	// Env: SECURITY_HASH_KEY
	HashKey string `env:"HASH_KEY"`
}

// Storage groups the configuration for all storage backends used by the
// application.
type Storage struct {
	// DB holds the server-side document database connection settings.
	DB DB `envPrefix:"DB_"`

	// Cache holds the client-side replica cache settings.
	Cache Cache `envPrefix:"CACHE_"`
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

// DB holds connection settings for the document database backend.
type DB struct {
	// DSN is the Data Source Name used to open the database connection.
	// A "postgres://" DSN selects the PostgreSQL backend; any other value
	// is treated as an SQLite file path.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Cache holds file-system settings for the client's local replica cache.
type Cache struct {
	// Path is the bbolt database file holding replica documents, the mode
	// flag, the session record, and the deferred sync queue.
	// Env: STORAGE_CACHE_PATH
	Path string `env:"PATH"`
}

// Adapter holds settings for the client's outbound transport to the remote
// document store.
type Adapter struct {
	// HTTPAddress is the base address of the remote document store server,
	// in "host:port" or URL format.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single outbound
	// request (e.g. "15s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// DrainInterval defines how often the background drain job replays the
	// deferred sync queue against the remote store.
	// Env: WORKERS_DRAIN_INTERVAL
	DrainInterval time.Duration `env:"DRAIN_INTERVAL"`
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
