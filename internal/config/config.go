// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// secure-api service. It aggregates all sub-configurations and is populated
// by merging built-in defaults, an optional .env file, environment variables,
// command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the token signing key,
	// token lifetime, and the application version.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the optional side-store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address, allow-lists and timeout settings for the
	// HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from the other sources.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`

	// DotEnvPath is the optional path to a .env file loaded before the
	// environment is parsed. Populated via the DOTENV environment variable.
	DotEnvPath string `env:"DOTENV"`
}

// App holds application-level configuration values that control token
// signing, token lifecycle, logging and versioning.
type App struct {
	// TokenSignKey is the secret used to sign and verify bearer tokens with
	// HS256. The default is a well-known placeholder and must be overridden
	// outside of local development.
	// Env: APP_TOKEN_SIGN_KEY (legacy: SECRET_KEY)
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenDuration specifies how long an issued token remains valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// Version is the version string reported by /, /health and /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// Environment names the deployment environment (development, staging, prod).
	// Env: APP_ENVIRONMENT
	Environment string `env:"ENVIRONMENT"`

	// LogLevel is the zerolog level name (debug, info, warn, error).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Storage groups the configuration for the side-store.
type Storage struct {
	// Cache holds the key-value side-store connection settings.
	Cache Cache `envPrefix:"CACHE_"`
}

// Cache holds connection settings for the Redis side-store.
type Cache struct {
	// Address is a redis:// URL (e.g. "redis://redis:6379/0").
	// Env: STORAGE_CACHE_ADDRESS (legacy: REDIS_URL)
	Address string `env:"ADDRESS"`

	// PingTimeout bounds the startup liveness probe.
	// Env: STORAGE_CACHE_PING_TIMEOUT
	PingTimeout time.Duration `env:"PING_TIMEOUT"`
}

// Server holds network, allow-list and timeout settings for the inbound
// transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8000").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// AllowedHosts lists the Host header values accepted by the server.
	// Entries may start with "*." to match any subdomain. Empty disables
	// the check.
	// Env: SERVER_ALLOWED_HOSTS (comma separated)
	AllowedHosts []string `env:"ALLOWED_HOSTS" envSeparator:","`

	// AllowedOrigins lists the origins allowed by the CORS policy.
	// Env: SERVER_ALLOWED_ORIGINS (comma separated)
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`

	// ReadTimeout is the http.Server read timeout.
	// Env: SERVER_READ_TIMEOUT
	ReadTimeout time.Duration `env:"READ_TIMEOUT"`

	// WriteTimeout is the http.Server write timeout.
	// Env: SERVER_WRITE_TIMEOUT
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown of the HTTP server.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (later sources override non-zero fields of earlier ones):
//  1. Built-in defaults
//  2. .env file (if present)
//  3. Environment variables
//  4. Command-line flags
//  5. JSON file (path resolved from sources 3 and 4)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withDotEnv().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
