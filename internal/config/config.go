// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container shared by both
// binaries. It is populated by merging env vars, flags and an optional JSON
// file.
//
// Struct tags:
//   - envPrefix: prefix applied to nested env lookups (caarlos0/env).
//   - env      : env variable name for scalar fields.
type StructuredConfig struct {
	// App holds shared secrets and application-level settings.
	App App `envPrefix:"APP_"`

	// Adapter holds the client's transport settings towards the backend.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Server holds the backend's listening address and timeouts.
	Server Server `envPrefix:"SERVER_"`

	// Storage holds the backend's vault-source registry and vault directory.
	Storage Storage `envPrefix:"STORAGE_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG env variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds values shared by the client and the backend.
type App struct {
	// HashKey is the HMAC key used for the HashSHA256 body integrity header.
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// TokenSignKey signs and verifies the bearer tokens the client presents
	// to the backend.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of issued tokens.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is how long an issued token stays valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// Version is reported by the backend's version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogFile is where the interactive client writes its logs.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Adapter holds the client's outbound transport settings.
type Adapter struct {
	// HTTPAddress is the backend address, "host:port" or a full URL.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single HTTP round trip.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ReplyTimeout bounds the wait for an add-vault-config reply.
	// Env: ADAPTER_REPLY_TIMEOUT
	ReplyTimeout time.Duration `env:"REPLY_TIMEOUT"`
}

// Server holds the backend's inbound transport settings.
type Server struct {
	// HTTPAddress is the listening address in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds the handling of a single request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the backend's persistence settings.
type Storage struct {
	DB    DB    `envPrefix:"DB_"`
	Files Files `envPrefix:"FILES_"`
}

// DB holds the vault-source registry connection settings.
type DB struct {
	// DSN is a SQLite file path or a "postgres://" connection string.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Files holds file-system settings used to resolve vault filenames.
type Files struct {
	// VaultDir is the directory in which vault files are created and looked up.
	// Env: STORAGE_FILES_VAULT_DIR
	VaultDir string `env:"VAULT_DIR"`
}

// GetStructuredConfig loads and merges configuration from env, flags and
// the JSON file (path resolved from the first two sources).
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
