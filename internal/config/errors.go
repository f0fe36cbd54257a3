package config

import "errors"

// Validation errors returned when a per-binary config view is incomplete.
var (
	// ErrInvalidAdapterConfigs indicates missing client transport settings
	// (backend address or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidServerConfigs indicates a missing backend listen address.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidStorageConfigs indicates an empty DSN or vault directory.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates missing shared secrets.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
)
