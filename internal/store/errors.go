package store

import "errors"

var (
	ErrVaultSourceExists   = errors.New("vault source already registered")
	ErrVaultSourceNotFound = errors.New("vault source not found")
	ErrVaultFileExists     = errors.New("vault file already exists")
	ErrEmptyVaultDir       = errors.New("vault directory is not configured")
)
