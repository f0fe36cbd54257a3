// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-vault-adder/models"
)

// VaultSourceRepository persists the vault sources registered by the backend.
type VaultSourceRepository interface {
	// Create stores source. Returns [ErrVaultSourceExists] when a source with
	// the same ID or the same (type, filename) pair is already registered.
	Create(ctx context.Context, source models.VaultSource) error

	// FindByFilename returns the source registered for filename, or
	// [ErrVaultSourceNotFound].
	FindByFilename(ctx context.Context, filename string) (models.VaultSource, error)

	// List returns all registered sources, newest first.
	List(ctx context.Context) ([]models.VaultSource, error)
}

// VaultFiles resolves vault filenames inside the configured vault directory.
type VaultFiles interface {
	// NewVaultFilename returns a path for a vault file that does not exist yet.
	NewVaultFilename(ctx context.Context) (string, error)

	// ExistingVaultFilename returns the most recently modified vault file, or
	// an empty string when the directory holds none.
	ExistingVaultFilename(ctx context.Context) (string, error)

	// Resolve returns filename as an absolute path. Relative names are
	// taken relative to the vault directory. Exists, Create and Remove
	// resolve their argument the same way.
	Resolve(filename string) string

	// Exists reports whether filename refers to an existing regular file.
	Exists(ctx context.Context, filename string) (bool, error)

	// Create creates an empty vault file. Returns [ErrVaultFileExists] when
	// filename is already taken.
	Create(ctx context.Context, filename string) error

	// Remove deletes filename. A missing file is not an error.
	Remove(ctx context.Context, filename string) error
}

// ErrorClassificator decides whether a failed database operation may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
