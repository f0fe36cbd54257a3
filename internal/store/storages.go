package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-vault-adder/internal/config"
	"github.com/MKhiriev/go-vault-adder/internal/logger"
)

// Storages bundles the backend's persistence dependencies.
type Storages struct {
	VaultSourceRepository VaultSourceRepository
	VaultFiles            VaultFiles

	db *DB
}

// NewStorages connects the registry database, applies migrations and
// prepares the vault directory.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting vault source registry: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("error migrating vault source registry: %w", err)
	}

	files, err := NewVaultFiles(cfg.Files)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Storages{
		VaultSourceRepository: NewVaultSourceRepository(db, log),
		VaultFiles:            files,
		db:                    db,
	}, nil
}

// Close releases the database connection.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}

	return s.db.Close()
}
