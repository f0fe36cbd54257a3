package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-vault-adder/internal/config"
)

// VaultFileExtension is the extension of vault files in the vault directory.
const VaultFileExtension = ".bcup"

type vaultFiles struct {
	dir string
}

// NewVaultFiles returns a [VaultFiles] rooted at cfg.VaultDir, creating the
// directory when it does not exist.
func NewVaultFiles(cfg config.Files) (VaultFiles, error) {
	if cfg.VaultDir == "" {
		return nil, ErrEmptyVaultDir
	}

	dir, err := filepath.Abs(cfg.VaultDir)
	if err != nil {
		return nil, fmt.Errorf("error resolving vault directory: %w", err)
	}
	if err = os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("error creating vault directory: %w", err)
	}

	return &vaultFiles{dir: dir}, nil
}

func (v *vaultFiles) NewVaultFilename(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("error generating vault file id: %w", err)
	}

	return filepath.Join(v.dir, "vault-"+id.String()+VaultFileExtension), nil
}

func (v *vaultFiles) ExistingVaultFilename(ctx context.Context) (string, error) {
	entries, err := os.ReadDir(v.dir)
	if err != nil {
		return "", fmt.Errorf("error reading vault directory: %w", err)
	}

	var (
		latest   string
		latestAt time.Time
	)
	for _, entry := range entries {
		if err = ctx.Err(); err != nil {
			return "", err
		}
		if !entry.Type().IsRegular() || !strings.EqualFold(filepath.Ext(entry.Name()), VaultFileExtension) {
			continue
		}

		info, infoErr := entry.Info()
		if infoErr != nil {
			// removed between ReadDir and Info
			continue
		}
		if latest == "" || info.ModTime().After(latestAt) {
			latest = filepath.Join(v.dir, entry.Name())
			latestAt = info.ModTime()
		}
	}

	return latest, nil
}

// Resolve makes a relative filename relative to the vault directory.
func (v *vaultFiles) Resolve(filename string) string {
	if filename == "" || filepath.IsAbs(filename) {
		return filename
	}
	return filepath.Join(v.dir, filename)
}

func (v *vaultFiles) Exists(_ context.Context, filename string) (bool, error) {
	info, err := os.Stat(v.Resolve(filename))
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("error checking vault file: %w", err)
	}

	return info.Mode().IsRegular(), nil
}

func (v *vaultFiles) Create(_ context.Context, filename string) error {
	filename = v.Resolve(filename)
	if err := os.MkdirAll(filepath.Dir(filename), 0o700); err != nil {
		return fmt.Errorf("error creating vault file directory: %w", err)
	}

	f, err := os.OpenFile(filename, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
	if os.IsExist(err) {
		return ErrVaultFileExists
	}
	if err != nil {
		return fmt.Errorf("error creating vault file: %w", err)
	}

	return f.Close()
}

func (v *vaultFiles) Remove(_ context.Context, filename string) error {
	if err := os.Remove(v.Resolve(filename)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("error removing vault file: %w", err)
	}

	return nil
}
