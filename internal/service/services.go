package service

import (
	"github.com/MKhiriev/go-vault-adder/internal/logger"
	"github.com/MKhiriev/go-vault-adder/internal/store"
)

type Services struct {
	VaultBackendService VaultBackendService
	AppInfoService      AppInfoService
}

// NewServices builds the backend services; the vault service is wrapped
// with payload validation.
func NewServices(storages *store.Storages, version string, logger *logger.Logger) (*Services, error) {
	if storages == nil {
		return nil, ErrNilStorages
	}

	appInfo, err := NewAppInfoService(version, logger)
	if err != nil {
		return nil, err
	}

	backend := NewVaultBackendService(storages.VaultSourceRepository, storages.VaultFiles, logger)

	return &Services{
		VaultBackendService: NewVaultBackendValidationService().Wrap(backend),
		AppInfoService:      appInfo,
	}, nil
}
