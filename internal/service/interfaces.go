package service

import (
	"context"

	"github.com/MKhiriev/go-vault-adder/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// VaultBackendService is the privileged process side of the vault addition
// protocol.
type VaultBackendService interface {
	// AddVault registers the vault described by payload. The result is
	// always a reply envelope echoing payload.RequestID; failures are
	// reported through OK=false and a human-readable Error.
	AddVault(ctx context.Context, payload models.AddVaultPayload) models.ReplyEnvelope

	// NewVaultFilename answers get-new-vault-filename.
	NewVaultFilename(ctx context.Context) (string, error)

	// ExistingVaultFilename answers get-existing-vault-filename. An empty
	// string means no vault is available.
	ExistingVaultFilename(ctx context.Context) (string, error)

	// ShowError records a show-error notification sent by the client.
	ShowError(ctx context.Context, message string)

	// ListVaultSources returns the registered vault sources.
	ListVaultSources(ctx context.Context) ([]models.VaultSource, error)
}

// VaultBackendServiceWrapper decorates a [VaultBackendService].
type VaultBackendServiceWrapper interface {
	VaultBackendService
	Wrap(inner VaultBackendService) VaultBackendService
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
