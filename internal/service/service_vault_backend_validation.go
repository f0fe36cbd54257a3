package service

import (
	"context"

	"github.com/MKhiriev/go-vault-adder/internal/logger"
	"github.com/MKhiriev/go-vault-adder/internal/validators"
	"github.com/MKhiriev/go-vault-adder/models"
)

// VaultBackendValidationService checks add-vault payloads before they reach
// the wrapped service. Invalid payloads are answered with a rejected reply.
type VaultBackendValidationService struct {
	inner     VaultBackendService
	validator validators.Validator
}

func NewVaultBackendValidationService() VaultBackendServiceWrapper {
	return &VaultBackendValidationService{
		validator: validators.NewVaultPayloadValidator(),
	}
}

func (v *VaultBackendValidationService) AddVault(ctx context.Context, payload models.AddVaultPayload) models.ReplyEnvelope {
	if err := v.validator.Validate(ctx, payload); err != nil {
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "*VaultBackendValidationService.AddVault").
			Str("request_id", payload.RequestID).
			Msg("invalid add-vault payload")
		return rejectedReply(payload.RequestID, err.Error())
	}

	return v.inner.AddVault(ctx, payload)
}

func (v *VaultBackendValidationService) NewVaultFilename(ctx context.Context) (string, error) {
	return v.inner.NewVaultFilename(ctx)
}

func (v *VaultBackendValidationService) ExistingVaultFilename(ctx context.Context) (string, error) {
	return v.inner.ExistingVaultFilename(ctx)
}

func (v *VaultBackendValidationService) ShowError(ctx context.Context, message string) {
	v.inner.ShowError(ctx, message)
}

func (v *VaultBackendValidationService) ListVaultSources(ctx context.Context) ([]models.VaultSource, error) {
	return v.inner.ListVaultSources(ctx)
}

func (v *VaultBackendValidationService) Wrap(inner VaultBackendService) VaultBackendService {
	v.inner = inner
	return v
}
