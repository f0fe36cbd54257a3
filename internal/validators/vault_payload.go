package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-vault-adder/models"
	"github.com/google/uuid"
)

// Field names accepted by [VaultPayloadValidator].
const (
	FieldRequestID        = "request_id"
	FieldDatasource       = "datasource"
	FieldMasterPassword   = "master_password"
	FieldFileNameOverride = "file_name_override"
)

var allowedDatasourceTypes = []string{
	models.DatasourceFile,
}

// VaultPayloadValidator validates add-vault payloads received by the
// privileged process. It accepts models.AddVaultPayload and
// models.DatasourceConfig, by value or by pointer.
type VaultPayloadValidator struct {
}

func NewVaultPayloadValidator() Validator {
	return &VaultPayloadValidator{}
}

func (v *VaultPayloadValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.AddVaultPayload:
		return v.validateAddVaultPayload(ctx, value, fields...)
	case *models.AddVaultPayload:
		return v.validateAddVaultPayload(ctx, *value, fields...)

	case models.DatasourceConfig:
		return v.validateDatasource(value)
	case *models.DatasourceConfig:
		return v.validateDatasource(*value)

	default:
		return ErrUnsupportedType
	}
}

func (v *VaultPayloadValidator) validateAddVaultPayload(ctx context.Context, payload models.AddVaultPayload, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldRequestID, FieldDatasource, FieldMasterPassword, FieldFileNameOverride}
	}

	for _, f := range fields {
		switch f {
		case FieldRequestID:
			if _, err := uuid.Parse(payload.RequestID); err != nil {
				return ErrInvalidRequestID
			}
		case FieldDatasource:
			if err := v.validateDatasource(payload.DatasourceConfig); err != nil {
				return err
			}
		case FieldMasterPassword:
			if payload.MasterPassword == "" {
				return ErrEmptyMasterPassword
			}
		case FieldFileNameOverride:
			if payload.FileNameOverride != nil && strings.TrimSpace(*payload.FileNameOverride) == "" {
				return ErrEmptyFileNameOverride
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *VaultPayloadValidator) validateDatasource(cfg models.DatasourceConfig) error {
	if cfg.Type == "" {
		return ErrEmptyDatasourceType
	}
	if !isAllowedDatasource(cfg.Type) {
		return ErrUnsupportedDatasource
	}

	if cfg.Type == models.DatasourceFile && strings.TrimSpace(cfg.Property(models.DatasourcePathProperty)) == "" {
		return ErrEmptyDatasourcePath
	}

	return nil
}

func isAllowedDatasource(typ string) bool {
	for _, t := range allowedDatasourceTypes {
		if t == typ {
			return true
		}
	}
	return false
}
