// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/MKhiriev/go-vault-adder/internal/app"
	"github.com/MKhiriev/go-vault-adder/internal/logger"
	"github.com/MKhiriev/go-vault-adder/internal/store"
	"github.com/MKhiriev/go-vault-adder/internal/utils"
	"github.com/MKhiriev/go-vault-adder/models"
)

// vaultBackendService registers vault sources and answers filename requests.
// Vault contents are never read or written here; a new vault is created as
// an empty file for the vault engine to fill.
type vaultBackendService struct {
	sources     store.VaultSourceRepository
	files       store.VaultFiles
	idGenerator RequestIDGenerator
	now         func() time.Time

	logger *logger.Logger
}

func NewVaultBackendService(sources store.VaultSourceRepository, files store.VaultFiles, logger *logger.Logger) VaultBackendService {
	return &vaultBackendService{
		sources:     sources,
		files:       files,
		idGenerator: utils.NewUUIDGenerator(),
		now:         time.Now,
		logger:      logger,
	}
}

func (s *vaultBackendService) AddVault(ctx context.Context, payload models.AddVaultPayload) models.ReplyEnvelope {
	log := logger.FromContext(ctx).WithRequestID(payload.RequestID)

	if payload.DatasourceConfig.Type != models.DatasourceFile {
		log.Warn().Str("func", "*vaultBackendService.AddVault").
			Str("datasource_type", payload.DatasourceConfig.Type).
			Msg("unsupported datasource")
		return rejectedReply(payload.RequestID, app.MsgUnsupportedDatasource)
	}

	filename := s.files.Resolve(targetFilename(payload))

	exists, err := s.files.Exists(ctx, filename)
	if err != nil {
		log.Err(err).Str("func", "*vaultBackendService.AddVault").Msg("error checking vault file")
		return rejectedReply(payload.RequestID, app.MsgInternalServerError)
	}

	switch {
	case payload.CreateNew && exists:
		return rejectedReply(payload.RequestID, app.MsgVaultFileExists)
	case !payload.CreateNew && !exists:
		return rejectedReply(payload.RequestID, app.MsgVaultFileNotFound)
	}

	if payload.CreateNew {
		if err = s.files.Create(ctx, filename); err != nil {
			if errors.Is(err, store.ErrVaultFileExists) {
				return rejectedReply(payload.RequestID, app.MsgVaultFileExists)
			}
			log.Err(err).Str("func", "*vaultBackendService.AddVault").Msg("error creating vault file")
			return rejectedReply(payload.RequestID, app.MsgInternalServerError)
		}
	}

	source := models.VaultSource{
		SourceID:  models.VaultSourceID(s.idGenerator.Generate()),
		Type:      payload.DatasourceConfig.Type,
		Filename:  filename,
		CreateNew: payload.CreateNew,
		CreatedAt: s.now().UTC(),
	}

	if err = s.sources.Create(ctx, source); err != nil {
		if payload.CreateNew {
			// created above, nothing refers to it now
			if rmErr := s.files.Remove(ctx, filename); rmErr != nil {
				log.Err(rmErr).Str("func", "*vaultBackendService.AddVault").Msg("error removing orphan vault file")
			}
		}
		if errors.Is(err, store.ErrVaultSourceExists) {
			return rejectedReply(payload.RequestID, app.MsgVaultSourceExists)
		}
		log.Err(err).Str("func", "*vaultBackendService.AddVault").Msg("error registering vault source")
		return rejectedReply(payload.RequestID, app.MsgInternalServerError)
	}

	log.Info().Str("func", "*vaultBackendService.AddVault").
		Str("source_id", source.SourceID.String()).
		Str("filename", filename).
		Bool("create_new", payload.CreateNew).
		Msg("vault source registered")

	return models.ReplyEnvelope{
		RequestID: payload.RequestID,
		OK:        true,
		SourceID:  source.SourceID,
	}
}

func (s *vaultBackendService) NewVaultFilename(ctx context.Context) (string, error) {
	return s.files.NewVaultFilename(ctx)
}

func (s *vaultBackendService) ExistingVaultFilename(ctx context.Context) (string, error) {
	return s.files.ExistingVaultFilename(ctx)
}

func (s *vaultBackendService) ShowError(ctx context.Context, message string) {
	message = strings.TrimSpace(message)
	if message == "" {
		return
	}

	logger.FromContext(ctx).Warn().Str("func", "*vaultBackendService.ShowError").
		Str("message", message).
		Msg("client error notification")
}

func (s *vaultBackendService) ListVaultSources(ctx context.Context) ([]models.VaultSource, error) {
	return s.sources.List(ctx)
}

// targetFilename prefers a non-blank override over the datasource path.
func targetFilename(payload models.AddVaultPayload) string {
	if payload.FileNameOverride != nil {
		if override := strings.TrimSpace(*payload.FileNameOverride); override != "" {
			return override
		}
	}

	return strings.TrimSpace(payload.DatasourceConfig.Property(models.DatasourcePathProperty))
}

func rejectedReply(requestID, message string) models.ReplyEnvelope {
	return models.ReplyEnvelope{
		RequestID: requestID,
		OK:        false,
		Error:     message,
	}
}
