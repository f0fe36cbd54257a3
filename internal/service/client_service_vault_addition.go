// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-vault-adder/internal/adapter"
	"github.com/MKhiriev/go-vault-adder/internal/app"
	"github.com/MKhiriev/go-vault-adder/internal/events"
	"github.com/MKhiriev/go-vault-adder/internal/ipc"
	"github.com/MKhiriev/go-vault-adder/internal/logger"
	"github.com/MKhiriev/go-vault-adder/internal/state"
	"github.com/MKhiriev/go-vault-adder/internal/utils"
	"github.com/MKhiriev/go-vault-adder/internal/validators"
	"github.com/MKhiriev/go-vault-adder/models"
)

const defaultReplyTimeout = 30 * time.Second

type vaultAdditionService struct {
	backend      adapter.BackendAdapter
	appState     *state.AppState
	errorHandler ErrorHandler
	idGenerator  RequestIDGenerator
	replyTimeout time.Duration

	correlator  *ipc.Correlator
	vaultAdded  *events.Emitter[models.VaultSourceID]
	unsubscribe func()

	logger *logger.Logger
}

// NewVaultAdditionService subscribes to add-vault-config replies on backend
// and returns a VaultAdditionService. A non-positive replyTimeout defaults
// to 30 seconds.
func NewVaultAdditionService(
	backend adapter.BackendAdapter,
	appState *state.AppState,
	errorHandler ErrorHandler,
	replyTimeout time.Duration,
	logger *logger.Logger,
) VaultAdditionService {
	if replyTimeout <= 0 {
		replyTimeout = defaultReplyTimeout
	}

	s := &vaultAdditionService{
		backend:      backend,
		appState:     appState,
		errorHandler: errorHandler,
		idGenerator:  utils.NewUUIDGenerator(),
		replyTimeout: replyTimeout,
		correlator:   ipc.NewCorrelator(),
		vaultAdded:   events.NewEmitter[models.VaultSourceID](),
		logger:       logger,
	}
	s.unsubscribe = backend.OnMessage(models.ChannelAddVaultConfigReply, s.handleReply)

	return s
}

func (s *vaultAdditionService) AddVaultTarget(
	ctx context.Context,
	cfg models.DatasourceConfig,
	password string,
	createNew bool,
	fileNameOverride *string,
) (models.VaultSourceID, error) {
	strength := validators.EvaluatePasswordStrength(password)

	release := s.appState.Busy.Acquire()
	defer release()

	payload := models.AddVaultPayload{
		RequestID:        s.idGenerator.Generate(),
		CreateNew:        createNew,
		DatasourceConfig: cfg,
		MasterPassword:   password,
		FileNameOverride: fileNameOverride,
	}
	log := s.logger.WithRequestID(payload.RequestID)

	if strength == validators.Weak {
		log.Info().Str("func", "vaultAdditionService.AddVaultTarget").Msg("password is weak")
		if err := s.backend.Send(ctx, models.ChannelShowError, models.NotificationPayload{Message: app.MsgPasswordIsWeak}); err != nil {
			log.Err(err).Str("func", "vaultAdditionService.AddVaultTarget").Msg("show-error notification failed")
		}
		return "", s.fail(ctx, ErrWeakPassword)
	}

	pending, err := s.correlator.Register(payload.RequestID)
	if err != nil {
		return "", s.fail(ctx, fmt.Errorf("error registering reply listener: %w", err))
	}
	defer pending.Cancel()

	log.Info().Str("func", "vaultAdditionService.AddVaultTarget").
		Str("datasource", cfg.Type).
		Bool("create_new", createNew).
		Msg("adding new vault")

	if err = s.backend.Send(ctx, models.ChannelAddVaultConfig, payload); err != nil {
		return "", s.fail(ctx, fmt.Errorf("error sending %s: %w", models.ChannelAddVaultConfig, mapAdapterError(err)))
	}

	timer := time.NewTimer(s.replyTimeout)
	defer timer.Stop()

	select {
	case reply := <-pending.C():
		sourceID, err := replyResult(reply)
		if err != nil {
			return "", s.fail(ctx, err)
		}

		release()
		log.Info().Str("func", "vaultAdditionService.AddVaultTarget").
			Str("source_id", sourceID.String()).
			Msg("vault added")
		s.vaultAdded.Emit(sourceID)

		return sourceID, nil

	case <-ctx.Done():
		return "", s.fail(ctx, ctx.Err())

	case <-timer.C:
		return "", s.fail(ctx, ErrAdditionTimeout)
	}
}

func (s *vaultAdditionService) OnVaultAdded(fn func(models.VaultSourceID)) (unsubscribe func()) {
	return s.vaultAdded.Subscribe(fn)
}

func (s *vaultAdditionService) Close() {
	if s.unsubscribe != nil {
		s.unsubscribe()
	}
}

// handleReply routes a raw add-vault-config reply to its waiting call.
// Undecodable and unmatched replies are dropped.
func (s *vaultAdditionService) handleReply(data []byte) {
	var reply models.ReplyEnvelope
	if err := json.Unmarshal(data, &reply); err != nil {
		s.logger.Err(err).Str("func", "vaultAdditionService.handleReply").Msg("undecodable reply dropped")
		return
	}

	if !s.correlator.Resolve(reply) {
		s.logger.Warn().Str("func", "vaultAdditionService.handleReply").
			Str("request_id", reply.RequestID).
			Msg("reply for unknown request dropped")
	}
}

// fail reports err unless it is a cancellation and returns it unchanged.
func (s *vaultAdditionService) fail(ctx context.Context, err error) error {
	if !errors.Is(err, context.Canceled) {
		s.errorHandler.HandleError(ctx, err)
	}
	return err
}

func replyResult(reply models.ReplyEnvelope) (models.VaultSourceID, error) {
	if !reply.OK {
		return "", &AdditionRejectedError{Message: reply.Error}
	}
	if reply.SourceID == "" {
		return "", ErrEmptySourceID
	}
	return reply.SourceID, nil
}
