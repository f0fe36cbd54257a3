package service

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/MKhiriev/go-vault-adder/internal/adapter"
	"github.com/MKhiriev/go-vault-adder/internal/events"
	"github.com/MKhiriev/go-vault-adder/internal/logger"
	"github.com/MKhiriev/go-vault-adder/internal/state"
	"github.com/MKhiriev/go-vault-adder/models"
)

type vaultPromptService struct {
	backend      adapter.BackendAdapter
	appState     *state.AppState
	errorHandler ErrorHandler

	choices *events.Emitter[models.NewVaultChoice]
	active  atomic.Bool

	logger *logger.Logger
}

func NewVaultPromptService(backend adapter.BackendAdapter, appState *state.AppState, errorHandler ErrorHandler, logger *logger.Logger) VaultPromptService {
	return &vaultPromptService{
		backend:      backend,
		appState:     appState,
		errorHandler: errorHandler,
		choices:      events.NewEmitter[models.NewVaultChoice](),
		logger:       logger,
	}
}

func (s *vaultPromptService) ResolveVaultTarget(ctx context.Context) (*models.VaultTargetParameters, error) {
	if !s.active.CompareAndSwap(false, true) {
		return nil, ErrPromptInProgress
	}
	defer s.active.Store(false)

	choice, err := s.awaitChoice(ctx)
	if err != nil {
		return nil, err
	}

	var channel string
	var createNew bool
	switch choice {
	case models.ChoiceNew:
		channel, createNew = models.ChannelGetNewVaultFilename, true
	case models.ChoiceExisting:
		channel, createNew = models.ChannelGetExistingVaultFilename, false
	default:
		s.logger.Debug().Str("func", "vaultPromptService.ResolveVaultTarget").Msg("prompt cancelled")
		return nil, nil
	}

	filename, err := s.backend.Invoke(ctx, channel)
	if err != nil {
		err = fmt.Errorf("error invoking %s: %w", channel, mapAdapterError(err))
		s.errorHandler.HandleError(ctx, err)
		return nil, err
	}

	filename = strings.TrimSpace(filename)
	if filename == "" {
		return nil, nil
	}

	return &models.VaultTargetParameters{Filename: filename, CreateNew: createNew}, nil
}

// awaitChoice registers the one-shot listener before the prompt becomes
// visible and hides the prompt on every exit path.
func (s *vaultPromptService) awaitChoice(ctx context.Context) (models.NewVaultChoice, error) {
	listener := s.choices.Once()
	defer listener.Cancel()

	release := s.appState.PromptVisible.Acquire()
	defer release()

	select {
	case choice := <-listener.C():
		return choice, nil
	case <-ctx.Done():
		if !listener.Cancel() {
			// Emit already took this listener, its value is buffered on C.
			late := <-listener.C()
			s.logger.Warn().Str("func", "vaultPromptService.awaitChoice").
				Str("choice", string(late)).
				Msg("choice arrived after the prompt was cancelled, discarded")
		}
		return models.ChoiceCancel, ctx.Err()
	}
}

// SubmitChoice hands choice to the waiting prompt session and reports whether
// one was waiting. A session whose ctx ends at the same moment may still
// discard the choice after SubmitChoice returned true; the session then
// returns ctx.Err() and logs the discarded choice.
func (s *vaultPromptService) SubmitChoice(choice models.NewVaultChoice) bool {
	switch choice {
	case models.ChoiceNew, models.ChoiceExisting:
	default:
		choice = models.ChoiceCancel
	}

	return s.choices.Emit(choice) > 0
}
