package service

import (
	"github.com/MKhiriev/go-vault-adder/internal/adapter"
	"github.com/MKhiriev/go-vault-adder/internal/config"
	"github.com/MKhiriev/go-vault-adder/internal/logger"
	"github.com/MKhiriev/go-vault-adder/internal/state"
)

type ClientServices struct {
	ErrorHandler  ErrorHandler
	VaultAddition VaultAdditionService
	VaultPrompt   VaultPromptService
	VaultFlow     VaultFlowService
}

func NewClientServices(backend adapter.BackendAdapter, appState *state.AppState, adapterCfg config.ClientAdapter, logger *logger.Logger) *ClientServices {
	errHandler := NewErrorHandler(logger)
	additionSvc := NewVaultAdditionService(backend, appState, errHandler, adapterCfg.ReplyTimeout, logger)
	promptSvc := NewVaultPromptService(backend, appState, errHandler, logger)

	return &ClientServices{
		ErrorHandler:  errHandler,
		VaultAddition: additionSvc,
		VaultPrompt:   promptSvc,
		VaultFlow:     NewVaultFlowService(promptSvc, additionSvc),
	}
}

// Close releases adapter subscriptions held by the services.
func (s *ClientServices) Close() {
	s.VaultAddition.Close()
}
