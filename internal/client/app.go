package client

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-vault-adder/internal/adapter"
	"github.com/MKhiriev/go-vault-adder/internal/config"
	"github.com/MKhiriev/go-vault-adder/internal/logger"
	"github.com/MKhiriev/go-vault-adder/internal/service"
	"github.com/MKhiriev/go-vault-adder/internal/state"
	"github.com/MKhiriev/go-vault-adder/internal/tui"
	"github.com/MKhiriev/go-vault-adder/internal/workers"
	"github.com/MKhiriev/go-vault-adder/models"
)

type App struct {
	services *service.ClientServices
	ui       UI
	workers  *workers.Workers

	logger *logger.Logger
}

// NewApp wires the adapter, application state, services, workers and the
// terminal UI of the client.
func NewApp(cfg *config.ClientConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	backend, err := adapter.NewHTTPBackendAdapter(cfg.Adapter, cfg.Security, log)
	if err != nil {
		return nil, fmt.Errorf("create backend adapter: %w", err)
	}

	appState := state.NewAppState()
	services := service.NewClientServices(backend, appState, cfg.Adapter, log)

	ui, err := tui.New(services, appState, buildInfo, log)
	if err != nil {
		services.Close()
		return nil, fmt.Errorf("create ui: %w", err)
	}

	return newApp(services, ui, log), nil
}

func newApp(services *service.ClientServices, ui UI, log *logger.Logger) *App {
	return &App{
		services: services,
		ui:       ui,
		workers:  workers.NewWorkers(workers.NewVaultAddedNotifier(services.VaultAddition, services.ErrorHandler, log)),
		logger:   log,
	}
}

func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		a.workers.Run(ctx)
	}()

	defer func() {
		cancel()
		wg.Wait()
		a.services.Close()
	}()

	err := a.ui.Run(ctx)
	if errors.Is(err, tui.ErrUserQuit) {
		a.logger.Info().Str("func", "*App.Run").Msg("user quit")
		return nil
	}

	return err
}
