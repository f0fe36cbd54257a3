// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the terminal front end of the vault addition
// client on top of Bubble Tea.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-vault-adder/internal/logger"
	"github.com/MKhiriev/go-vault-adder/internal/service"
	"github.com/MKhiriev/go-vault-adder/internal/state"
	"github.com/MKhiriev/go-vault-adder/models"
)

var errNilServices = errors.New("client services are nil")

type TUI struct {
	services  *service.ClientServices
	appState  *state.AppState
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

func New(services *service.ClientServices, appState *state.AppState, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if services == nil || appState == nil {
		return nil, errNilServices
	}
	return &TUI{services: services, appState: appState, buildInfo: buildInfo, logger: logger}, nil
}

// Run shows the vault addition screen until the user quits. Commands
// still waiting on the prompt are cancelled on exit.
func (t *TUI) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	model := newAppModel(ctx, t.services.VaultFlow, t.services.VaultPrompt, t.buildInfo)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	unsubscribe := bridge(program, t.appState, t.services)
	defer unsubscribe()

	finalModel, err := program.Run()
	if err != nil {
		t.logger.Err(err).Str("func", "*TUI.Run").Msg("tui program stopped")
		return err
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}

	return nil
}

// messageSender is satisfied by *tea.Program.
type messageSender interface {
	Send(msg tea.Msg)
}

// bridge forwards flag changes, notifications and additions into the
// program's message loop.
func bridge(sender messageSender, appState *state.AppState, services *service.ClientServices) (unsubscribe func()) {
	unsubscribers := []func(){
		appState.Busy.Subscribe(func(v bool) { sender.Send(busyChangedMsg{busy: v}) }),
		appState.PromptVisible.Subscribe(func(v bool) { sender.Send(promptVisibleMsg{visible: v}) }),
		services.ErrorHandler.OnNotification(func(n models.Notification) { sender.Send(notificationMsg{notification: n}) }),
		services.VaultAddition.OnVaultAdded(func(id models.VaultSourceID) { sender.Send(vaultAddedMsg{sourceID: id}) }),
	}

	return func() {
		for _, u := range unsubscribers {
			u()
		}
	}
}
