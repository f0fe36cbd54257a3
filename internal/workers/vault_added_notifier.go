// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"

	"github.com/MKhiriev/go-vault-adder/internal/app"
	"github.com/MKhiriev/go-vault-adder/internal/logger"
	"github.com/MKhiriev/go-vault-adder/internal/service"
	"github.com/MKhiriev/go-vault-adder/models"
)

// vaultAddedNotifier turns vault-added events into info notifications.
type vaultAddedNotifier struct {
	addition service.VaultAdditionService
	notifier service.ErrorHandler

	logger *logger.Logger
}

func NewVaultAddedNotifier(addition service.VaultAdditionService, notifier service.ErrorHandler, logger *logger.Logger) Worker {
	return &vaultAddedNotifier{addition: addition, notifier: notifier, logger: logger}
}

func (w *vaultAddedNotifier) Run(ctx context.Context) {
	unsubscribe := w.addition.OnVaultAdded(func(id models.VaultSourceID) {
		w.logger.Info().Str("func", "vaultAddedNotifier.Run").Str("source_id", id.String()).Msg("vault added")
		w.notifier.Notify(models.Notification{
			Level:   models.NotificationInfo,
			Title:   app.MsgVaultAddedTitle,
			Message: id.String(),
		})
	})
	defer unsubscribe()

	<-ctx.Done()
}
