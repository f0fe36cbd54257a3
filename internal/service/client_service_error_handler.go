package service

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-vault-adder/internal/app"
	"github.com/MKhiriev/go-vault-adder/internal/events"
	"github.com/MKhiriev/go-vault-adder/internal/logger"
	"github.com/MKhiriev/go-vault-adder/models"
)

type errorHandler struct {
	notifications *events.Emitter[models.Notification]
	now           func() time.Time

	logger *logger.Logger
}

// NewErrorHandler returns the ErrorHandler used by the client services.
func NewErrorHandler(logger *logger.Logger) ErrorHandler {
	return &errorHandler{
		notifications: events.NewEmitter[models.Notification](),
		now:           time.Now,
		logger:        logger,
	}
}

func (h *errorHandler) HandleError(ctx context.Context, err error) {
	if err == nil {
		return
	}

	h.logger.Err(err).Str("func", "errorHandler.HandleError").Msg("vault addition failed")

	h.Notify(models.Notification{
		Level:   models.NotificationError,
		Title:   app.MsgVaultAddFailedTitle,
		Message: userMessage(err),
	})
}

func (h *errorHandler) Notify(n models.Notification) {
	if n.At.IsZero() {
		n.At = h.now()
	}
	h.notifications.Emit(n)
}

func (h *errorHandler) OnNotification(fn func(models.Notification)) (unsubscribe func()) {
	return h.notifications.Subscribe(fn)
}

func userMessage(err error) string {
	var rejected *AdditionRejectedError
	switch {
	case errors.As(err, &rejected) && rejected.Message != "":
		return rejected.Message
	case errors.Is(err, ErrAdditionTimeout):
		return app.MsgAdditionTimedOut
	case errors.Is(err, ErrWeakPassword):
		return app.MsgPasswordIsWeak
	default:
		return err.Error()
	}
}
