package client

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-vault-adder/internal/config"
	"github.com/MKhiriev/go-vault-adder/internal/logger"
	"github.com/MKhiriev/go-vault-adder/internal/mock"
	"github.com/MKhiriev/go-vault-adder/internal/service"
	"github.com/MKhiriev/go-vault-adder/internal/tui"
	"github.com/MKhiriev/go-vault-adder/models"
)

type fakeUI struct {
	err    error
	gotCtx context.Context
}

func (f *fakeUI) Run(ctx context.Context) error {
	f.gotCtx = ctx
	return f.err
}

func newTestApp(t *testing.T, ui UI) *App {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	addition := mock.NewMockVaultAdditionService(ctrl)
	addition.EXPECT().OnVaultAdded(gomock.Any()).Return(func() {}).AnyTimes()
	addition.EXPECT().Close()

	services := &service.ClientServices{
		ErrorHandler:  service.NewErrorHandler(logger.Nop()),
		VaultAddition: addition,
	}
	return newApp(services, ui, logger.Nop())
}

func TestNewApp(t *testing.T) {
	cfg := &config.ClientConfig{
		Security: config.Security{HashKey: "k", TokenSignKey: "s", TokenIssuer: "vault-adder", TokenDuration: time.Minute},
		Adapter:  config.ClientAdapter{HTTPAddress: "localhost:8080", RequestTimeout: time.Second, ReplyTimeout: time.Second},
	}

	app, err := NewApp(cfg, models.NewAppBuildInfo("", "", ""), logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, app)
	app.services.Close()
}

func TestApp_Run_UserQuitIsNotAnError(t *testing.T) {
	ui := &fakeUI{err: tui.ErrUserQuit}

	err := newTestApp(t, ui).Run()

	require.NoError(t, err)
	require.NotNil(t, ui.gotCtx)
	// после выхода контекст воркеров отменён
	assert.Error(t, ui.gotCtx.Err())
}

func TestApp_Run_UIError(t *testing.T) {
	boom := errors.New("terminal is gone")

	err := newTestApp(t, &fakeUI{err: boom}).Run()

	assert.ErrorIs(t, err, boom)
}
