package http

import (
	"context"
	"errors"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-vault-adder/internal/adapter"
	"github.com/MKhiriev/go-vault-adder/internal/app"
	"github.com/MKhiriev/go-vault-adder/internal/config"
	"github.com/MKhiriev/go-vault-adder/internal/logger"
	"github.com/MKhiriev/go-vault-adder/internal/mock"
	"github.com/MKhiriev/go-vault-adder/internal/service"
	"github.com/MKhiriev/go-vault-adder/internal/state"
	"github.com/MKhiriev/go-vault-adder/internal/store"
	"github.com/MKhiriev/go-vault-adder/models"
)

const (
	strongPass = "Correct-Horse-42-Battery"
	weakPass   = "password"
)

// roundTrip connects the client services to a real handler over HTTP. Only
// the vault-source registry is mocked.
type roundTrip struct {
	client   *service.ClientServices
	appState *state.AppState
	repo     *mock.MockVaultSourceRepository
	dir      string

	mu            sync.Mutex
	notifications []models.Notification
}

func newRoundTrip(t *testing.T) *roundTrip {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	rt := &roundTrip{repo: mock.NewMockVaultSourceRepository(ctrl), dir: t.TempDir()}

	files, err := store.NewVaultFiles(config.Files{VaultDir: rt.dir})
	require.NoError(t, err)
	appInfo, err := service.NewAppInfoService("test", logger.Nop())
	require.NoError(t, err)

	backendSvc := service.NewVaultBackendService(rt.repo, files, logger.Nop())
	services := &service.Services{
		VaultBackendService: service.NewVaultBackendValidationService().Wrap(backendSvc),
		AppInfoService:      appInfo,
	}

	srv := httptest.NewServer(NewHandler(services, testSecurity, logger.Nop()).Init())
	t.Cleanup(srv.Close)

	adapterCfg := config.ClientAdapter{HTTPAddress: srv.URL, RequestTimeout: 5 * time.Second, ReplyTimeout: 5 * time.Second}
	backend, err := adapter.NewHTTPBackendAdapter(adapterCfg, testSecurity, logger.Nop())
	require.NoError(t, err)

	rt.appState = state.NewAppState()
	rt.client = service.NewClientServices(backend, rt.appState, adapterCfg, logger.Nop())
	t.Cleanup(rt.client.Close)

	unsubscribe := rt.client.ErrorHandler.OnNotification(func(n models.Notification) {
		rt.mu.Lock()
		defer rt.mu.Unlock()
		rt.notifications = append(rt.notifications, n)
	})
	t.Cleanup(unsubscribe)

	return rt
}

type flowResult struct {
	id  models.VaultSourceID
	err error
}

// addFileVault runs the flow and answers the prompt with choice.
func (rt *roundTrip) addFileVault(t *testing.T, password string, choice models.NewVaultChoice) flowResult {
	t.Helper()
	done := make(chan flowResult, 1)
	go func() {
		id, err := rt.client.VaultFlow.AddFileVault(context.Background(), password)
		done <- flowResult{id: id, err: err}
	}()

	require.Eventually(t, rt.appState.PromptVisible.Get, 2*time.Second, 5*time.Millisecond)
	require.True(t, rt.client.VaultPrompt.SubmitChoice(choice))

	select {
	case res := <-done:
		assert.False(t, rt.appState.Busy.Get())
		assert.False(t, rt.appState.PromptVisible.Get())
		return res
	case <-time.After(5 * time.Second):
		t.Fatal("AddFileVault did not return")
		return flowResult{}
	}
}

func (rt *roundTrip) vaultFiles(t *testing.T) []string {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join(rt.dir, "*"+store.VaultFileExtension))
	require.NoError(t, err)
	return matches
}

func (rt *roundTrip) lastNotification(t *testing.T) models.Notification {
	t.Helper()
	rt.mu.Lock()
	defer rt.mu.Unlock()
	require.NotEmpty(t, rt.notifications)
	return rt.notifications[len(rt.notifications)-1]
}

// ── round trip ───────────────────────────────────────────────────────────────

func TestRoundTrip_NewVault(t *testing.T) {
	rt := newRoundTrip(t)

	var registered models.VaultSource
	rt.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, s models.VaultSource) error {
		registered = s
		return nil
	})

	res := rt.addFileVault(t, strongPass, models.ChoiceNew)

	require.NoError(t, res.err)
	assert.NotEmpty(t, res.id)
	assert.Equal(t, registered.SourceID, res.id)
	assert.True(t, registered.CreateNew)
	assert.Equal(t, models.DatasourceFile, registered.Type)
	assert.Equal(t, []string{registered.Filename}, rt.vaultFiles(t))
}

func TestRoundTrip_ExistingVault(t *testing.T) {
	rt := newRoundTrip(t)
	existing := filepath.Join(rt.dir, "home.bcup")
	require.NoError(t, os.WriteFile(existing, []byte("vault"), 0o600))

	rt.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, s models.VaultSource) error {
		assert.Equal(t, existing, s.Filename)
		assert.False(t, s.CreateNew)
		return nil
	})

	res := rt.addFileVault(t, strongPass, models.ChoiceExisting)

	require.NoError(t, res.err)
	assert.NotEmpty(t, res.id)
}

func TestRoundTrip_ExistingVaultWithoutFilesIsCancelled(t *testing.T) {
	rt := newRoundTrip(t)

	// реестр не должен вызываться
	res := rt.addFileVault(t, strongPass, models.ChoiceExisting)

	require.NoError(t, res.err)
	assert.Empty(t, res.id)
}

func TestRoundTrip_CancelledPrompt(t *testing.T) {
	rt := newRoundTrip(t)

	res := rt.addFileVault(t, strongPass, models.ChoiceCancel)

	require.NoError(t, res.err)
	assert.Empty(t, res.id)
	assert.Empty(t, rt.vaultFiles(t))
}

func TestRoundTrip_WeakPassword(t *testing.T) {
	rt := newRoundTrip(t)

	res := rt.addFileVault(t, weakPass, models.ChoiceNew)

	require.ErrorIs(t, res.err, service.ErrWeakPassword)
	assert.Empty(t, rt.vaultFiles(t))
	assert.Equal(t, app.MsgPasswordIsWeak, rt.lastNotification(t).Message)
}

func TestRoundTrip_RegistryConflictRemovesNewFile(t *testing.T) {
	rt := newRoundTrip(t)
	rt.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(store.ErrVaultSourceExists)

	res := rt.addFileVault(t, strongPass, models.ChoiceNew)

	var rejected *service.AdditionRejectedError
	require.True(t, errors.As(res.err, &rejected))
	assert.Equal(t, app.MsgVaultSourceExists, rejected.Message)
	assert.Empty(t, rt.vaultFiles(t))
	assert.Equal(t, app.MsgVaultSourceExists, rt.lastNotification(t).Message)
}
