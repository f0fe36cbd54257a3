package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-vault-adder/internal/adapter"
	"github.com/MKhiriev/go-vault-adder/internal/logger"
	"github.com/MKhiriev/go-vault-adder/internal/mock"
	"github.com/MKhiriev/go-vault-adder/internal/state"
	"github.com/MKhiriev/go-vault-adder/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type promptResult struct {
	target *models.VaultTargetParameters
	err    error
}

func newTestPromptSvc(t *testing.T, ctrl *gomock.Controller) (*vaultPromptService, *mock.MockBackendAdapter, *mock.MockErrorHandler, *state.AppState) {
	t.Helper()
	backend := mock.NewMockBackendAdapter(ctrl)
	errHandler := mock.NewMockErrorHandler(ctrl)
	appState := state.NewAppState()

	svc := NewVaultPromptService(backend, appState, errHandler, logger.Nop()).(*vaultPromptService)
	return svc, backend, errHandler, appState
}

// startPrompt runs ResolveVaultTarget in the background and waits until the
// prompt is visible.
func startPrompt(t *testing.T, ctx context.Context, svc *vaultPromptService, appState *state.AppState) <-chan promptResult {
	t.Helper()

	done := make(chan promptResult, 1)
	go func() {
		target, err := svc.ResolveVaultTarget(ctx)
		done <- promptResult{target: target, err: err}
	}()

	require.Eventually(t, appState.PromptVisible.Get, time.Second, time.Millisecond)
	return done
}

func waitPrompt(t *testing.T, done <-chan promptResult) promptResult {
	t.Helper()

	select {
	case r := <-done:
		return r
	case <-time.After(time.Second):
		t.Fatal("ResolveVaultTarget did not return")
		return promptResult{}
	}
}

// ── ResolveVaultTarget ───────────────────────────────────────────────────────

func TestVaultPromptService_ResolveVaultTarget_Choices(t *testing.T) {
	tests := []struct {
		name     string
		choice   models.NewVaultChoice
		channel  string
		filename string
		want     *models.VaultTargetParameters
	}{
		{
			name:     "new vault",
			choice:   models.ChoiceNew,
			channel:  models.ChannelGetNewVaultFilename,
			filename: "/vaults/new.bcup",
			want:     &models.VaultTargetParameters{Filename: "/vaults/new.bcup", CreateNew: true},
		},
		{
			name:     "existing vault",
			choice:   models.ChoiceExisting,
			channel:  models.ChannelGetExistingVaultFilename,
			filename: "  /vaults/old.bcup\n",
			want:     &models.VaultTargetParameters{Filename: "/vaults/old.bcup", CreateNew: false},
		},
		{
			name:     "empty filename means cancel",
			choice:   models.ChoiceExisting,
			channel:  models.ChannelGetExistingVaultFilename,
			filename: "",
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, backend, _, appState := newTestPromptSvc(t, ctrl)
			backend.EXPECT().Invoke(gomock.Any(), tt.channel).DoAndReturn(func(context.Context, string) (string, error) {
				assert.False(t, appState.PromptVisible.Get(), "prompt is hidden before the filename request")
				return tt.filename, nil
			})

			done := startPrompt(t, context.Background(), svc, appState)
			assert.True(t, svc.SubmitChoice(tt.choice))

			r := waitPrompt(t, done)
			require.NoError(t, r.err)
			assert.Equal(t, tt.want, r.target)
			assert.False(t, appState.PromptVisible.Get())
		})
	}
}

func TestVaultPromptService_ResolveVaultTarget_SequentialCycles(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, backend, _, appState := newTestPromptSvc(t, ctrl)

	var (
		mu      sync.Mutex
		visible []bool
	)
	appState.PromptVisible.Subscribe(func(v bool) {
		mu.Lock()
		visible = append(visible, v)
		mu.Unlock()
	})

	gomock.InOrder(
		backend.EXPECT().Invoke(gomock.Any(), models.ChannelGetNewVaultFilename).Return("/vaults/first.bcup", nil),
		backend.EXPECT().Invoke(gomock.Any(), models.ChannelGetExistingVaultFilename).Return("/vaults/second.bcup", nil),
	)

	done := startPrompt(t, context.Background(), svc, appState)
	require.True(t, svc.SubmitChoice(models.ChoiceNew))
	r := waitPrompt(t, done)

	require.NoError(t, r.err)
	assert.Equal(t, &models.VaultTargetParameters{Filename: "/vaults/first.bcup", CreateNew: true}, r.target)
	assert.Zero(t, svc.choices.Waiting(), "first cycle must leave no listener behind")
	assert.False(t, appState.PromptVisible.Get())

	done = startPrompt(t, context.Background(), svc, appState)
	require.True(t, svc.SubmitChoice(models.ChoiceExisting))
	r = waitPrompt(t, done)

	require.NoError(t, r.err)
	assert.Equal(t, &models.VaultTargetParameters{Filename: "/vaults/second.bcup", CreateNew: false}, r.target)
	assert.Zero(t, svc.choices.Waiting())
	assert.False(t, appState.PromptVisible.Get())

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []bool{true, false, true, false}, visible)
}

func TestVaultPromptService_ResolveVaultTarget_Cancel(t *testing.T) {
	for _, choice := range []models.NewVaultChoice{models.ChoiceCancel, "something-else"} {
		t.Run(string(choice), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			// никаких Invoke при отмене
			svc, _, _, appState := newTestPromptSvc(t, ctrl)

			done := startPrompt(t, context.Background(), svc, appState)
			assert.True(t, svc.SubmitChoice(choice))

			r := waitPrompt(t, done)
			assert.NoError(t, r.err)
			assert.Nil(t, r.target)
			assert.False(t, appState.PromptVisible.Get())
		})
	}
}

func TestVaultPromptService_ResolveVaultTarget_ContextCanceled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, appState := newTestPromptSvc(t, ctrl)
	ctx, cancel := context.WithCancel(context.Background())

	done := startPrompt(t, ctx, svc, appState)
	cancel()

	r := waitPrompt(t, done)
	assert.ErrorIs(t, r.err, context.Canceled)
	assert.Nil(t, r.target)
	assert.False(t, appState.PromptVisible.Get())
	assert.Zero(t, svc.choices.Waiting(), "listener must be removed on cancel")
	assert.False(t, svc.SubmitChoice(models.ChoiceNew))
}

func TestVaultPromptService_ResolveVaultTarget_InvokeError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, backend, errHandler, appState := newTestPromptSvc(t, ctrl)
	backend.EXPECT().Invoke(gomock.Any(), models.ChannelGetNewVaultFilename).Return("", adapter.ErrUnauthorized)
	errHandler.EXPECT().HandleError(gomock.Any(), gomock.Any()).Do(func(_ context.Context, err error) {
		assert.ErrorIs(t, err, ErrBackendUnauthorized)
	})

	done := startPrompt(t, context.Background(), svc, appState)
	svc.SubmitChoice(models.ChoiceNew)

	r := waitPrompt(t, done)
	assert.ErrorIs(t, r.err, ErrBackendUnauthorized)
	assert.Nil(t, r.target)
}

func TestVaultPromptService_ResolveVaultTarget_Concurrent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, appState := newTestPromptSvc(t, ctrl)
	done := startPrompt(t, context.Background(), svc, appState)

	target, err := svc.ResolveVaultTarget(context.Background())
	assert.ErrorIs(t, err, ErrPromptInProgress)
	assert.Nil(t, target)
	assert.True(t, appState.PromptVisible.Get(), "the first prompt keeps waiting")

	svc.SubmitChoice(models.ChoiceCancel)
	r := waitPrompt(t, done)
	assert.NoError(t, r.err)
}

// ── SubmitChoice ─────────────────────────────────────────────────────────────

func TestVaultPromptService_SubmitChoice_NobodyWaiting(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _ := newTestPromptSvc(t, ctrl)

	assert.False(t, svc.SubmitChoice(models.ChoiceNew))
}

func TestVaultPromptService_SubmitChoice_ConsumedOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, appState := newTestPromptSvc(t, ctrl)
	done := startPrompt(t, context.Background(), svc, appState)

	assert.True(t, svc.SubmitChoice(models.ChoiceCancel))
	waitPrompt(t, done)

	// второй выбор уже никто не слушает
	assert.False(t, svc.SubmitChoice(models.ChoiceNew))
}
