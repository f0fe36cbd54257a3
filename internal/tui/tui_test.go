package tui

import (
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-vault-adder/internal/logger"
	"github.com/MKhiriev/go-vault-adder/internal/mock"
	"github.com/MKhiriev/go-vault-adder/internal/service"
	"github.com/MKhiriev/go-vault-adder/internal/state"
	"github.com/MKhiriev/go-vault-adder/models"
)

type recordingSender struct {
	mu   sync.Mutex
	msgs []tea.Msg
}

func (r *recordingSender) Send(msg tea.Msg) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.msgs = append(r.msgs, msg)
}

func (r *recordingSender) received() []tea.Msg {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]tea.Msg(nil), r.msgs...)
}

func TestNew_NilServices(t *testing.T) {
	ui, err := New(nil, state.NewAppState(), models.AppBuildInfo{}, logger.Nop())

	require.ErrorIs(t, err, errNilServices)
	assert.Nil(t, ui)
}

func TestBridge_ForwardsAndUnsubscribes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	addition := mock.NewMockVaultAdditionService(ctrl)

	var onAdded func(models.VaultSourceID)
	unsubscribedAdded := false
	addition.EXPECT().OnVaultAdded(gomock.Any()).DoAndReturn(func(fn func(models.VaultSourceID)) func() {
		onAdded = fn
		return func() { unsubscribedAdded = true }
	})

	appState := state.NewAppState()
	services := &service.ClientServices{
		ErrorHandler:  service.NewErrorHandler(logger.Nop()),
		VaultAddition: addition,
	}
	sender := &recordingSender{}

	unsubscribe := bridge(sender, appState, services)

	appState.Busy.Set(true)
	appState.PromptVisible.Set(true)
	services.ErrorHandler.Notify(models.Notification{Level: models.NotificationInfo, Title: "hello"})
	onAdded("src-1")

	msgs := sender.received()
	require.Len(t, msgs, 4)
	assert.Equal(t, busyChangedMsg{busy: true}, msgs[0])
	assert.Equal(t, promptVisibleMsg{visible: true}, msgs[1])
	n, ok := msgs[2].(notificationMsg)
	require.True(t, ok)
	assert.Equal(t, "hello", n.notification.Title)
	assert.Equal(t, vaultAddedMsg{sourceID: "src-1"}, msgs[3])

	unsubscribe()
	assert.True(t, unsubscribedAdded)

	appState.Busy.Set(false)
	services.ErrorHandler.Notify(models.Notification{Title: "ignored"})
	assert.Len(t, sender.received(), 4)
}
