package tui

import (
	"github.com/MKhiriev/go-vault-adder/models"
)

// busyChangedMsg mirrors the busy flag.
type busyChangedMsg struct {
	busy bool
}

// promptVisibleMsg mirrors the prompt-visible flag.
type promptVisibleMsg struct {
	visible bool
}

type notificationMsg struct {
	notification models.Notification
}

type vaultAddedMsg struct {
	sourceID models.VaultSourceID
}

// additionDoneMsg is returned by the add command. An empty sourceID with a
// nil err means the user cancelled the prompt.
type additionDoneMsg struct {
	sourceID models.VaultSourceID
	err      error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
