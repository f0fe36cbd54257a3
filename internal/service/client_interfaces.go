package service

import (
	"context"

	"github.com/MKhiriev/go-vault-adder/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// VaultAdditionService sends add-vault requests to the privileged process
// and correlates their replies.
type VaultAdditionService interface {
	// AddVaultTarget validates password, sends one add-vault-config payload
	// and waits for the matching reply. The busy flag is set for the duration
	// of the call. On success the source ID is published to OnVaultAdded
	// subscribers after the busy flag is cleared. Every returned error, other
	// than context cancellation, has already been passed to the ErrorHandler.
	AddVaultTarget(ctx context.Context, cfg models.DatasourceConfig, password string, createNew bool, fileNameOverride *string) (models.VaultSourceID, error)

	// OnVaultAdded subscribes fn to successful additions.
	OnVaultAdded(fn func(models.VaultSourceID)) (unsubscribe func())

	// Close removes the reply subscription from the adapter.
	Close()
}

// VaultPromptService collects the user's new/existing choice and resolves
// it to a vault filename.
type VaultPromptService interface {
	// ResolveVaultTarget shows the prompt, waits for one choice and asks the
	// privileged process for the matching filename. A nil result with a nil
	// error means the user cancelled. Only one prompt may wait at a time;
	// a concurrent call fails with ErrPromptInProgress.
	ResolveVaultTarget(ctx context.Context) (*models.VaultTargetParameters, error)

	// SubmitChoice hands choice to the waiting prompt. Unknown choices are
	// treated as cancellation. It reports whether a prompt was waiting.
	SubmitChoice(choice models.NewVaultChoice) bool
}

// VaultFlowService composes prompt and addition for file vaults.
type VaultFlowService interface {
	// AddFileVault resolves a target file and adds it as a file datasource.
	// Returns an empty ID and a nil error when the user cancelled.
	AddFileVault(ctx context.Context, password string) (models.VaultSourceID, error)
}

// ErrorHandler is the single sink for user-visible failures.
type ErrorHandler interface {
	// HandleError logs err and publishes a notification for it.
	HandleError(ctx context.Context, err error)

	// Notify publishes n without logging it as a failure.
	Notify(n models.Notification)

	// OnNotification subscribes fn to published notifications.
	OnNotification(fn func(models.Notification)) (unsubscribe func())
}

// RequestIDGenerator issues correlation IDs for add-vault payloads.
type RequestIDGenerator interface {
	Generate() string
}
