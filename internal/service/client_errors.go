package service

import (
	"errors"
)

var (
	// ErrWeakPassword is returned when the master password fails the
	// strength check. Nothing is sent on the add-vault-config channel.
	ErrWeakPassword = errors.New("password is too weak")

	// ErrAdditionRejected matches every [*AdditionRejectedError].
	ErrAdditionRejected = errors.New("vault addition rejected")

	// ErrAdditionTimeout is returned when no reply arrives within the
	// configured reply timeout.
	ErrAdditionTimeout = errors.New("timed out waiting for vault addition reply")

	// ErrEmptySourceID is returned when a successful reply carries no
	// source ID.
	ErrEmptySourceID = errors.New("vault addition reply has no source ID")

	// ErrPromptInProgress is returned when a vault target prompt is
	// already waiting for a choice.
	ErrPromptInProgress = errors.New("vault target prompt already in progress")

	ErrBackendUnauthorized  = errors.New("vault service rejected client credentials")
	ErrIntegrityCheckFailed = errors.New("vault service integrity check failed")
	ErrUnknownChannel       = errors.New("vault service does not handle channel")
)

// AdditionRejectedError carries the reason the privileged process gave for
// rejecting a vault addition.
type AdditionRejectedError struct {
	Message string
}

func (e *AdditionRejectedError) Error() string {
	if e.Message == "" {
		return ErrAdditionRejected.Error()
	}
	return ErrAdditionRejected.Error() + ": " + e.Message
}

// Is makes errors.Is(err, ErrAdditionRejected) hold.
func (e *AdditionRejectedError) Is(target error) bool {
	return target == ErrAdditionRejected
}
