// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// VaultSourceID identifies a vault that the privileged process has added.
// It is assigned by the privileged process and treated as opaque here.
type VaultSourceID string

// String implements [fmt.Stringer].
func (id VaultSourceID) String() string {
	return string(id)
}

// AddVaultPayload is the request sent over [ChannelAddVaultConfig]. It is
// constructed once per addition attempt and never mutated after send.
type AddVaultPayload struct {
	// RequestID correlates the payload with its [ReplyEnvelope].
	RequestID string `json:"request_id"`

	// CreateNew requests creation of a new vault instead of attaching an
	// existing one.
	CreateNew bool `json:"createNew"`

	// DatasourceConfig describes the storage backend of the vault.
	DatasourceConfig DatasourceConfig `json:"datasourceConfig"`

	// MasterPassword unlocks (or protects) the vault.
	MasterPassword string `json:"masterPassword"`

	// FileNameOverride replaces the filename derived from the datasource when
	// set. Encoded as null when absent.
	FileNameOverride *string `json:"fileNameOverride"`
}

// ReplyEnvelope is the decoded response of the privileged process to exactly
// one [AddVaultPayload].
type ReplyEnvelope struct {
	RequestID string        `json:"request_id"`
	OK        bool          `json:"ok"`
	Error     string        `json:"error,omitempty"`
	SourceID  VaultSourceID `json:"sourceID,omitempty"`
}

// NewVaultChoice is the user's answer to the "new or existing vault" prompt.
type NewVaultChoice string

const (
	// ChoiceNew asks for a filename of a vault file that does not exist yet.
	ChoiceNew NewVaultChoice = "new"
	// ChoiceExisting asks for a filename of an existing vault file.
	ChoiceExisting NewVaultChoice = "existing"
	// ChoiceCancel means the user declined to choose.
	ChoiceCancel NewVaultChoice = ""
)

// VaultTargetParameters is the resolved target of a file vault addition.
// A nil *VaultTargetParameters signals cancellation.
type VaultTargetParameters struct {
	Filename  string `json:"filename"`
	CreateNew bool   `json:"createNew"`
}
