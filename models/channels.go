// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Channel names exchanged with the privileged process.
const (
	// ChannelAddVaultConfig carries a serialized [AddVaultPayload].
	ChannelAddVaultConfig = "add-vault-config"
	// ChannelAddVaultConfigReply carries a serialized [ReplyEnvelope].
	ChannelAddVaultConfigReply = ChannelAddVaultConfig + ReplySuffix

	// ChannelGetNewVaultFilename asks for a filename of a not-yet-existing vault.
	ChannelGetNewVaultFilename = "get-new-vault-filename"
	// ChannelGetExistingVaultFilename asks for a filename of an existing vault.
	ChannelGetExistingVaultFilename = "get-existing-vault-filename"

	// ChannelShowError is a fire-and-forget human-readable notification.
	ChannelShowError = "show-error"
)

// ReplySuffix is appended to a request channel to form its reply channel.
const ReplySuffix = ":reply"

// Events published to the rest of the application.
const (
	EventVaultAdded = "vault-added"
	EventChoice     = "choice"
)

// InvokeResponse is the body returned by invoke-style channels.
type InvokeResponse struct {
	Value string `json:"value"`
}

// NotificationPayload is the body of a fire-and-forget notification.
type NotificationPayload struct {
	Message string `json:"message"`
}
