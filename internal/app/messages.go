// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains message strings shared by the client, the privileged
// process handlers and the terminal UI.
//
// Msg* constants are written into HTTP error bodies, log entries and user
// notifications. The client maps some of them back to service errors, so
// the wording must stay identical on both ends.
package app

const (
	// MsgInvalidDataProvided is returned when a request body cannot be decoded.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInternalServerError is returned for unexpected backend failures.
	MsgInternalServerError = "internal server error"

	MsgNoAuthorizationHeader   = "no authorization header"
	MsgTokenIsExpired          = "token is expired"
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgHashMismatch is returned when the HashSHA256 header does not match
	// the request body.
	MsgHashMismatch = "request hash mismatch"

	MsgUnknownChannel = "unknown channel"

	// MsgVaultSourceExists is returned in a rejected reply when the target
	// file is already registered as a vault source.
	MsgVaultSourceExists = "vault source already exists"

	// MsgVaultFileNotFound is returned in a rejected reply when an existing
	// vault is requested but the file is missing.
	MsgVaultFileNotFound = "vault file not found"

	// MsgVaultFileExists is returned in a rejected reply when a new vault is
	// requested over a file that already exists.
	MsgVaultFileExists = "vault file already exists"

	MsgUnsupportedDatasource = "unsupported datasource"
)

// User-facing texts.
const (
	// MsgPasswordIsWeak is sent on the show-error channel when the master
	// password does not pass the strength check.
	MsgPasswordIsWeak = "Password is weak"

	MsgVaultAddFailedTitle = "Failed adding vault"
	MsgVaultAddedTitle     = "Vault added"
	MsgAdditionTimedOut    = "The vault service did not answer in time"
)
