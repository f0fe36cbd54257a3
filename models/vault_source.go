// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// VaultSource is a vault registered by the privileged process.
type VaultSource struct {
	// SourceID is the identifier handed back to the requesting client.
	SourceID VaultSourceID `json:"source_id"`

	// Type is the datasource type tag copied from [DatasourceConfig.Type].
	Type string `json:"type"`

	// Filename is the resolved vault filename, if the datasource has one.
	Filename string `json:"filename"`

	// CreateNew records whether the vault was created rather than attached.
	CreateNew bool `json:"create_new"`

	// CreatedAt is the moment the source was registered.
	CreatedAt time.Time `json:"created_at"`
}
