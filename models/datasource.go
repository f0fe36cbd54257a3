// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"errors"
	"maps"
)

// DatasourceFile is the datasource type tag for local vault files.
const DatasourceFile = "file"

// DatasourcePathProperty is the property that holds the vault file path for
// [DatasourceFile] datasources.
const DatasourcePathProperty = "path"

var errDatasourceTypeMissing = errors.New("datasource config has no type")

// DatasourceConfig describes where and how the storage backend of a vault is
// located. It consists of a type tag and backend-specific string properties.
//
// On the wire the properties are flattened next to the type tag:
//
//	{"type":"file","path":"/home/user/vault1.bcup"}
type DatasourceConfig struct {
	// Type is the backend type tag (e.g. "file", "webdav", "dropbox").
	Type string

	// Properties holds backend-specific fields. Never contains the "type" key.
	Properties map[string]string
}

// NewFileDatasource returns a [DatasourceConfig] for a local vault file.
func NewFileDatasource(path string) DatasourceConfig {
	return DatasourceConfig{
		Type:       DatasourceFile,
		Properties: map[string]string{DatasourcePathProperty: path},
	}
}

// Property returns the named backend property, or an empty string.
func (d DatasourceConfig) Property(name string) string {
	return d.Properties[name]
}

// MarshalJSON encodes the config as a flat JSON object with a "type" key.
func (d DatasourceConfig) MarshalJSON() ([]byte, error) {
	flat := make(map[string]string, len(d.Properties)+1)
	maps.Copy(flat, d.Properties)
	flat["type"] = d.Type

	return json.Marshal(flat)
}

// UnmarshalJSON decodes a flat JSON object. The "type" key is mandatory.
func (d *DatasourceConfig) UnmarshalJSON(b []byte) error {
	var flat map[string]string
	if err := json.Unmarshal(b, &flat); err != nil {
		return err
	}

	typ, ok := flat["type"]
	if !ok || typ == "" {
		return errDatasourceTypeMissing
	}
	delete(flat, "type")

	d.Type = typ
	d.Properties = flat
	return nil
}
