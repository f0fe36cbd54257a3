// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

func (s Security) validate() error {
	if s.HashKey == "" || s.TokenSignKey == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if err := cfg.Security.validate(); err != nil {
		return err
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if err := cfg.Security.validate(); err != nil {
		return err
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Storage.DB.DSN == "" || cfg.Storage.Files.VaultDir == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}
