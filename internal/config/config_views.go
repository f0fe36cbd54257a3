// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

const (
	defaultReplyTimeout  = 30 * time.Second
	defaultTokenDuration = 5 * time.Minute
	defaultTokenIssuer   = "vault-adder"
)

// Security holds the shared secrets both ends of the IPC link must agree on.
type Security struct {
	HashKey       string
	TokenSignKey  string
	TokenIssuer   string
	TokenDuration time.Duration
}

// ClientAdapter holds the client's transport settings.
type ClientAdapter struct {
	HTTPAddress    string
	RequestTimeout time.Duration
	// ReplyTimeout bounds the wait for an add-vault-config reply.
	ReplyTimeout time.Duration
}

// ClientConfig is the validated configuration view of the interactive client.
type ClientConfig struct {
	Security Security
	Adapter  ClientAdapter
	LogFile  string
}

// ServerConfig is the validated configuration view of the privileged backend.
type ServerConfig struct {
	Security Security
	Server   Server
	Storage  Storage
	Version  string
}

// GetClientConfig builds the client view from [GetStructuredConfig],
// filling defaults for the reply timeout and token parameters.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

// GetServerConfig builds the backend view from [GetStructuredConfig].
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := newServerConfig(cfg)
	return serverCfg, serverCfg.validate()
}

func newSecurity(cfg *StructuredConfig) Security {
	sec := Security{
		HashKey:       cfg.App.HashKey,
		TokenSignKey:  cfg.App.TokenSignKey,
		TokenIssuer:   cfg.App.TokenIssuer,
		TokenDuration: cfg.App.TokenDuration,
	}
	if sec.TokenIssuer == "" {
		sec.TokenIssuer = defaultTokenIssuer
	}
	if sec.TokenDuration <= 0 {
		sec.TokenDuration = defaultTokenDuration
	}

	return sec
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	clientCfg := &ClientConfig{
		Security: newSecurity(cfg),
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			ReplyTimeout:   cfg.Adapter.ReplyTimeout,
		},
		LogFile: cfg.App.LogFile,
	}
	if clientCfg.Adapter.ReplyTimeout <= 0 {
		clientCfg.Adapter.ReplyTimeout = defaultReplyTimeout
	}

	return clientCfg
}

func newServerConfig(cfg *StructuredConfig) *ServerConfig {
	return &ServerConfig{
		Security: newSecurity(cfg),
		Server:   cfg.Server,
		Storage:  cfg.Storage,
		Version:  cfg.App.Version,
	}
}
