package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-vault-adder/internal/config"
	"github.com/MKhiriev/go-vault-adder/internal/logger"
)

// TestNewHandlers_HTTPAddress verifies that the HTTP handler is built when
// an address is configured. Services are only stored, so nil is safe here.
func TestNewHandlers_HTTPAddress(t *testing.T) {
	cfg := &config.ServerConfig{
		Server: config.Server{HTTPAddress: "127.0.0.1:8080"},
	}

	h, err := NewHandlers(nil, cfg, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP)
	assert.NotNil(t, h.HTTP.Init())
}

func TestNewHandlers_NoAddress(t *testing.T) {
	h, err := NewHandlers(nil, &config.ServerConfig{}, logger.Nop())

	require.ErrorIs(t, err, errNoHandlersAreCreated)
	assert.Nil(t, h)
}
