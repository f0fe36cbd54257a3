package http

import (
	"github.com/MKhiriev/go-vault-adder/internal/config"
	"github.com/MKhiriev/go-vault-adder/internal/logger"
	"github.com/MKhiriev/go-vault-adder/internal/service"
	"github.com/MKhiriev/go-vault-adder/internal/utils"
)

// maxBodySize bounds IPC request bodies.
const maxBodySize = 1 << 20

type Handler struct {
	services *service.Services
	security config.Security
	hasher   *utils.Hasher

	logger *logger.Logger
}

func NewHandler(services *service.Services, security config.Security, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		security: security,
		hasher:   utils.NewHasher(security.HashKey),
		logger:   logger,
	}
}
