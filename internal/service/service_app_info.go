package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-vault-adder/internal/logger"
)

// appInfoService answers the unauthenticated version route.
type appInfoService struct {
	version string
	logger  *logger.Logger
}

// NewAppInfoService returns ErrVersionIsNotSpecified for a blank version.
func NewAppInfoService(version string, log *logger.Logger) (AppInfoService, error) {
	version = strings.TrimSpace(version)
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	log.Debug().Str("version", version).Msg("app info service created")
	return &appInfoService{version: version, logger: log}, nil
}

func (s *appInfoService) GetAppVersion(_ context.Context) string {
	return s.version
}
