package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-learnly/internal/config"
	"github.com/MKhiriev/go-learnly/internal/logger"
)

// versionService answers GET /api/version with the version fixed at startup.
type versionService struct {
	version string
}

// NewAppInfoService pins the reported version. cmd/server falls back to the
// linker-injected build version when APP_VERSION is unset; a version that is
// still blank after trimming is ErrVersionIsNotSpecified.
func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	version := strings.TrimSpace(cfg.Version)
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	logger.Debug().Str("version", version).Msg("reporting app version")

	return &versionService{version: version}, nil
}

func (s *versionService) GetAppVersion(context.Context) string {
	return s.version
}
