package http

import (
	"time"

	"github.com/MKhiriev/go-learnly/internal/config"
	"github.com/MKhiriev/go-learnly/internal/logger"
	"github.com/MKhiriev/go-learnly/internal/service"
)

type Handler struct {
	services *service.Services

	// maxUploadSize caps the multipart body of the PDF summarizer endpoint.
	maxUploadSize int64

	// requestTimeout is applied by chi's Timeout middleware when positive.
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	maxUploadSize := cfg.MaxUploadSize
	if maxUploadSize <= 0 {
		maxUploadSize = config.DefaultMaxUploadSize
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		maxUploadSize:  maxUploadSize,
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}
}
