package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-learnly/internal/adapter"
	"github.com/MKhiriev/go-learnly/internal/config"
	"github.com/MKhiriev/go-learnly/internal/extractor"
	"github.com/MKhiriev/go-learnly/internal/handler"
	"github.com/MKhiriev/go-learnly/internal/logger"
	"github.com/MKhiriev/go-learnly/internal/server"
	"github.com/MKhiriev/go-learnly/internal/service"
	"github.com/MKhiriev/go-learnly/internal/store"
	"github.com/MKhiriev/go-learnly/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := printBuildInfo()

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("learnly-server").Fatal().Err(err).Msg("error getting configs")
	}

	log, err := logger.New("learnly-server", cfg.Log)
	if err != nil {
		logger.NewLogger("learnly-server").Fatal().Err(err).Msg("error creating logger")
	}

	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.Version
	}
	log.Debug().Str("address", cfg.Server.HTTPAddress).Str("model", cfg.Gemini.Model).Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	gateway, err := adapter.NewGeminiAdapter(cfg.Gemini, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating generation gateway")
	}

	services, err := service.NewServices(storages, gateway, extractor.NewPDFExtractor(), *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() models.BuildInfo {
	info := models.NewBuildInfo(buildVersion, buildDate, buildCommit)
	for _, line := range info.Lines() {
		fmt.Println(line)
	}

	return info
}
