package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-vault-adder/internal/config"
	"github.com/MKhiriev/go-vault-adder/internal/handler"
	"github.com/MKhiriev/go-vault-adder/internal/logger"
	"github.com/MKhiriev/go-vault-adder/internal/server"
	"github.com/MKhiriev/go-vault-adder/internal/service"
	"github.com/MKhiriev/go-vault-adder/internal/store"
	"github.com/MKhiriev/go-vault-adder/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo.String())

	log := logger.NewLogger("vault-adder-server")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Str("address", cfg.Server.HTTPAddress).Str("vault_dir", cfg.Storage.Files.VaultDir).Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	version := cfg.Version
	if version == "" {
		version = buildInfo.BuildVersion()
	}

	services, err := service.NewServices(storages, version, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
