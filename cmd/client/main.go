package main

import (
	"fmt"

	"github.com/MKhiriev/go-vault-adder/internal/client"
	"github.com/MKhiriev/go-vault-adder/internal/config"
	"github.com/MKhiriev/go-vault-adder/internal/logger"
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

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewLogger("vault-adder-client").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("vault-adder-client", cfg.LogFile)

	app, err := client.NewApp(cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}
