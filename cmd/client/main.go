package main

import (
	"os"

	"github.com/MKhiriev/go-budget-sync/internal/client"
	"github.com/MKhiriev/go-budget-sync/internal/config"
	"github.com/MKhiriev/go-budget-sync/internal/logger"
	"github.com/MKhiriev/go-budget-sync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewClientLogger("budget-sync-client")

	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	app, err := client.NewApp(cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(os.Args[1:]); err != nil {
		os.Exit(1)
	}
}
