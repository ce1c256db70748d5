package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-site-client/internal/adapter"
	"github.com/MKhiriev/go-site-client/internal/client"
	"github.com/MKhiriev/go-site-client/internal/config"
	"github.com/MKhiriev/go-site-client/internal/fingerprint"
	"github.com/MKhiriev/go-site-client/internal/logger"
	"github.com/MKhiriev/go-site-client/internal/service"
	"github.com/MKhiriev/go-site-client/internal/store"
	"github.com/MKhiriev/go-site-client/internal/workers"
	"github.com/MKhiriev/go-site-client/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewClientLogger("go-site-client", false).Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("go-site-client", cfg.App.Development)

	storages, err := store.NewClientStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer storages.Close()

	adapters, err := adapter.NewAdapters(cfg.Adapter, storages.SessionStore, log, adapter.WithCookieStore(storages.Cookies))
	if err != nil {
		log.Fatal().Err(err).Msg("create adapters")
	}

	fp := fingerprint.New(storages.LocalStorage, fingerprint.NewSystemEnvironment("go-site-client"), log)

	services := service.NewClientServices(adapters, storages.SessionStore, fp, cfg.App.SiteURL, log, service.WithProfileRefresh(true))
	ws := workers.NewClientWorkers(services, cfg.Workers, log)

	app, err := client.NewApp(services, adapters, fp, ws, cfg.App, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Error().Err(err).Msg("client run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
