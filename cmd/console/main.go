package main

import (
	"fmt"

	"github.com/MKhiriev/content-console/internal/adapter"
	"github.com/MKhiriev/content-console/internal/client"
	"github.com/MKhiriev/content-console/internal/config"
	"github.com/MKhiriev/content-console/internal/logger"
	"github.com/MKhiriev/content-console/internal/service"
	"github.com/MKhiriev/content-console/internal/session"
	"github.com/MKhiriev/content-console/internal/store"
	"github.com/MKhiriev/content-console/internal/tui"
	"github.com/MKhiriev/content-console/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Printf("Content Console %s\n", buildInfo)

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewLogger("content-console").Fatal().Err(err).Msg("error getting configs")
	}

	log, closeLog := logger.NewClientLogger("content-console", cfg.App.LogFile)
	defer closeLog()

	log.Info().Str("build", buildInfo.String()).Msg("starting")
	log.Debug().Any("config", cfg).Msg("received configs")

	storages, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer storages.Close()

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	sessionStore := session.NewStore(storages.SessionRepository, cfg.Storage.SessionNamespace, log)
	services := service.NewClientServices(sessionStore, serverAdapter, cfg.App.PageSize, log)

	ui, err := tui.New(services, sessionStore, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, cfg.Workers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Error().Err(err).Msg("client run error")
		fmt.Printf("Ошибка: %v\n", err)
	}
}
