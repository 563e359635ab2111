package main

import (
	"fmt"

	"github.com/dkovalev/qr-mint/internal/adapter"
	"github.com/dkovalev/qr-mint/internal/client"
	"github.com/dkovalev/qr-mint/internal/config"
	"github.com/dkovalev/qr-mint/internal/logger"
	"github.com/dkovalev/qr-mint/internal/service"
	"github.com/dkovalev/qr-mint/internal/store"
	"github.com/dkovalev/qr-mint/internal/tui"
	"github.com/dkovalev/qr-mint/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("qr-mint-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	localStorage, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	// Thin-client mode: generation is delegated to a server only when an
	// address is configured.
	var remote adapter.RemoteGenerator
	if cfg.Adapter.HTTPAddress != "" {
		remote = adapter.NewHTTPRemoteGenerator(adapter.HTTPClientConfig{
			BaseURL: cfg.Adapter.HTTPAddress,
			Timeout: cfg.Adapter.RequestTimeout,
		})
	}

	services := service.NewClientServices(cfg, localStorage, remote, log)

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	ui, err := tui.New(services, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, cfg.Workers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
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
