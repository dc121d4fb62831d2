package main

import (
	"fmt"

	"github.com/MKhiriev/account-registry/internal/config"
	httphandler "github.com/MKhiriev/account-registry/internal/handler/http"
	"github.com/MKhiriev/account-registry/internal/logger"
	"github.com/MKhiriev/account-registry/internal/server"
	"github.com/MKhiriev/account-registry/internal/service"
	"github.com/MKhiriev/account-registry/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("account-registry-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	fileStore := store.NewFileStore(cfg.Storage.UsersFile)
	registry, err := store.NewRegistry(fileStore, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error loading account registry")
	}

	log.Info().Int("accounts", registry.Count()).Msg("account registry loaded")

	services := service.NewServices(registry, cfg.App, log)
	handler := httphandler.NewHandler(services, registry, log)

	srv := server.NewServer(handler.Init(), cfg.Server, log)
	srv.RunServer()
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
