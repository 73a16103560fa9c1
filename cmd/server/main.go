// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command server runs the reference reconciliation server the sync client
// talks to during development and tests.
package main

import (
	"fmt"

	"github.com/MKhiriev/go-study-sync/internal/config"
	"github.com/MKhiriev/go-study-sync/internal/handler"
	"github.com/MKhiriev/go-study-sync/internal/logger"
	"github.com/MKhiriev/go-study-sync/internal/server"
	"github.com/MKhiriev/go-study-sync/internal/service"
	"github.com/MKhiriev/go-study-sync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("study-sync-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = cfg.ValidateServer(); err != nil {
		log.Fatal().Err(err).Msg("invalid server configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	services, err := service.NewServices(*cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
