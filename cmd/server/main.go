// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/secure-api/internal/config"
	"github.com/MKhiriev/secure-api/internal/handler"
	"github.com/MKhiriev/secure-api/internal/logger"
	"github.com/MKhiriev/secure-api/internal/metrics"
	"github.com/MKhiriev/secure-api/internal/server"
	"github.com/MKhiriev/secure-api/internal/service"
	"github.com/MKhiriev/secure-api/internal/store"
	"github.com/MKhiriev/secure-api/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fmt.Println(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		logger.NewLogger("secure-api", config.DefaultLogLevel).Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("secure-api", cfg.App.LogLevel)
	log.Debug().
		Str("environment", cfg.App.Environment).
		Str("version", cfg.App.Version).
		Str("address", cfg.Server.HTTPAddress).
		Strs("allowed_hosts", cfg.Server.AllowedHosts).
		Strs("allowed_origins", cfg.Server.AllowedOrigins).
		Msg("received configs")

	cache := store.Connect(context.Background(), cfg.Storage.Cache, log)
	storages := store.NewStorages(cache, log)

	services, err := service.NewServices(storages, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, metrics.New(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log, storages)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
