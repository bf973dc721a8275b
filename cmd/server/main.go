// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/MKhiriev/peninsula/internal/config"
	handler "github.com/MKhiriev/peninsula/internal/handler/http"
	"github.com/MKhiriev/peninsula/internal/logger"
	"github.com/MKhiriev/peninsula/internal/metrics"
	"github.com/MKhiriev/peninsula/internal/server"
	"github.com/MKhiriev/peninsula/internal/service"
	"github.com/MKhiriev/peninsula/internal/store"
	"github.com/MKhiriev/peninsula/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("peninsula-server")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = log.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	// a release build reports its own version unless one is configured
	if cfg.App.Version == "dev" && buildVersion != "N/A" {
		cfg.App.Version = buildVersion
	}

	db, err := store.NewConnectPostgres(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	storages := store.NewStorages(db, log)
	m := metrics.New(prometheus.NewRegistry())

	services, err := service.NewServices(storages, cfg, m, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	router := handler.NewHandler(services, cfg.Server, m, log).Init()

	wks := workers.NewWorkers(
		workers.NewRefreshTokenJanitor(storages.RefreshTokenRepository, db, cfg.Workers.RefreshTokenPruneInterval, log),
	)

	srv, err := server.NewServer(router, cfg.Server, cfg.Update.Timeout, wks, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Err(err).Msg("server stopped with error")
		return
	}

	log.Info().Msg("server stopped")
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
