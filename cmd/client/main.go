// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/peninsula/internal/adapter"
	"github.com/MKhiriev/peninsula/internal/client"
	"github.com/MKhiriev/peninsula/internal/config"
	"github.com/MKhiriev/peninsula/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		printBuildInfo()
		return
	}

	log := logger.NewConsoleLogger("peninsula-client")
	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		level = "info"
	}
	if err := log.SetLevel(level); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server adapter")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err = client.NewApp(serverAdapter, os.Stdout, os.Stderr, log).Run(ctx, os.Args[1:])
	if err == nil {
		return
	}

	if !errors.Is(err, client.ErrUsage) {
		log.Error().Err(err).Msg("command failed")
	}
	stop()
	os.Exit(1)
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
