// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command create-admin applies the schema migrations and creates the first
// admin account.
//
//	create-admin [username] [password]
//
// Credentials default to admin/admin123. An existing account with the same
// username is left untouched.
package main

import (
	"context"
	"os"
	"time"

	"github.com/MKhiriev/peninsula/internal/config"
	"github.com/MKhiriev/peninsula/internal/logger"
	"github.com/MKhiriev/peninsula/internal/service"
	"github.com/MKhiriev/peninsula/internal/store"
)

const (
	defaultUsername = "admin"
	defaultPassword = "admin123"

	bootstrapTimeout = 30 * time.Second
)

func main() {
	log := logger.NewLogger("create-admin")

	username, password := credentials(os.Args[1:])

	cfg, err := config.GetStorageConfig(nil)
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx, cancel := context.WithTimeout(context.Background(), bootstrapTimeout)
	defer cancel()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	services := service.NewBootstrapServices(store.NewStorages(db, log), log)

	user, created, err := services.UserService.EnsureAdmin(ctx, username, password)
	if err != nil {
		log.Fatal().Err(err).Str("username", username).Msg("error creating admin")
	}

	if !created {
		log.Info().Str("username", user.Username).Int64("id", user.ID).Msg("user already exists, nothing to do")
		return
	}

	log.Info().Str("username", user.Username).Int64("id", user.ID).Msg("admin created")
	if password == defaultPassword {
		log.Warn().Msg("admin uses the default password, change it after the first login")
	}
}

func credentials(args []string) (string, string) {
	username, password := defaultUsername, defaultPassword
	if len(args) > 0 && args[0] != "" {
		username = args[0]
	}
	if len(args) > 1 && args[1] != "" {
		password = args[1]
	}
	return username, password
}
