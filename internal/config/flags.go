// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"time"
)

// ParseFlags parses server configuration flags from args.
//
// Flags:
//
//	-p                port to listen on
//	-d                database DSN
//	-c/-config        json file path with configs
//	-access-secret    access token signing secret
//	-refresh-secret   refresh token signing secret
//	-access-ttl       access token lifetime (e.g. "15m")
//	-refresh-ttl      refresh token lifetime (e.g. "168h")
//	-issuer           token issuer
//	-cors-origin      allowed cross-origin source
//	-repo-dir         git working tree of the deployed service
//	-update-script    update script path
func ParseFlags(args []string) (*StructuredConfig, error) {
	var port int
	var databaseDSN string
	var jsonConfigPath string
	var accessSecret, refreshSecret string
	var accessTTL, refreshTTL time.Duration
	var issuer string
	var corsOrigin string
	var repoDir, updateScript string

	fs := flag.NewFlagSet("peninsula", flag.ContinueOnError)
	fs.IntVar(&port, "p", 0, "Port to listen on")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&accessSecret, "access-secret", "", "Access token signing secret")
	fs.StringVar(&refreshSecret, "refresh-secret", "", "Refresh token signing secret")
	fs.DurationVar(&accessTTL, "access-ttl", 0, "Access token lifetime (e.g. 15m)")
	fs.DurationVar(&refreshTTL, "refresh-ttl", 0, "Refresh token lifetime (e.g. 168h)")
	fs.StringVar(&issuer, "issuer", "", "Token issuer")
	fs.StringVar(&corsOrigin, "cors-origin", "", "Allowed cross-origin source")
	fs.StringVar(&repoDir, "repo-dir", "", "Git working tree of the deployed service")
	fs.StringVar(&updateScript, "update-script", "", "Update script path")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		Auth: Auth{
			AccessSecret:  accessSecret,
			RefreshSecret: refreshSecret,
			AccessTTL:     accessTTL,
			RefreshTTL:    refreshTTL,
			Issuer:        issuer,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			Port:       port,
			CORSOrigin: corsOrigin,
		},
		Update: Update{
			RepoDir: repoDir,
			Script:  updateScript,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
