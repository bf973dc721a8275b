// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
	"time"
)

// Client holds the settings of the operator CLI.
type Client struct {
	// ServerAddress is the base URL of the control plane.
	// Env: PENINSULA_ADDRESS
	ServerAddress string `env:"PENINSULA_ADDRESS" envDefault:"http://localhost:4875"`

	// RequestTimeout bounds one request. It must exceed the server's
	// update timeout, because apply blocks until the script exits.
	// Env: PENINSULA_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"PENINSULA_REQUEST_TIMEOUT" envDefault:"150s"`

	// AccessToken is sent as the bearer token of admin requests.
	// Env: PENINSULA_TOKEN
	AccessToken string `env:"PENINSULA_TOKEN"`
}

// GetClientConfig loads the operator CLI settings from the environment.
func GetClientConfig() (Client, error) {
	var cfg Client
	if err := parseEnv(&cfg); err != nil {
		return Client{}, err
	}

	if strings.TrimSpace(cfg.ServerAddress) == "" {
		return Client{}, fmt.Errorf("%w: empty server address", ErrInvalidClientConfigs)
	}
	if cfg.RequestTimeout <= 0 {
		return Client{}, fmt.Errorf("%w: request timeout must be positive", ErrInvalidClientConfigs)
	}

	return cfg, nil
}
