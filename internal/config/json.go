// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk layout of the optional JSON config.
type StructuredJSONConfig struct {
	App struct {
		Version  string `json:"version"`
		LogLevel string `json:"log_level"`
	} `json:"app,omitempty"`

	Auth struct {
		AccessSecret  string   `json:"access_secret"`
		RefreshSecret string   `json:"refresh_secret"`
		AccessTTL     Duration `json:"access_ttl"`
		RefreshTTL    Duration `json:"refresh_ttl"`
		Issuer        string   `json:"issuer"`
	} `json:"auth,omitempty"`

	Storage struct {
		DB struct {
			DSN          string `json:"dsn"`
			MaxOpenConns int    `json:"max_open_conns"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		Host       string `json:"host"`
		Port       int    `json:"port"`
		CORSOrigin string `json:"cors_origin"`
	} `json:"server,omitempty"`

	Update struct {
		RepoDir string   `json:"repo_dir"`
		Remote  string   `json:"remote"`
		Script  string   `json:"script"`
		Timeout Duration `json:"timeout"`
	} `json:"update,omitempty"`

	Workers struct {
		RefreshTokenPruneInterval Duration `json:"refresh_token_prune_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version:  jsonCfg.App.Version,
			LogLevel: jsonCfg.App.LogLevel,
		},
		Auth: Auth{
			AccessSecret:  jsonCfg.Auth.AccessSecret,
			RefreshSecret: jsonCfg.Auth.RefreshSecret,
			AccessTTL:     time.Duration(jsonCfg.Auth.AccessTTL),
			RefreshTTL:    time.Duration(jsonCfg.Auth.RefreshTTL),
			Issuer:        jsonCfg.Auth.Issuer,
		},
		Storage: Storage{
			DB: DB{
				DSN:          jsonCfg.Storage.DB.DSN,
				MaxOpenConns: jsonCfg.Storage.DB.MaxOpenConns,
			},
		},
		Server: Server{
			Host:       jsonCfg.Server.Host,
			Port:       jsonCfg.Server.Port,
			CORSOrigin: jsonCfg.Server.CORSOrigin,
		},
		Update: Update{
			RepoDir: jsonCfg.Update.RepoDir,
			Remote:  jsonCfg.Update.Remote,
			Script:  jsonCfg.Update.Script,
			Timeout: time.Duration(jsonCfg.Update.Timeout),
		},
		Workers: Workers{
			RefreshTokenPruneInterval: time.Duration(jsonCfg.Workers.RefreshTokenPruneInterval),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
