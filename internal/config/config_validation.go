// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// normalize fills values derived from other settings: the repository
// directory defaults to the working directory and a relative update script
// is resolved against it.
func (cfg *StructuredConfig) normalize() error {
	if cfg.Update.RepoDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("error resolving working directory: %w", err)
		}
		cfg.Update.RepoDir = wd
	}

	if cfg.Update.Script != "" && !filepath.IsAbs(cfg.Update.Script) {
		cfg.Update.Script = filepath.Join(cfg.Update.RepoDir, cfg.Update.Script)
	}

	return nil
}

// validate checks that the final merged [StructuredConfig] satisfies all
// constraints before it is used at startup. All violations are reported
// together.
func (cfg *StructuredConfig) validate() error {
	var errs []error

	if cfg.Auth.AccessSecret == "" || cfg.Auth.RefreshSecret == "" {
		errs = append(errs, ErrMissingTokenSecrets)
	} else if cfg.Auth.AccessSecret == cfg.Auth.RefreshSecret {
		errs = append(errs, ErrSharedTokenSecret)
	}

	if cfg.Auth.AccessTTL <= 0 || cfg.Auth.RefreshTTL <= 0 {
		errs = append(errs, ErrInvalidTokenTTL)
	}

	if cfg.Storage.DB.DSN == "" {
		errs = append(errs, ErrInvalidStorageConfigs)
	}

	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		errs = append(errs, ErrInvalidServerConfigs)
	}

	if cfg.Update.Script == "" || cfg.Update.Timeout <= 0 {
		errs = append(errs, ErrInvalidUpdateConfigs)
	}

	if cfg.Workers.RefreshTokenPruneInterval < 0 {
		errs = append(errs, ErrInvalidWorkerConfigs)
	}

	return errors.Join(errs...)
}

// validateStorage only requires a database. Used by tools that never issue
// tokens or serve HTTP.
func (cfg *StructuredConfig) validateStorage() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}
	return nil
}
