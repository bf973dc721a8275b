// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/peninsula/internal/config"
	"github.com/MKhiriev/peninsula/internal/logger"
	"github.com/MKhiriev/peninsula/internal/store"
	"github.com/MKhiriev/peninsula/internal/updater"
)

type Services struct {
	AuthService    AuthService
	UserService    UserService
	AuditService   AuditService
	UpdateService  UpdateService
	AppInfoService AppInfoService
}

// NewServices wires every service of the control plane. Auth and user
// services are wrapped with request validation.
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, metrics MetricsRecorder, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	audit := NewAuditService(storages.AuditRepository, logger)
	tokens := NewTokenIssuer(cfg.Auth)

	auth := NewAuthValidationService().Wrap(
		NewAuthService(storages.UserRepository, storages.RefreshTokenRepository, tokens, audit, metrics, logger),
	)
	users := NewUserValidationService().Wrap(
		NewUserService(storages.UserRepository, audit, logger),
	)
	update := NewUpdateService(
		updater.NewGitInspector(cfg.Update.RepoDir, cfg.Update.Remote),
		updater.NewScriptRunner(cfg.Update),
		updater.NewLock(),
		audit,
		metrics,
		logger,
	)

	return &Services{
		AuthService:    auth,
		UserService:    users,
		AuditService:   audit,
		UpdateService:  update,
		AppInfoService: appInfo,
	}, nil
}

// NewBootstrapServices wires only what the admin bootstrap needs. It does
// not require token secrets.
func NewBootstrapServices(storages *store.Storages, logger *logger.Logger) *Services {
	audit := NewAuditService(storages.AuditRepository, logger)
	return &Services{
		AuditService: audit,
		UserService: NewUserValidationService().Wrap(
			NewUserService(storages.UserRepository, audit, logger),
		),
	}
}
