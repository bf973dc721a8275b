// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/peninsula/internal/config"
	"github.com/MKhiriev/peninsula/internal/logger"
	"github.com/MKhiriev/peninsula/models"
)

const healthStatusOK = "ok"

type appInfoService struct {
	appVersion string

	logger *logger.Logger
}

// NewAppInfoService fails when no version is configured; the version is
// reported by the health endpoint and must never be empty.
func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion: cfg.Version,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

// Health is a liveness answer. It does not probe the database.
func (s *appInfoService) Health(ctx context.Context) models.HealthResponse {
	return models.HealthResponse{
		Status:  healthStatusOK,
		Version: s.appVersion,
	}
}
