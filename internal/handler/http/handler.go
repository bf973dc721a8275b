// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/peninsula/internal/config"
	"github.com/MKhiriev/peninsula/internal/logger"
	"github.com/MKhiriev/peninsula/internal/metrics"
	"github.com/MKhiriev/peninsula/internal/service"
)

type Handler struct {
	services *service.Services

	cfg config.Server

	// metrics is optional; without it neither instrumentation nor the
	// /metrics route is mounted.
	metrics *metrics.Metrics

	authLimiter *rateLimiter

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, m *metrics.Metrics, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:    services,
		cfg:         cfg,
		metrics:     m,
		authLimiter: newRateLimiter(cfg.AuthRatePerSecond, cfg.AuthRateBurst),
		logger:      logger,
	}
}
