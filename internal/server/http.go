// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/MKhiriev/peninsula/internal/config"
	"github.com/MKhiriev/peninsula/internal/logger"
)

const (
	readHeaderTimeout = 5 * time.Second
	readTimeout       = 15 * time.Second
	idleTimeout       = 60 * time.Second

	// writeTimeoutMargin is added to the update timeout: an apply request
	// holds its connection for the whole script run.
	writeTimeoutMargin = 30 * time.Second
)

type httpServer struct {
	server          *http.Server
	shutdownTimeout time.Duration
	logger          *logger.Logger
}

func newHTTPServer(handler http.Handler, cfg config.Server, updateTimeout time.Duration, logger *logger.Logger) *httpServer {
	return &httpServer{
		server: &http.Server{
			Addr:              cfg.Address(),
			Handler:           handler,
			ReadHeaderTimeout: readHeaderTimeout,
			ReadTimeout:       readTimeout,
			WriteTimeout:      updateTimeout + writeTimeoutMargin,
			IdleTimeout:       idleTimeout,
		},
		shutdownTimeout: cfg.ShutdownTimeout,
		logger:          logger,
	}
}

// serve blocks until the listener is closed. A clean shutdown is not an
// error.
func (h *httpServer) serve(listener net.Listener) error {
	h.logger.Info().Str("address", listener.Addr().String()).Msg("HTTP server listening")
	if err := h.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown waits for in-flight requests up to the shutdown timeout, then
// closes the remaining connections.
func (h *httpServer) Shutdown() {
	ctx := context.Background()
	if h.shutdownTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.shutdownTimeout)
		defer cancel()
	}

	if err := h.server.Shutdown(ctx); err != nil {
		h.logger.Err(err).Msg("HTTP server graceful shutdown failed, closing connections")
		_ = h.server.Close()
	}
}
