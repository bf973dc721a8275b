// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/MKhiriev/peninsula/internal/config"
	"github.com/MKhiriev/peninsula/internal/logger"
	"github.com/MKhiriev/peninsula/internal/workers"
)

type server struct {
	httpServer *httpServer
	workers    *workers.Workers

	shutdownOnce sync.Once

	logger *logger.Logger
}

// NewServer prepares the HTTP server around handler. updateTimeout sizes
// the write timeout so that an apply request is never cut off by the
// server before the script's own timeout fires. wks may be nil.
func NewServer(handler http.Handler, cfg config.Server, updateTimeout time.Duration, wks *workers.Workers, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	if handler == nil {
		return nil, errNoHandler
	}
	if wks == nil {
		wks = workers.NewWorkers()
	}

	return &server{
		httpServer: newHTTPServer(handler, cfg, updateTimeout, logger),
		workers:    wks,
		logger:     logger,
	}, nil
}

// RunServer listens on the configured address and blocks until a stop
// signal arrives.
func (s *server) RunServer() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	listener, err := net.Listen("tcp", s.httpServer.server.Addr)
	if err != nil {
		return fmt.Errorf("error listening on %s: %w", s.httpServer.server.Addr, err)
	}

	return s.run(ctx, listener)
}

func (s *server) Shutdown() {
	s.shutdownOnce.Do(func() {
		s.logger.Info().Msg("shutting down")

		// finish HTTP server first: in-flight requests may still need the
		// store the workers share
		s.httpServer.Shutdown()
		s.workers.Stop()
	})
}

// run serves on listener until ctx is done or serving fails.
func (s *server) run(ctx context.Context, listener net.Listener) error {
	s.workers.Start(ctx)

	serveErr := make(chan error, 1)
	go func() {
		s.logger.Info().Msg("Launching HTTP server")
		serveErr <- s.httpServer.serve(listener)
	}()

	var err error
	select {
	case <-ctx.Done():
	case err = <-serveErr:
		if err != nil {
			err = fmt.Errorf("HTTP server failed: %w", err)
		}
	}

	s.Shutdown()
	s.logger.Info().Msg("server Shutdown gracefully")

	return err
}
