// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"io"
	"os/signal"
	"sync"
	"syscall"

	"github.com/MKhiriev/secure-api/internal/config"
	"github.com/MKhiriev/secure-api/internal/handler"
	"github.com/MKhiriev/secure-api/internal/logger"
	"golang.org/x/sync/errgroup"
)

type server struct {
	httpServer *httpServer

	// closers are released after the transport has stopped, in order.
	closers      []io.Closer
	shutdownOnce sync.Once

	logger *logger.Logger
}

// NewServer builds the HTTP server for handlers. closers (typically the
// storages) are closed once the server has shut down.
func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger, closers ...io.Closer) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		closers:    closers,
		logger:     logger,
	}, nil
}

func (s *server) RunServer() {
	if err := s.run(context.Background()); err != nil {
		s.logger.Err(err).Msg("error running server")
	}
}

// Shutdown stops the transport and then releases the closers. Only the first
// call has any effect.
func (s *server) Shutdown() {
	s.shutdownOnce.Do(func() {
		s.httpServer.Shutdown()

		for _, c := range s.closers {
			if err := c.Close(); err != nil {
				s.logger.Err(err).Msg("error releasing resource on shutdown")
			}
		}
	})
}

// run serves until parent is cancelled, a stop signal arrives or the
// listener fails, then shuts down gracefully.
func (s *server) run(parent context.Context) error {
	ctx, stop := signal.NotifyContext(parent,
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info().Str("address", s.httpServer.server.Addr).Msg("Launching HTTP server")
		return s.httpServer.RunServer()
	})

	g.Go(func() error {
		<-gctx.Done()
		s.Shutdown()
		return nil
	})

	err := g.Wait()
	s.logger.Info().Msg("server Shutdown gracefully")

	return err
}
