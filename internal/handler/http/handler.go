// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/secure-api/internal/config"
	"github.com/MKhiriev/secure-api/internal/logger"
	"github.com/MKhiriev/secure-api/internal/metrics"
	"github.com/MKhiriev/secure-api/internal/service"
)

type Handler struct {
	services *service.Services
	metrics  *metrics.Metrics

	// allowedHosts and allowedOrigins are empty when the corresponding
	// filter is disabled.
	allowedHosts   []string
	allowedOrigins []string

	logger *logger.Logger
}

func NewHandler(services *service.Services, metrics *metrics.Metrics, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		metrics:        metrics,
		allowedHosts:   cfg.AllowedHosts,
		allowedOrigins: cfg.AllowedOrigins,
		logger:         logger,
	}
}
