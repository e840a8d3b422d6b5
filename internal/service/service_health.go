// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/secure-api/internal/config"
	"github.com/MKhiriev/secure-api/internal/logger"
	"github.com/MKhiriev/secure-api/internal/store"
	"github.com/MKhiriev/secure-api/models"
)

type healthService struct {
	cache       store.Optional
	pingTimeout time.Duration
	version     string

	// startedAt is captured once, at construction.
	startedAt time.Time
	now       func() time.Time

	logger *logger.Logger
}

// NewHealthService returns a HealthService whose uptime counts from now.
func NewHealthService(cache store.Optional, cfg config.StructuredConfig, logger *logger.Logger) HealthService {
	return &healthService{
		cache:       cache,
		pingTimeout: cfg.Storage.Cache.PingTimeout,
		version:     cfg.App.Version,
		startedAt:   time.Now(),
		now:         time.Now,
		logger:      logger,
	}
}

// Check reports the service as healthy and probes the side-store. The
// status is always healthy; side-store trouble only shows in RedisStatus.
func (h *healthService) Check(ctx context.Context) models.HealthResponse {
	now := h.now()

	return models.HealthResponse{
		Status:        models.StatusHealthy,
		Timestamp:     now.UTC(),
		Version:       h.version,
		UptimeSeconds: now.Sub(h.startedAt).Seconds(),
		RedisStatus:   h.cacheStatus(ctx),
	}
}

func (h *healthService) cacheStatus(ctx context.Context) string {
	cache, ok := h.cache.Get()
	if !ok {
		return models.CacheStatusNotConfigured
	}

	if h.pingTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.pingTimeout)
		defer cancel()
	}

	if err := cache.Ping(ctx); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Msg("side-store ping failed")
		return models.CacheStatusDisconnected
	}

	return models.CacheStatusConnected
}
