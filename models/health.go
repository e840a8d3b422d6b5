// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Side-store states reported by the health check.
const (
	CacheStatusConnected     = "connected"
	CacheStatusDisconnected  = "disconnected"
	CacheStatusNotConfigured = "not_configured"
)

// StatusHealthy is the only overall status the service reports.
const StatusHealthy = "healthy"

// HealthResponse is the liveness snapshot returned by GET /health.
type HealthResponse struct {
	Status        string    `json:"status"`
	Timestamp     time.Time `json:"timestamp"`
	Version       string    `json:"version"`
	UptimeSeconds float64   `json:"uptime_seconds"`
	RedisStatus   string    `json:"redis_status"`
}

// RootResponse is the banner returned by GET /.
type RootResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
	Health  string `json:"health"`
	Metrics string `json:"metrics"`
}
