// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Default values used when no other source provides a setting.
//
// DefaultTokenSignKey is a publicly known placeholder; deployments are
// expected to override it through APP_TOKEN_SIGN_KEY or SECRET_KEY.
const (
	DefaultTokenSignKey     = "your-secret-key-change-in-production"
	DefaultTokenDuration    = 30 * time.Minute
	DefaultVersion          = "1.0.0"
	DefaultEnvironment      = "development"
	DefaultLogLevel         = "debug"
	DefaultCacheAddress     = "redis://redis:6379"
	DefaultCachePingTimeout = 2 * time.Second
	DefaultHTTPAddress      = "0.0.0.0:8000"
	DefaultReadTimeout      = 15 * time.Second
	DefaultWriteTimeout     = 30 * time.Second
	DefaultShutdownTimeout  = 10 * time.Second
)

// DefaultAllowedHosts and DefaultAllowedOrigins mirror the allow-lists the
// service has always shipped with.
var (
	DefaultAllowedHosts   = []string{"localhost", "127.0.0.1", "*.yourdomain.com", "api"}
	DefaultAllowedOrigins = []string{"http://localhost:3000", "https://yourdomain.com"}
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenSignKey:  DefaultTokenSignKey,
			TokenDuration: DefaultTokenDuration,
			Version:       DefaultVersion,
			Environment:   DefaultEnvironment,
			LogLevel:      DefaultLogLevel,
		},
		Storage: Storage{
			Cache: Cache{
				Address:     DefaultCacheAddress,
				PingTimeout: DefaultCachePingTimeout,
			},
		},
		Server: Server{
			HTTPAddress:     DefaultHTTPAddress,
			AllowedHosts:    append([]string(nil), DefaultAllowedHosts...),
			AllowedOrigins:  append([]string(nil), DefaultAllowedOrigins...),
			ReadTimeout:     DefaultReadTimeout,
			WriteTimeout:    DefaultWriteTimeout,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
	}
}
