// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/secure-api/models"
)

// AuthService issues and verifies bearer tokens and handles the demo
// registration and login flows.
type AuthService interface {
	// Register validates req, builds an ephemeral record and mirrors it to the
	// side-store best-effort.
	Register(ctx context.Context, req models.RegisterRequest) (models.UserResponse, error)
	// Login checks the demo password and issues a token for the username.
	Login(ctx context.Context, req models.LoginRequest) (models.TokenResponse, error)
	// CreateToken signs claims with exp = now + TTL and iat = now.
	CreateToken(ctx context.Context, claims map[string]any) (models.Token, error)
	// ParseToken verifies tokenString and returns its claims. Every failure
	// is ErrUnauthorized.
	ParseToken(ctx context.Context, tokenString string) (models.Claims, error)
}

// HealthService reports process liveness and side-store reachability.
type HealthService interface {
	Check(ctx context.Context) models.HealthResponse
}

// DataService produces the static demo payloads.
type DataService interface {
	CurrentUser(ctx context.Context, subject string) models.CurrentUserResponse
	Items(ctx context.Context) ([]models.Item, error)
	PerformanceTest(ctx context.Context) (models.PerformanceResponse, error)
}

// AppInfoService exposes build and version information.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
