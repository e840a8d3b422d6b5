// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the client side of the secure-api HTTP surface.
//
// [APIClient] hides transport details from the load-test tooling. Non-2xx
// replies are mapped by mapHTTPError to the sentinels in errors.go so callers
// can branch with [errors.Is] (e.g. [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/secure-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// APIClient talks to a running secure-api instance.
type APIClient interface {
	// SetToken stores the bearer token attached to authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token, or "" if none was set.
	Token() string

	// Login exchanges credentials for a token and stores it via SetToken.
	Login(ctx context.Context, req models.LoginRequest) (models.TokenResponse, error)

	// CurrentUser calls the authenticated identity endpoint.
	CurrentUser(ctx context.Context) (models.CurrentUserResponse, error)

	// Health fetches the liveness snapshot.
	Health(ctx context.Context) (models.HealthResponse, error)

	// PerformanceTest calls the public synthetic-load endpoint once.
	PerformanceTest(ctx context.Context) (models.PerformanceResponse, error)
}
