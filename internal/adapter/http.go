// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/secure-api/internal/logger"
	"github.com/MKhiriev/secure-api/internal/utils"
	"github.com/MKhiriev/secure-api/models"
	"github.com/go-resty/resty/v2"
)

type httpAPIClient struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPAPIClient constructs an [APIClient] rooted at baseURL. A missing
// scheme defaults to http. timeout bounds every request; zero disables it.
//
// Returns ErrInvalidBaseURL if baseURL is empty or has no host.
func NewHTTPAPIClient(baseURL string, timeout time.Duration, logger *logger.Logger) (APIClient, error) {
	normalized, err := normalizeBaseURL(baseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}

	return &httpAPIClient{
		client: utils.NewHTTPClient(normalized, timeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpAPIClient) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpAPIClient) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpAPIClient) Login(ctx context.Context, req models.LoginRequest) (models.TokenResponse, error) {
	var token models.TokenResponse
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&token).
		Post("/api/auth/login")
	if err != nil {
		return models.TokenResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TokenResponse{}, err
	}
	if token.AccessToken == "" {
		return models.TokenResponse{}, fmt.Errorf("login response: empty access token")
	}

	h.SetToken(token.AccessToken)
	h.logger.Debug().Str("username", req.Username).Int64("expires_in", token.ExpiresIn).Msg("logged in")

	return token, nil
}

func (h *httpAPIClient) CurrentUser(ctx context.Context) (models.CurrentUserResponse, error) {
	var user models.CurrentUserResponse
	resp, err := h.authedRequest(ctx).SetResult(&user).Get("/api/users/me")
	if err != nil {
		return models.CurrentUserResponse{}, fmt.Errorf("current user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.CurrentUserResponse{}, err
	}

	return user, nil
}

func (h *httpAPIClient) Health(ctx context.Context) (models.HealthResponse, error) {
	var health models.HealthResponse
	resp, err := h.client.R().SetContext(ctx).SetResult(&health).Get("/health")
	if err != nil {
		return models.HealthResponse{}, fmt.Errorf("health request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.HealthResponse{}, err
	}

	return health, nil
}

func (h *httpAPIClient) PerformanceTest(ctx context.Context) (models.PerformanceResponse, error) {
	var perf models.PerformanceResponse
	resp, err := h.client.R().SetContext(ctx).SetResult(&perf).Get("/api/performance-test")
	if err != nil {
		return models.PerformanceResponse{}, fmt.Errorf("performance test request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PerformanceResponse{}, err
	}

	return perf, nil
}

func (h *httpAPIClient) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}
