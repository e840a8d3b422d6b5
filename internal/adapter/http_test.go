// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/secure-api/internal/logger"
	"github.com/MKhiriev/secure-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, serverURL string) *httpAPIClient {
	t.Helper()
	c, err := NewHTTPAPIClient(serverURL, 5*time.Second, logger.Nop())
	require.NoError(t, err)
	return c.(*httpAPIClient)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

// ── Login ───────────────────────────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/login", r.URL.Path)

		var req models.LoginRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "alice", req.Username)

		writeJSON(t, w, http.StatusOK, models.TokenResponse{AccessToken: "a.b.c", TokenType: "bearer", ExpiresIn: 1800})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	got, err := c.Login(context.Background(), models.LoginRequest{Username: "alice", Password: new("password123")})

	require.NoError(t, err)
	assert.Equal(t, int64(1800), got.ExpiresIn)
	assert.Equal(t, "a.b.c", c.Token())
}

func TestLogin_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, map[string]string{"detail": "Incorrect username or password"})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := c.Login(context.Background(), models.LoginRequest{Username: "alice", Password: new("nope")})

	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Contains(t, err.Error(), "Incorrect username or password")
	assert.Empty(t, c.Token())
}

func TestLogin_EmptyToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]string{})
	}))
	defer srv.Close()

	_, err := newTestClient(t, srv.URL).Login(context.Background(), models.LoginRequest{Username: "a", Password: new("b")})

	require.Error(t, err)
}

// ── CurrentUser ─────────────────────────────────────────────────────────────

func TestCurrentUser_SendsBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/users/me", r.URL.Path)
		if r.Header.Get("Authorization") != "Bearer tok" {
			writeJSON(t, w, http.StatusUnauthorized, map[string]string{"detail": "Not authenticated"})
			return
		}
		writeJSON(t, w, http.StatusOK, models.CurrentUserResponse{Username: "alice", Message: "hi"})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)

	_, err := c.CurrentUser(context.Background())
	require.ErrorIs(t, err, ErrUnauthorized)

	c.SetToken("  tok ")
	got, err := c.CurrentUser(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)
}

// ── Health / PerformanceTest ────────────────────────────────────────────────

func TestHealth_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/health", r.URL.Path)
		writeJSON(t, w, http.StatusOK, models.HealthResponse{Status: "healthy", RedisStatus: "connected", Version: "1.0.0"})
	}))
	defer srv.Close()

	got, err := newTestClient(t, srv.URL).Health(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "healthy", got.Status)
	assert.Equal(t, "connected", got.RedisStatus)
}

func TestPerformanceTest_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{"bad request", http.StatusBadRequest, ErrBadRequest},
		{"not found", http.StatusNotFound, ErrNotFound},
		{"unprocessable", http.StatusUnprocessableEntity, ErrUnprocessable},
		{"internal", http.StatusInternalServerError, ErrInternalServerError},
		{"bad gateway", http.StatusBadGateway, ErrBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				writeJSON(t, w, tt.status, map[string]string{"detail": "x"})
			}))
			defer srv.Close()

			_, err := newTestClient(t, srv.URL).PerformanceTest(context.Background())

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestPerformanceTest_UnmappedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := newTestClient(t, srv.URL).PerformanceTest(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 503: Service Unavailable")
}

// ── helpers ─────────────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"http://localhost:8000", "http://localhost:8000", false},
		{"localhost:8000", "http://localhost:8000", false},
		{"https://api.example.com/", "https://api.example.com", false},
		{"  http://api  ", "http://api", false},
		{"", "", true},
		{"http://", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPAPIClient_InvalidURL(t *testing.T) {
	_, err := NewHTTPAPIClient("", time.Second, logger.Nop())

	assert.ErrorIs(t, err, ErrInvalidBaseURL)
}

func TestErrorDetail(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"string detail", `{"detail":"Invalid token"}`, "Invalid token"},
		{"list detail", `{"detail":[{"field":"email"}]}`, `[{"field":"email"}]`},
		{"plain text", "  boom \n", "boom"},
		{"no detail member", `{"error":"x"}`, `{"error":"x"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errorDetail([]byte(tt.raw)))
		})
	}
}
