// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/secure-api/internal/config"
	"github.com/MKhiriev/secure-api/internal/handler"
	"github.com/MKhiriev/secure-api/internal/logger"
	"github.com/MKhiriev/secure-api/internal/metrics"
	"github.com/MKhiriev/secure-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingCloser struct {
	calls atomic.Int32
	err   error
}

func (c *countingCloser) Close() error {
	c.calls.Add(1)
	return c.err
}

func freeAddr(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	return addr
}

func newTestServer(addr string, closers ...*countingCloser) *server {
	cfg := config.Server{
		HTTPAddress:     addr,
		ReadTimeout:     time.Second,
		WriteTimeout:    time.Second,
		ShutdownTimeout: time.Second,
	}
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	s := &server{
		httpServer: newHTTPServer(h, cfg, logger.Nop()),
		logger:     logger.Nop(),
	}
	for _, c := range closers {
		s.closers = append(s.closers, c)
	}
	return s
}

func TestNewServer_Errors(t *testing.T) {
	tests := []struct {
		name     string
		handlers *handler.Handlers
		cfg      config.Server
	}{
		{"nil handlers", nil, config.Server{HTTPAddress: ":0"}},
		{"no http handler", &handler.Handlers{}, config.Server{HTTPAddress: ":0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewServer(tt.handlers, tt.cfg, logger.Nop())

			require.ErrorIs(t, err, errNoServersAreCreated)
			assert.Nil(t, s)
		})
	}
}

func TestNewServer_AppliesTimeouts(t *testing.T) {
	cfg := config.Server{
		HTTPAddress:     "127.0.0.1:0",
		ReadTimeout:     3 * time.Second,
		WriteTimeout:    4 * time.Second,
		ShutdownTimeout: 5 * time.Second,
	}
	handlers, err := handler.NewHandlers(&service.Services{}, metrics.New(), cfg, logger.Nop())
	require.NoError(t, err)

	s, err := NewServer(handlers, cfg, logger.Nop())
	require.NoError(t, err)

	hs := s.(*server).httpServer
	assert.Equal(t, cfg.HTTPAddress, hs.server.Addr)
	assert.Equal(t, 3*time.Second, hs.server.ReadTimeout)
	assert.Equal(t, 4*time.Second, hs.server.WriteTimeout)
	assert.Equal(t, 5*time.Second, hs.shutdownTimeout)
}

// TestRun_ServesUntilCancelled starts the server, waits until it answers,
// cancels the context and expects a clean stop with the closers released.
func TestRun_ServesUntilCancelled(t *testing.T) {
	addr := freeAddr(t)
	closer := &countingCloser{}
	s := newTestServer(addr, closer)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.run(ctx) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusNoContent
	}, 2*time.Second, 10*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop")
	}
	assert.Equal(t, int32(1), closer.calls.Load())

	_, err := http.Get("http://" + addr + "/")
	assert.Error(t, err)
}

func TestRun_ListenFailureIsReturned(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()

	closer := &countingCloser{}
	s := newTestServer(l.Addr().String(), closer)

	err = s.run(context.Background())

	require.Error(t, err)
	assert.Equal(t, int32(1), closer.calls.Load())
}

func TestShutdown_Idempotent(t *testing.T) {
	closer := &countingCloser{err: errors.New("already closed")}
	s := newTestServer(freeAddr(t), closer)

	s.Shutdown()
	s.Shutdown()

	assert.Equal(t, int32(1), closer.calls.Load())
}
