// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/secure-api/internal/logger"
	"github.com/MKhiriev/secure-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataService_CurrentUser(t *testing.T) {
	svc := NewDataService(logger.Nop())

	got := svc.CurrentUser(context.Background(), "alice")

	assert.Equal(t, models.CurrentUserResponse{
		Username: "alice",
		Message:  "Hello, alice! You are authenticated.",
	}, got)
}

func TestDataService_Items(t *testing.T) {
	svc := NewDataService(logger.Nop(), WithDelays(0, 0))

	items, err := svc.Items(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 3)
	for i, it := range items {
		assert.Equal(t, i+1, it.ID)
		assert.Equal(t, (i+1)*100, it.Value)
	}
	assert.Equal(t, "Sample Item 2", items[1].Name)

	// callers get a copy
	items[0].Value = -1
	again, err := svc.Items(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 100, again[0].Value)
}

func TestDataService_Items_Delay(t *testing.T) {
	svc := NewDataService(logger.Nop(), WithDelays(30*time.Millisecond, 0))

	start := time.Now()
	_, err := svc.Items(context.Background())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}

func TestDataService_Items_Cancelled(t *testing.T) {
	svc := NewDataService(logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Items(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDataService_PerformanceTest(t *testing.T) {
	svc := NewDataService(logger.Nop(), WithDelays(0, 0))

	for range 50 {
		resp, err := svc.PerformanceTest(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Performance test endpoint", resp.Message)
		assert.Less(t, resp.RandomNumber, uint64(1000))
		assert.False(t, resp.Timestamp.IsZero())
	}
}
