// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/secure-api/internal/logger"
	"github.com/MKhiriev/secure-api/models"
	"github.com/cespare/xxhash/v2"
)

// Simulated work of the demo routes.
const (
	DefaultItemsDelay       = 100 * time.Millisecond
	DefaultPerformanceDelay = 10 * time.Millisecond
)

const performanceMessage = "Performance test endpoint"

var demoItems = []models.Item{
	{ID: 1, Name: "Sample Item 1", Value: 100},
	{ID: 2, Name: "Sample Item 2", Value: 200},
	{ID: 3, Name: "Sample Item 3", Value: 300},
}

type dataService struct {
	itemsDelay       time.Duration
	performanceDelay time.Duration
	now              func() time.Time

	logger *logger.Logger
}

// DataServiceOption customises a DataService.
type DataServiceOption func(*dataService)

// WithDelays overrides the simulated work durations. Zero disables a delay.
func WithDelays(items, performance time.Duration) DataServiceOption {
	return func(s *dataService) {
		s.itemsDelay = items
		s.performanceDelay = performance
	}
}

// NewDataService returns a DataService using the default delays unless
// overridden by opts.
func NewDataService(logger *logger.Logger, opts ...DataServiceOption) DataService {
	s := &dataService{
		itemsDelay:       DefaultItemsDelay,
		performanceDelay: DefaultPerformanceDelay,
		now:              time.Now,
		logger:           logger,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *dataService) CurrentUser(ctx context.Context, subject string) models.CurrentUserResponse {
	return models.CurrentUserResponse{
		Username: subject,
		Message:  fmt.Sprintf("Hello, %s! You are authenticated.", subject),
	}
}

// Items returns the three fixed demo items after the simulated delay.
// The returned slice is a fresh copy.
func (s *dataService) Items(ctx context.Context) ([]models.Item, error) {
	if err := sleep(ctx, s.itemsDelay); err != nil {
		return nil, err
	}

	return append([]models.Item(nil), demoItems...), nil
}

// PerformanceTest returns a timestamp and a pseudo-random number in [0, 1000)
// derived from the current time.
func (s *dataService) PerformanceTest(ctx context.Context) (models.PerformanceResponse, error) {
	if err := sleep(ctx, s.performanceDelay); err != nil {
		return models.PerformanceResponse{}, err
	}

	now := s.now()
	return models.PerformanceResponse{
		Message:      performanceMessage,
		Timestamp:    now.UTC(),
		RandomNumber: xxhash.Sum64String(now.Format(time.RFC3339Nano)) % 1000,
	}, nil
}

// sleep blocks for d or until ctx is done.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
