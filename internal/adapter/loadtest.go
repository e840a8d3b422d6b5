// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/secure-api/internal/logger"
	"golang.org/x/sync/errgroup"
)

var ErrInvalidLoadTestParams = errors.New("requests and concurrency must be positive")

// LoadTestParams sizes a load-test run.
type LoadTestParams struct {
	Requests    int
	Concurrency int
}

// LoadTestResult summarises a run. Errors counts failures by message.
type LoadTestResult struct {
	Total     int
	Succeeded int
	Failed    int

	Elapsed    time.Duration
	MinLatency time.Duration
	MaxLatency time.Duration
	AvgLatency time.Duration

	Errors map[string]int
}

// RunLoadTest issues params.Requests performance-test calls with at most
// params.Concurrency in flight. Individual failures are counted, not
// returned. Cancelling ctx stops scheduling new calls; the calls that never
// ran are not counted.
func RunLoadTest(ctx context.Context, client APIClient, params LoadTestParams) (LoadTestResult, error) {
	if params.Requests <= 0 || params.Concurrency <= 0 {
		return LoadTestResult{}, ErrInvalidLoadTestParams
	}

	log := logger.FromContext(ctx)

	var (
		succeeded atomic.Int64
		failed    atomic.Int64
		totalLat  atomic.Int64
		minLat    atomic.Int64
		maxLat    atomic.Int64

		mu     sync.Mutex
		errMsg = make(map[string]int)
	)
	minLat.Store(int64(^uint64(0) >> 1))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(params.Concurrency)

	start := time.Now()
	for i := 0; i < params.Requests; i++ {
		if gctx.Err() != nil {
			break
		}

		g.Go(func() error {
			if gctx.Err() != nil {
				return nil
			}

			t := time.Now()
			_, err := client.PerformanceTest(gctx)
			lat := time.Since(t)

			if err != nil {
				failed.Add(1)
				mu.Lock()
				errMsg[err.Error()]++
				mu.Unlock()
				log.Debug().Err(err).Int("request", i).Msg("performance test request failed")
				return nil
			}

			succeeded.Add(1)
			totalLat.Add(int64(lat))
			storeMin(&minLat, int64(lat))
			storeMax(&maxLat, int64(lat))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return LoadTestResult{}, fmt.Errorf("load test: %w", err)
	}

	result := LoadTestResult{
		Succeeded: int(succeeded.Load()),
		Failed:    int(failed.Load()),
		Elapsed:   time.Since(start),
		Errors:    errMsg,
	}
	result.Total = result.Succeeded + result.Failed
	if result.Succeeded > 0 {
		result.MinLatency = time.Duration(minLat.Load())
		result.MaxLatency = time.Duration(maxLat.Load())
		result.AvgLatency = time.Duration(totalLat.Load() / int64(result.Succeeded))
	}

	return result, nil
}

func storeMin(v *atomic.Int64, n int64) {
	for {
		cur := v.Load()
		if n >= cur || v.CompareAndSwap(cur, n) {
			return
		}
	}
}

func storeMax(v *atomic.Int64, n int64) {
	for {
		cur := v.Load()
		if n <= cur || v.CompareAndSwap(cur, n) {
			return
		}
	}
}
