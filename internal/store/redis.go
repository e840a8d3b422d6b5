// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/secure-api/internal/config"
	"github.com/MKhiriev/secure-api/internal/logger"
	"github.com/redis/go-redis/v9"
)

// redisCache is the go-redis implementation of [Cache].
type redisCache struct {
	client *redis.Client
}

// NewConnectRedis parses cfg.Address as a redis:// URL, opens a client and
// pings it within cfg.PingTimeout.
//
// Any failure closes the client and returns an error wrapping
// [ErrCacheUnavailable]; an empty address returns [ErrCacheNotConfigured].
func NewConnectRedis(ctx context.Context, cfg config.Cache, log *logger.Logger) (Cache, error) {
	if cfg.Address == "" {
		return nil, ErrCacheNotConfigured
	}

	opts, err := redis.ParseURL(cfg.Address)
	if err != nil {
		log.Err(err).Str("func", "NewConnectRedis").Msg("invalid side-store address")
		return nil, fmt.Errorf("%w: invalid address: %w", ErrCacheUnavailable, err)
	}

	cache := &redisCache{client: redis.NewClient(opts)}

	if cfg.PingTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.PingTimeout)
		defer cancel()
	}

	if err = cache.Ping(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectRedis").Msg("error connecting side-store (ping)")
		_ = cache.Close()
		return nil, err
	}
	log.Info().Str("func", "NewConnectRedis").Msg("connected to side-store successfully")

	return cache, nil
}

// Connect returns a present capability when the side-store at cfg.Address
// answers and an absent one otherwise. It never fails: an unreachable
// side-store only disables mirroring.
func Connect(ctx context.Context, cfg config.Cache, log *logger.Logger) Optional {
	cache, err := NewConnectRedis(ctx, cfg, log)
	if err != nil {
		log.Warn().Err(err).Msg("side-store disabled for this process")
		return Absent()
	}

	return Present(cache)
}

func (c *redisCache) Ping(ctx context.Context) error {
	if err := c.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("%w: ping: %w", ErrCacheUnavailable, err)
	}
	return nil
}

func (c *redisCache) HSet(ctx context.Context, key string, fields map[string]string) error {
	values := make(map[string]any, len(fields))
	for k, v := range fields {
		values[k] = v
	}

	if err := c.client.HSet(ctx, key, values).Err(); err != nil {
		return fmt.Errorf("%w: hset %s: %w", ErrCacheUnavailable, key, err)
	}
	return nil
}

func (c *redisCache) Close() error {
	return c.client.Close()
}
