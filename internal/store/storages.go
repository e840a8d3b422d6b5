// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store holds the optional side-store used to mirror registration
// records and report liveness. Nothing written here is ever read back.
package store

import "github.com/MKhiriev/secure-api/internal/logger"

// Storages aggregates the side-store capability and the repositories built
// on it.
type Storages struct {
	Cache      Optional
	UserMirror UserMirror
}

// NewStorages builds the repositories on top of cache.
func NewStorages(cache Optional, logger *logger.Logger) *Storages {
	return &Storages{
		Cache:      cache,
		UserMirror: NewUserMirror(cache, logger),
	}
}

// Close releases the side-store if present.
func (s *Storages) Close() error {
	return s.Cache.Close()
}
