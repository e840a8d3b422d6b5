// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by the side-store. Callers match them with
// [errors.Is].
var (
	// ErrCacheUnavailable is returned when the side-store cannot be reached
	// or rejects an operation. It is logged by callers and never surfaced to
	// HTTP clients.
	ErrCacheUnavailable = errors.New("side-store unavailable")

	// ErrCacheNotConfigured is returned by connection helpers when no
	// side-store address is configured.
	ErrCacheNotConfigured = errors.New("side-store not configured")
)
