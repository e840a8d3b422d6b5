// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

package store

import (
	"context"

	"github.com/MKhiriev/secure-api/models"
)

// Cache is the subset of key-value operations the service performs against
// the side-store. Implementations must be safe for concurrent use.
type Cache interface {
	// Ping checks that the side-store answers.
	Ping(ctx context.Context) error
	// HSet writes fields into the hash stored at key.
	HSet(ctx context.Context, key string, fields map[string]string) error
	// Close releases the underlying connections.
	Close() error
}

// UserMirror writes registration records to the side-store.
type UserMirror interface {
	MirrorUser(ctx context.Context, user models.User) error
}
