// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/secure-api/internal/logger"
	"github.com/MKhiriev/secure-api/models"
)

// userKeyPrefix namespaces registration records in the side-store.
const userKeyPrefix = "user:"

// userMirror is the side-store backed implementation of [UserMirror].
type userMirror struct {
	cache  Optional
	logger *logger.Logger
}

// NewUserMirror constructs a [UserMirror] writing through cache.
func NewUserMirror(cache Optional, logger *logger.Logger) UserMirror {
	logger.Debug().Msg("creating user mirror")
	return &userMirror{
		cache:  cache,
		logger: logger,
	}
}

// MirrorUser stores user as a flat hash under "user:<id>". The password hash
// is never written.
//
// It is a no-op when the side-store is absent. Write failures are returned
// wrapped in [ErrCacheUnavailable].
func (m *userMirror) MirrorUser(ctx context.Context, user models.User) error {
	cache, ok := m.cache.Get()
	if !ok {
		return nil
	}

	key := UserKey(user.ID)
	if err := cache.HSet(ctx, key, userFields(user)); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userMirror.MirrorUser").Str("key", key).Msg("error mirroring user")
		return fmt.Errorf("error mirroring user: %w", err)
	}

	return nil
}

// UserKey returns the side-store key of the record with the given id.
func UserKey(id string) string {
	return userKeyPrefix + id
}

func userFields(user models.User) map[string]string {
	fullName := ""
	if user.FullName != nil {
		fullName = *user.FullName
	}

	return map[string]string{
		"username":   user.Username,
		"email":      user.Email,
		"full_name":  fullName,
		"created_at": user.CreatedAt.UTC().Format(time.RFC3339Nano),
		"is_active":  strconv.FormatBool(user.IsActive),
	}
}
