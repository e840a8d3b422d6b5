// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides helpers shared across secure-api: context keys,
// digests, JSON response writing, the resty HTTP client, and bearer token
// issuance and verification.
package utils

import (
	"context"
)

// contextKey is a private type for context keys, preventing collisions with
// string keys set by other packages.
type contextKey string

// String implements fmt.Stringer.
func (c contextKey) String() string {
	return string(c)
}

// SubjectCtxKey is the context key under which the auth middleware stores
// the verified token subject.
//
//	ctx := context.WithValue(ctx, utils.SubjectCtxKey, "alice")
var SubjectCtxKey = contextKey("subject")

// GetSubjectFromContext returns the verified subject stored in ctx.
// ok is false when the value is missing, has the wrong type or is empty.
func GetSubjectFromContext(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(SubjectCtxKey).(string)
	return subject, ok && subject != ""
}
