// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate]. Any of them
// prevents the process from starting.
var (
	// ErrMissingTokenSignKey indicates that no token signing secret was
	// configured.
	ErrMissingTokenSignKey = errors.New("token sign key is not configured")
	// ErrInvalidTokenDuration indicates a zero or negative token lifetime.
	ErrInvalidTokenDuration = errors.New("token duration must be positive")
	// ErrMissingHTTPAddress indicates that the HTTP listen address is empty.
	ErrMissingHTTPAddress = errors.New("http address is not configured")
)
