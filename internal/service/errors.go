// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDataProvided wraps request validation failures.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrUnauthorized is the single outcome of every token verification
	// failure: bad signature, expiry, malformed token or missing subject.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrWrongCredentials is returned by Login for a bad password. It
	// matches ErrUnauthorized under errors.Is.
	ErrWrongCredentials = fmt.Errorf("%w: incorrect username or password", ErrUnauthorized)

	ErrTokenCreationFailed   = errors.New("token creation failed")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
