// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// validate checks that the final merged [StructuredConfig] satisfies the
// invariants required at startup. The side-store address is deliberately
// not checked: an unusable side-store only disables mirroring.
func (cfg *StructuredConfig) validate() error {
	var err error

	if cfg.App.TokenSignKey == "" {
		err = errors.Join(err, ErrMissingTokenSignKey)
	}
	if cfg.App.TokenDuration <= 0 {
		err = errors.Join(err, ErrInvalidTokenDuration)
	}
	if cfg.Server.HTTPAddress == "" {
		err = errors.Join(err, ErrMissingHTTPAddress)
	}

	return err
}
