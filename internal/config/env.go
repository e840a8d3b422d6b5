// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

// legacyEnv maps the variable names used by earlier deployments of the
// service onto their structured equivalents.
var legacyEnv = map[string]string{
	"SECRET_KEY": "APP_TOKEN_SIGN_KEY",
	"REDIS_URL":  "STORAGE_CACHE_ADDRESS",
}

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envPrefix` tags
// defined on [StructuredConfig] and its nested types. Legacy variable names
// are honoured when the structured name is not set.
//
// Returns a wrapped error if env.Parse fails (e.g. a value cannot be
// converted to the target type).
func parseEnv(cfg *StructuredConfig) error {
	environment := env.ToMap(os.Environ())
	for legacy, structured := range legacyEnv {
		if environment[structured] != "" {
			continue
		}
		if v := environment[legacy]; v != "" {
			environment[structured] = v
		}
	}

	err := env.ParseWithOptions(cfg, env.Options{Environment: environment})
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
