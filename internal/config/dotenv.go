// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

const defaultDotEnvPath = ".env"

// dotEnvPath returns the .env file location, taken from DOTENV when set.
func dotEnvPath() string {
	if p := os.Getenv("DOTENV"); p != "" {
		return p
	}
	return defaultDotEnvPath
}

// loadDotEnv exports the variables from the .env file at path into the
// process environment without overriding variables that are already set.
//
// A missing file at the default location is not an error; a missing file at
// an explicitly configured location is.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err == nil {
		return nil
	}

	if errors.Is(err, fs.ErrNotExist) && path == defaultDotEnvPath {
		return nil
	}

	return fmt.Errorf("error loading .env file %q: %w", path, err)
}
