// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// loadtest logs in to a running secure-api instance, checks the
// authenticated identity endpoint and then drives concurrent traffic at the
// performance-test endpoint.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/secure-api/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cmd := newRootCmd(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
	if err := cmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
