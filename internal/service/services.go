// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business logic of secure-api: token issuance and
// verification, the demo login and registration flows, health reporting and
// the static demo payloads.
package service

import (
	"fmt"

	"github.com/MKhiriev/secure-api/internal/config"
	"github.com/MKhiriev/secure-api/internal/logger"
	"github.com/MKhiriev/secure-api/internal/store"
	"github.com/MKhiriev/secure-api/internal/validators"
)

type Services struct {
	AuthService    AuthService
	HealthService  HealthService
	DataService    DataService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger, opts ...DataServiceOption) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		AuthService:    NewAuthService(storages.UserMirror, validators.NewRequestValidator(), cfg.App, logger),
		HealthService:  NewHealthService(storages.Cache, cfg, logger),
		DataService:    NewDataService(logger, opts...),
		AppInfoService: appInfoService,
	}, nil
}
