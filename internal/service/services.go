// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-study-sync/internal/config"
	"github.com/MKhiriev/go-study-sync/internal/logger"
	"github.com/MKhiriev/go-study-sync/models"
)

// Services groups the server side services used by the HTTP handler.
type Services struct {
	ReconciliationService ReconciliationService
	AppInfoService        AppInfoService
}

// NewServices builds the server services. Reconciliation is returned already
// wrapped with request validation.
func NewServices(cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, err
	}

	reconciliation := NewReconciliationValidationService().Wrap(NewReconciliationService(logger))

	return &Services{
		ReconciliationService: reconciliation,
		AppInfoService:        appInfo,
	}, nil
}
