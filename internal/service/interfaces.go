// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-study-sync/models"
)

// ReconciliationService is the remote side of a sync pass.
type ReconciliationService interface {
	Reconcile(ctx context.Context, req models.SyncRequest) (models.SyncResponse, error)
}

// ReconciliationServiceWrapper defines middleware composition for
// ReconciliationService. Implementations wrap an existing service to add
// behavior such as validating.
type ReconciliationServiceWrapper interface {
	Wrap(ReconciliationService) ReconciliationService
}

// AppInfoService exposes build metadata of the running server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
