// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-study-sync/internal/logger"
	"github.com/MKhiriev/go-study-sync/models"
)

// cursorWidth keeps cursor tokens fixed-width so that their lexical order
// matches issue order.
const cursorWidth = 20

// reconciliationService is the reference remote side. It accepts every
// operation, keeps no records and hands out a fresh cursor per requested
// category on each call.
type reconciliationService struct {
	// counter backs the cursors. It only grows, so every cursor handed out
	// is later than the previous one.
	counter atomic.Uint64
	now     func() time.Time

	logger *logger.Logger
}

// NewReconciliationService creates the reference ReconciliationService.
// Callers normally wrap it with [ReconciliationValidationService].
func NewReconciliationService(logger *logger.Logger) ReconciliationService {
	return &reconciliationService{
		now:    time.Now,
		logger: logger,
	}
}

// Reconcile implements ReconciliationService.
func (r *reconciliationService) Reconcile(ctx context.Context, req models.SyncRequest) (models.SyncResponse, error) {
	applied := make([]string, 0, len(req.Operations))
	for _, op := range req.Operations {
		applied = append(applied, op.ID)
	}

	categories := models.AllCategories
	if req.Options != nil && len(req.Options.Categories) > 0 {
		categories = models.NormalizeCategories(req.Options.Categories)
	}

	var cursors models.CursorMap
	for _, c := range categories {
		cursors.Set(c, r.nextCursor())
	}

	forcePull := req.Options != nil && req.Options.ForcePull
	logger.FromContext(ctx).Debug().
		Str("func", "reconciliationService.Reconcile").
		Str("device_id", req.DeviceID).
		Int("operations", len(req.Operations)).
		Str("categories", models.CategoriesKey(categories)).
		Bool("force_pull", forcePull).
		Msg("sync request reconciled")

	return models.SyncResponse{
		AppliedOperationIDs: applied,
		Collections:         models.Collections{},
		Cursors:             cursors,
		DeviceID:            req.DeviceID,
		Timestamp:           r.now().UTC(),
	}, nil
}

// nextCursor returns a zero padded counter value, so cursors also order
// correctly as strings.
func (r *reconciliationService) nextCursor() string {
	return fmt.Sprintf("%0*d", cursorWidth, r.counter.Add(1))
}
