// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-study-sync/internal/validators"
	"github.com/MKhiriev/go-study-sync/models"
)

// ReconciliationValidationService is a decorator around
// [ReconciliationService] that rejects malformed sync requests before they
// reach the wrapped service.
type ReconciliationValidationService struct {
	// inner is the service invoked once a request passes validation.
	inner ReconciliationService

	// validator checks the device id, operation kinds and payloads.
	validator validators.Validator
}

// NewReconciliationValidationService creates the validation decorator. Call
// Wrap to attach the service it guards.
func NewReconciliationValidationService() ReconciliationServiceWrapper {
	return &ReconciliationValidationService{
		validator: validators.NewSyncValidator(),
	}
}

// Reconcile validates req and forwards it to the wrapped service. A rejected
// request fails with [ErrInvalidSyncRequest] joined with the validator error.
func (v *ReconciliationValidationService) Reconcile(ctx context.Context, req models.SyncRequest) (models.SyncResponse, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.SyncResponse{}, fmt.Errorf("%w: %w", ErrInvalidSyncRequest, err)
	}

	return v.inner.Reconcile(ctx, req)
}

// Wrap sets wrapped as the inner service and returns v.
func (v *ReconciliationValidationService) Wrap(wrapped ReconciliationService) ReconciliationService {
	v.inner = wrapped
	return v
}
