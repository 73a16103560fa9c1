// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-study-sync/internal/service"
	"github.com/MKhiriev/go-study-sync/internal/validators"
	"github.com/stretchr/testify/assert"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "wrapped validation", err: fmt.Errorf("%w: %w", service.ErrInvalidSyncRequest, validators.ErrCategoryMismatch), want: http.StatusBadRequest},
		{name: "device id", err: validators.ErrInvalidDeviceID, want: http.StatusBadRequest},
		{name: "integrity", err: ErrIntegrityCheckFailed, want: http.StatusBadRequest},
		{name: "bad header", err: ErrInvalidAuthorizationHeader, want: http.StatusUnauthorized},
		{name: "bad token", err: fmt.Errorf("parse: %w", ErrInvalidToken), want: http.StatusUnauthorized},
		{name: "ownership", err: service.ErrOwnershipMismatch, want: http.StatusForbidden},
		{name: "unknown", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}
