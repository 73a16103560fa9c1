// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-study-sync/internal/logger"
	"github.com/MKhiriev/go-study-sync/internal/service"
	"github.com/MKhiriev/go-study-sync/internal/utils"
	"github.com/MKhiriev/go-study-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSyncHandler(rec service.ReconciliationService) *Handler {
	return NewHandler(&service.Services{ReconciliationService: rec}, "", logger.Nop())
}

func TestSync_PassesDeviceAndIdentity(t *testing.T) {
	rec := &fakeReconciliationService{resp: models.SyncResponse{AppliedOperationIDs: []string{}}}
	h := newSyncHandler(rec)

	req := httptest.NewRequest(http.MethodPost, "/api/sync", strings.NewReader(`{"deviceId":"device-7","operations":[],"cursors":{}}`))
	req = req.WithContext(context.WithValue(req.Context(), utils.UserIDCtxKey, "user-1"))
	rr := httptest.NewRecorder()

	h.sync(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "device-7", rec.lastReq.DeviceID)

	deviceID, ok := utils.GetDeviceIDFromContext(rec.lastCtx)
	assert.True(t, ok)
	assert.Equal(t, "device-7", deviceID)

	userID, ok := utils.GetUserIDFromContext(rec.lastCtx)
	assert.True(t, ok)
	assert.Equal(t, "user-1", userID)

	assert.JSONEq(t, `{"appliedOperationIds":[],"collections":{},"cursors":{},"deviceId":"","timestamp":"0001-01-01T00:00:00Z"}`, rr.Body.String())
}

func TestSync_ErrorStatus(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "invalid request", err: service.ErrInvalidSyncRequest, wantStatus: http.StatusBadRequest},
		{name: "not authenticated", err: service.ErrNotAuthenticated, wantStatus: http.StatusUnauthorized},
		{name: "ownership", err: service.ErrOwnershipMismatch, wantStatus: http.StatusForbidden},
		{name: "unexpected", err: errors.New("disk on fire"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newSyncHandler(&fakeReconciliationService{err: tt.err})

			rr := httptest.NewRecorder()
			h.sync(rr, httptest.NewRequest(http.MethodPost, "/api/sync", strings.NewReader(`{"deviceId":"d"}`)))

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tt.err.Error())
		})
	}
}

func TestSync_InvalidJSON(t *testing.T) {
	rec := &fakeReconciliationService{}
	h := newSyncHandler(rec)

	rr := httptest.NewRecorder()
	h.sync(rr, httptest.NewRequest(http.MethodPost, "/api/sync", strings.NewReader(`[`)))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), ErrInvalidJSON.Error())
	assert.Nil(t, rec.lastCtx)
}

func TestPing(t *testing.T) {
	rr := httptest.NewRecorder()
	(&Handler{}).ping(rr, httptest.NewRequest(http.MethodGet, "/api/ping", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "pong", rr.Body.String())
}
