// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-study-sync/internal/logger"
	"github.com/MKhiriev/go-study-sync/internal/utils"
	"github.com/MKhiriev/go-study-sync/models"
)

// sync serves POST /api/sync. It decodes a [models.SyncRequest], reconciles
// it for the identity that withIdentity put into the context and answers
// with a [models.SyncResponse].
//
// Response codes:
//   - 200 OK: the request was reconciled, applied ids and cursors are in the body.
//   - 400 Bad Request: the body is not valid JSON or fails validation.
//   - 401 Unauthorized: the bearer token is missing or invalid.
//   - 403 Forbidden: an operation belongs to another identity.
//   - 500 Internal Server Error: reconciliation failed on the server side.
func (h *Handler) sync(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.SyncRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.sync").Msg("failed to decode sync request")
		utils.WriteError(w, ErrInvalidJSON.Error(), http.StatusBadRequest)
		return
	}

	ctx := utils.WithDeviceID(r.Context(), req.DeviceID)
	userID, _ := utils.GetUserIDFromContext(ctx)

	resp, err := h.services.ReconciliationService.Reconcile(ctx, req)
	if err != nil {
		log.Err(err).
			Str("func", "*Handler.sync").
			Str("device_id", req.DeviceID).
			Str("user_id", userID).
			Msg("reconciliation failed")
		utils.WriteError(w, err.Error(), statusFromError(err))
		return
	}

	log.Debug().
		Str("func", "*Handler.sync").
		Str("device_id", req.DeviceID).
		Str("user_id", userID).
		Int("applied", len(resp.AppliedOperationIDs)).
		Msg("sync request served")

	if _, err = utils.WriteJSON(w, resp, http.StatusOK); err != nil {
		log.Err(fmt.Errorf("write sync response: %w", err)).Str("func", "*Handler.sync").Send()
	}
}

// ping serves GET /api/ping. The connectivity monitor of the client uses it
// to decide whether the remote side is reachable.
func (h *Handler) ping(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("pong"))
}
