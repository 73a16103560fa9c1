// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-study-sync/internal/service"
	"github.com/MKhiriev/go-study-sync/internal/validators"
)

// errorStatusMap maps sentinel errors to the HTTP status they are answered
// with. Anything not listed is an internal error.
var errorStatusMap = map[error]int{
	service.ErrInvalidSyncRequest: http.StatusBadRequest,
	service.ErrNotAuthenticated:   http.StatusUnauthorized,
	service.ErrOwnershipMismatch:  http.StatusForbidden,

	validators.ErrUnsupportedType: http.StatusBadRequest,
	validators.ErrInvalidDeviceID: http.StatusBadRequest,

	ErrInvalidJSON:                http.StatusBadRequest,
	ErrIntegrityCheckFailed:       http.StatusBadRequest,
	ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	ErrInvalidToken:               http.StatusUnauthorized,
}

// statusFromError returns the status of the first sentinel in
// errorStatusMap that err wraps, or [http.StatusInternalServerError].
func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
