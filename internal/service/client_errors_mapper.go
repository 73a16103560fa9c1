// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-study-sync/internal/adapter"
)

// mapAdapterError marks every adapter failure as a transport failure while
// keeping the adapter sentinel reachable through errors.Is.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrSyncTransportFailure, err)
}

// IsRetryable reports whether a failed pass may succeed without any change
// on this side. Rejections of the request itself (bad request, expired
// credentials, forbidden) only heal after user action, so backing off would
// only generate noise.
func IsRetryable(err error) bool {
	if !errors.Is(err, ErrSyncTransportFailure) {
		return false
	}

	switch {
	case errors.Is(err, adapter.ErrBadRequest),
		errors.Is(err, adapter.ErrUnauthorized),
		errors.Is(err, adapter.ErrForbidden):
		return false
	}
	return true
}
