// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrNotAuthenticated is returned by enqueue operations when no local
	// identity is active.
	ErrNotAuthenticated = errors.New("not authenticated")
	// ErrOwnershipMismatch is returned when a mutation's declared owner is
	// not the active identity.
	ErrOwnershipMismatch = errors.New("ownership mismatch")
	// ErrInvalidDraft wraps a validator failure of a queue draft.
	ErrInvalidDraft = errors.New("invalid pending operation")

	// ErrSyncTransportFailure marks a pass that failed before anything was
	// written locally: network error or non-2xx response.
	ErrSyncTransportFailure = errors.New("sync transport failure")
	// ErrSyncTransactionFailure marks a pass whose local storage access
	// failed. The merge transaction rolled back completely.
	ErrSyncTransactionFailure = errors.New("sync transaction failure")

	ErrInvalidToken          = errors.New("invalid session token")
	ErrVersionIsNotSpecified = errors.New("version is not specified")
	ErrInvalidSyncRequest    = errors.New("invalid sync request")
)
