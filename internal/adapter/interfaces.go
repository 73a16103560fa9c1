// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport-layer client of the remote
// reconciliation endpoint.
//
// The primary abstraction is [ServerAdapter], which decouples the sync engine
// from the underlying protocol. The package ships an HTTP/JSON implementation
// ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401). Every failure of this
// package is a transport failure from the sync engine's point of view.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-study-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the remote
// reconciliation endpoint. Implementations are responsible for serialisation,
// authentication header management, and mapping transport-level errors to the
// sentinel values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent requests. An empty token removes the header.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Sync sends one reconciliation request and returns the decoded response.
	// Any non-2xx status is returned as an error and the response is
	// discarded.
	Sync(ctx context.Context, req models.SyncRequest) (models.SyncResponse, error)

	// Ping checks that the endpoint is reachable.
	Ping(ctx context.Context) error
}
