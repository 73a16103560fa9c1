// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"github.com/MKhiriev/go-study-sync/internal/config"
	"github.com/MKhiriev/go-study-sync/internal/handler/http"
	"github.com/MKhiriev/go-study-sync/internal/logger"
	"github.com/MKhiriev/go-study-sync/internal/service"
)

// Handlers groups the transport handlers of the reference server. HTTP is
// the only transport.
type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers creates the handlers enabled by cfg. It returns
// errNoHandlersAreCreated when no server address is configured.
func NewHandlers(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, cfg.App.HashKey, logger),
	}, nil
}
