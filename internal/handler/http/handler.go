// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/go-study-sync/internal/logger"
	"github.com/MKhiriev/go-study-sync/internal/service"
	"github.com/MKhiriev/go-study-sync/internal/utils"
)

// Handler holds the dependencies of the HTTP routes and middlewares.
type Handler struct {
	// services gives the routes access to reconciliation and app info.
	services *service.Services

	// hasher signs responses and verifies signed requests. It is disabled
	// when no hash key is configured.
	hasher *utils.Hasher

	logger *logger.Logger
}

// NewHandler creates the HTTP handler. An empty hashKey disables the
// integrity middleware.
func NewHandler(services *service.Services, hashKey string, logger *logger.Logger) *Handler {
	logger.Info().Bool("hashing", hashKey != "").Msg("http handler created")
	return &Handler{
		services: services,
		hasher:   utils.NewHasher(hashKey),
		logger:   logger,
	}
}
