// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"testing"

	"github.com/MKhiriev/go-study-sync/internal/config"
	"github.com/MKhiriev/go-study-sync/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// NewHandlers only stores the services pointer, so nil is fine here.
func TestNewHandlers_HTTPAddress(t *testing.T) {
	cfg := config.StructuredConfig{
		Server: config.Server{HTTPAddress: ":8080"},
		App:    config.App{HashKey: "secret"},
	}

	h, err := NewHandlers(nil, cfg, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP)
}

func TestNewHandlers_NoAddress(t *testing.T) {
	h, err := NewHandlers(nil, config.StructuredConfig{}, logger.Nop())

	assert.Nil(t, h)
	assert.ErrorIs(t, err, errNoHandlersAreCreated)
}

func TestNewHandlers_IndependentInstances(t *testing.T) {
	cfg := config.StructuredConfig{Server: config.Server{HTTPAddress: ":8080"}}

	h1, err := NewHandlers(nil, cfg, logger.Nop())
	require.NoError(t, err)
	h2, err := NewHandlers(nil, cfg, logger.Nop())
	require.NoError(t, err)

	assert.NotSame(t, h1, h2)
	assert.NotSame(t, h1.HTTP, h2.HTTP)
}
