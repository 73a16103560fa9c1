// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-study-sync/internal/config"
	"github.com/MKhiriev/go-study-sync/internal/handler"
	myHTTP "github.com/MKhiriev/go-study-sync/internal/handler/http"
	"github.com/MKhiriev/go-study-sync/internal/logger"
	"github.com/MKhiriev/go-study-sync/internal/service"
	"github.com/MKhiriev/go-study-sync/models"
)

func newTestHandlers(t *testing.T) *handler.Handlers {
	t.Helper()
	services, err := service.NewServices(
		config.StructuredConfig{App: config.App{Version: "1.0.0"}},
		models.NewAppBuildInfo("1.0.0", "", ""),
		logger.Nop(),
	)
	require.NoError(t, err)
	return &handler.Handlers{HTTP: myHTTP.NewHandler(services, "", logger.Nop())}
}

func TestNewServer_RequiresHTTP(t *testing.T) {
	tests := []struct {
		name     string
		handlers *handler.Handlers
		cfg      config.Server
	}{
		{name: "nil handlers", cfg: config.Server{HTTPAddress: ":8080"}},
		{name: "no http handler", handlers: &handler.Handlers{}, cfg: config.Server{HTTPAddress: ":8080"}},
		{name: "no address", handlers: newTestHandlers(t)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewServer(tt.handlers, tt.cfg, logger.Nop())
			assert.Nil(t, s)
			assert.ErrorIs(t, err, errNoServersAreCreated)
		})
	}
}

func TestServer_ServesAndDrains(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	s, err := NewServer(newTestHandlers(t), config.Server{HTTPAddress: listener.Addr().String()}, logger.Nop())
	require.NoError(t, err)
	srv := s.(*server)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- srv.run(ctx, func() error { return srv.httpServer.serve(listener) })
	}()

	resp, err := http.Get("http://" + listener.Addr().String() + "/api/ping")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "pong", string(body))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestServer_ServeErrorStopsRun(t *testing.T) {
	s, err := NewServer(newTestHandlers(t), config.Server{HTTPAddress: "127.0.0.1:0"}, logger.Nop())
	require.NoError(t, err)

	boom := errors.New("listen failed")
	err = s.(*server).run(context.Background(), func() error { return boom })

	assert.ErrorIs(t, err, boom)
}

func TestNewHTTPServer_DefaultTimeout(t *testing.T) {
	h := newHTTPServer(http.NotFoundHandler(), config.Server{HTTPAddress: ":0"}, logger.Nop())
	assert.Equal(t, config.DefaultRequestTimeout, h.server.ReadTimeout)

	h = newHTTPServer(http.NotFoundHandler(), config.Server{HTTPAddress: ":0", RequestTimeout: time.Second}, logger.Nop())
	assert.Equal(t, time.Second, h.server.WriteTimeout)
}
