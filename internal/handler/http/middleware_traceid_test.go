// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-study-sync/internal/logger"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeWithTraceID(h *Handler, incoming string) (*httptest.ResponseRecorder, *http.Request) {
	var captured *http.Request
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	if incoming != "" {
		req.Header.Set(traceIDHeader, incoming)
	}

	rr := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rr, req)
	return rr, captured
}

func TestWithTraceID_TableTest(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		wantUUID bool
	}{
		{name: "incoming trace id is reused", incoming: "client-trace-1"},
		{name: "missing trace id is generated", wantUUID: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr, captured := executeWithTraceID(&Handler{logger: logger.Nop()}, tt.incoming)

			require.NotNil(t, captured)
			got := rr.Header().Get(traceIDHeader)
			if tt.wantUUID {
				_, err := uuid.Parse(got)
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, tt.incoming, got)
		})
	}
}

func TestWithTraceID_LoggerCarriesTraceID(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: &logger.Logger{Logger: zerolog.New(&buf)}}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.FromRequest(r).Info().Msg("inside")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	req.Header.Set(traceIDHeader, "trace-in-log")
	h.withTraceID(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.Contains(t, buf.String(), `"trace_id":"trace-in-log"`)
}

func TestWithTraceID_GeneratesUniqueIDs(t *testing.T) {
	h := &Handler{logger: logger.Nop()}
	mw := h.withTraceID(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))

	const n = 50
	done := make(chan string, n)
	for range n {
		go func() {
			rr := httptest.NewRecorder()
			mw.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/ping", nil))
			done <- rr.Header().Get(traceIDHeader)
		}()
	}

	seen := make(map[string]struct{}, n)
	for range n {
		id := <-done
		require.NotEmpty(t, id)
		seen[id] = struct{}{}
	}
	assert.Len(t, seen, n)
}

func TestWithTraceID_OriginalRequestNotMutated(t *testing.T) {
	h := &Handler{logger: logger.Nop()}
	req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	originalCtx := req.Context()

	h.withTraceID(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})).
		ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, originalCtx, req.Context())
}
