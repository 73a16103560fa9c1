// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEntry(t *testing.T, b []byte) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(b), &entry))
	return entry
}

func TestNewLogger_Fields(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "study-sync-server")

	l.Info().Str("reason", "hot-timer").Msg("sync pass finished")

	entry := decodeEntry(t, buf.Bytes())
	assert.Equal(t, "study-sync-server", entry["role"])
	assert.Equal(t, "hot-timer", entry["reason"])
	assert.Equal(t, "sync pass finished", entry["message"])
	assert.Contains(t, entry, "time")
	assert.Contains(t, entry["func"], "TestNewLogger_Fields")
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
	assert.NotNil(t, NewLogger("server"))
}

func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Error().Msg("dropped")

	assert.Empty(t, buf.String())
}

func TestGetChildLogger(t *testing.T) {
	var buf bytes.Buffer
	parent := newLogger(&buf, "client")

	child := parent.GetChildLogger()
	require.NotSame(t, parent, child)
	child.Logger = child.With().Str("trace_id", "t-1").Logger()

	child.Info().Msg("child")
	entry := decodeEntry(t, buf.Bytes())
	assert.Equal(t, "client", entry["role"])
	assert.Equal(t, "t-1", entry["trace_id"])

	buf.Reset()
	parent.Info().Msg("parent")
	assert.NotContains(t, decodeEntry(t, buf.Bytes()), "trace_id")
}

func TestFromContextAndRequest(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("pass", "p-1").Logger()
	ctx := zl.WithContext(context.Background())

	FromContext(ctx).Info().Msg("ctx")
	assert.Equal(t, "p-1", decodeEntry(t, buf.Bytes())["pass"])

	buf.Reset()
	req := httptest.NewRequest(http.MethodPost, "/api/sync", nil).WithContext(ctx)
	FromRequest(req).Info().Msg("req")
	assert.Equal(t, "p-1", decodeEntry(t, buf.Bytes())["pass"])

	assert.NotNil(t, FromContext(context.Background()))
}

func TestNewClientLogger_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.log")
	l := NewClientLogger("client", path)

	l.Info().Msg("queued")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	entry := decodeEntry(t, data)
	assert.Equal(t, "client", entry["role"])
	assert.Equal(t, "queued", entry["message"])
}
