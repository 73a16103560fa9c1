// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-study-sync/internal/config"
	"github.com/MKhiriev/go-study-sync/internal/logger"
)

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func newDBFromSQL(db *sql.DB) *DB {
	return &DB{
		DB:                 db,
		errorClassificator: NewSQLiteErrorClassifier(),
		logger:             logger.Nop(),
	}
}

// openTestStorages opens a real SQLite database at path.
func openTestStorages(t *testing.T, path string) *ClientStorages {
	t.Helper()
	s, err := NewClientStorages(testContext(), config.ClientStorage{DB: config.ClientDB{DSN: path}}, logger.Nop())
	require.NoError(t, err)
	return s
}

func newTestStorages(t *testing.T) *ClientStorages {
	t.Helper()
	s := openTestStorages(t, filepath.Join(t.TempDir(), "study.db"))
	t.Cleanup(func() { s.Close() })
	return s
}
