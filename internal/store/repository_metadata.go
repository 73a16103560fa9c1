// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-study-sync/internal/logger"
	"github.com/MKhiriev/go-study-sync/models"
)

const metadataTable = "metadata"

// Well-known metadata keys.
const (
	DeviceIDKey     = "device-id"
	CursorKeyPrefix = "cursor:"
	LastSyncAtKey   = "last-sync-at"
	SessionKey      = "session"
)

// CursorKey returns the metadata key of the cursor of c.
func CursorKey(c models.Category) string {
	return CursorKeyPrefix + string(c)
}

// metadataRepository is the SQLite-backed [MetadataRepository].
type metadataRepository struct {
	q querier
}

func newMetadataRepository(q querier) MetadataRepository {
	return &metadataRepository{q: q}
}

// Get returns the value stored under key, or [ErrMetadataNotFound].
func (r *metadataRepository) Get(ctx context.Context, key string) (string, error) {
	row, err := queryRowBuilt(ctx, r.q, sqlBuilder.Select("value").From(metadataTable).Where(sq.Eq{"key": key}))
	if err != nil {
		return "", err
	}

	var value string
	err = row.Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("%w: %s", ErrMetadataNotFound, key)
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "metadataRepository.Get").
			Str("key", key).
			Msg("failed to read metadata")
		return "", fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return value, nil
}

// Put stores value under key, replacing any previous value.
func (r *metadataRepository) Put(ctx context.Context, key, value string) error {
	stmt := sqlBuilder.Replace(metadataTable).Columns("key", "value").Values(key, value)
	if _, err := execBuilt(ctx, r.q, stmt); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "metadataRepository.Put").
			Str("key", key).
			Msg("failed to write metadata")
		return err
	}
	return nil
}

// Delete removes key. A missing key is not an error.
func (r *metadataRepository) Delete(ctx context.Context, key string) error {
	if _, err := execBuilt(ctx, r.q, sqlBuilder.Delete(metadataTable).Where(sq.Eq{"key": key})); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "metadataRepository.Delete").
			Str("key", key).
			Msg("failed to delete metadata")
		return err
	}
	return nil
}

// ListPrefix returns every key starting with prefix. prefix must not contain
// LIKE wildcards.
func (r *metadataRepository) ListPrefix(ctx context.Context, prefix string) (map[string]string, error) {
	log := logger.FromContext(ctx)

	query := sqlBuilder.Select("key", "value").
		From(metadataTable).
		Where(sq.Like{"key": prefix + "%"}).
		OrderBy("key")

	rows, err := queryBuilt(ctx, r.q, query)
	if err != nil {
		log.Err(err).
			Str("func", "metadataRepository.ListPrefix").
			Str("prefix", prefix).
			Msg("failed to query metadata")
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]string)
	for rows.Next() {
		var key, value string
		if scanErr := rows.Scan(&key, &value); scanErr != nil {
			log.Err(scanErr).
				Str("func", "metadataRepository.ListPrefix").
				Msg("failed to scan metadata row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		// LIKE is case-insensitive for ASCII in SQLite
		if strings.HasPrefix(key, prefix) {
			out[key] = value
		}
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return out, nil
}

// ReadCursors collects every stored cursor. Keys naming an unknown category
// are skipped.
func (r *metadataRepository) ReadCursors(ctx context.Context) (models.CursorMap, error) {
	entries, err := r.ListPrefix(ctx, CursorKeyPrefix)
	if err != nil {
		return models.CursorMap{}, err
	}

	var cursors models.CursorMap
	for key, value := range entries {
		category := models.Category(strings.TrimPrefix(key, CursorKeyPrefix))
		if category.Valid() {
			cursors.Set(category, value)
		}
	}
	return cursors, nil
}

// WriteCursors does not compare against stored values. Monotonicity is the
// caller's discipline.
func (r *metadataRepository) WriteCursors(ctx context.Context, partial models.CursorMap) error {
	for category, value := range partial.Entries() {
		if err := r.Put(ctx, CursorKey(category), value); err != nil {
			return err
		}
	}
	return nil
}

// EnsureDeviceID relies on INSERT OR IGNORE so concurrent first calls still
// create exactly one identity.
func (r *metadataRepository) EnsureDeviceID(ctx context.Context, candidate string) (string, error) {
	stmt := sqlBuilder.Insert(metadataTable).
		Options("OR IGNORE").
		Columns("key", "value").
		Values(DeviceIDKey, candidate)

	if _, err := execBuilt(ctx, r.q, stmt); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "metadataRepository.EnsureDeviceID").
			Msg("failed to create device id")
		return "", err
	}

	return r.Get(ctx, DeviceIDKey)
}

// DeviceID returns the persisted device id, or [ErrMetadataNotFound] before
// the first pass.
func (r *metadataRepository) DeviceID(ctx context.Context) (string, error) {
	return r.Get(ctx, DeviceIDKey)
}

// LastSyncAt returns the zero time when no pass has succeeded yet.
func (r *metadataRepository) LastSyncAt(ctx context.Context) (time.Time, error) {
	value, err := r.Get(ctx, LastSyncAtKey)
	if errors.Is(err, ErrMetadataNotFound) {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, err
	}

	nanos, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return time.Unix(0, nanos).UTC(), nil
}

// SetLastSyncAt stores at with nanosecond precision.
func (r *metadataRepository) SetLastSyncAt(ctx context.Context, at time.Time) error {
	return r.Put(ctx, LastSyncAtKey, strconv.FormatInt(at.UnixNano(), 10))
}

// LoadSession returns the persisted session. A missing session and one
// without a user id are both reported as [ErrSessionNotFound].
func (r *metadataRepository) LoadSession(ctx context.Context) (models.Session, error) {
	value, err := r.Get(ctx, SessionKey)
	if errors.Is(err, ErrMetadataNotFound) {
		return models.Session{}, ErrSessionNotFound
	}
	if err != nil {
		return models.Session{}, err
	}

	var session models.Session
	if err = json.Unmarshal([]byte(value), &session); err != nil {
		return models.Session{}, fmt.Errorf("decode local session: %w", err)
	}
	if session.UserID == "" {
		return models.Session{}, ErrSessionNotFound
	}

	return session, nil
}

// SaveSession stores session as JSON under [SessionKey].
func (r *metadataRepository) SaveSession(ctx context.Context, session models.Session) error {
	value, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode local session: %w", err)
	}
	return r.Put(ctx, SessionKey, string(value))
}

// ClearSession forgets the session. Cursors and the device id stay.
func (r *metadataRepository) ClearSession(ctx context.Context) error {
	return r.Delete(ctx, SessionKey)
}
