// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-study-sync/internal/logger"
	"github.com/MKhiriev/go-study-sync/models"
)

// collectionRepository is the SQLite-backed [CollectionRepository].
type collectionRepository struct {
	q querier
}

func newCollectionRepository(q querier) CollectionRepository {
	return &collectionRepository{q: q}
}

// bulkChunkSize keeps multi-row statements below SQLite's bound parameter
// limit.
const bulkChunkSize = 200

// BulkPut writes records with multi-row REPLACE statements, so the remote
// payload fully replaces whatever the local row held.
func (r *collectionRepository) BulkPut(ctx context.Context, entity models.Entity, records ...models.LocalRecord) error {
	log := logger.FromContext(ctx)

	if len(records) == 0 {
		return nil
	}

	table, err := tableFor(entity)
	if err != nil {
		return err
	}

	for start := 0; start < len(records); start += bulkChunkSize {
		chunk := records[start:min(start+bulkChunkSize, len(records))]

		stmt := sqlBuilder.Replace(table.name).Columns(table.columns()...)
		for _, record := range chunk {
			stmt = stmt.Values(table.values(record)...)
		}

		if _, err = execBuilt(ctx, r.q, stmt); err != nil {
			log.Err(err).
				Str("func", "collectionRepository.BulkPut").
				Str("entity", string(entity)).
				Int("records", len(chunk)).
				Msg("failed to put records")
			return err
		}
	}

	return nil
}

// BulkDelete removes records by id in chunks of [bulkChunkSize]. Unknown ids
// are ignored.
func (r *collectionRepository) BulkDelete(ctx context.Context, entity models.Entity, ids ...string) error {
	log := logger.FromContext(ctx)

	if len(ids) == 0 {
		return nil
	}

	table, err := tableFor(entity)
	if err != nil {
		return err
	}

	for start := 0; start < len(ids); start += bulkChunkSize {
		chunk := ids[start:min(start+bulkChunkSize, len(ids))]

		if _, err = execBuilt(ctx, r.q, sqlBuilder.Delete(table.name).Where(sq.Eq{"id": chunk})); err != nil {
			log.Err(err).
				Str("func", "collectionRepository.BulkDelete").
				Str("entity", string(entity)).
				Int("ids", len(chunk)).
				Msg("failed to delete records")
			return err
		}
	}

	return nil
}

// Get returns one record, or [ErrRecordNotFound].
func (r *collectionRepository) Get(ctx context.Context, entity models.Entity, id string) (models.LocalRecord, error) {
	log := logger.FromContext(ctx)

	table, err := tableFor(entity)
	if err != nil {
		return models.LocalRecord{}, err
	}

	row, err := queryRowBuilt(ctx, r.q, sqlBuilder.Select(table.columns()...).From(table.name).Where(sq.Eq{"id": id}))
	if err != nil {
		return models.LocalRecord{}, err
	}

	record, err := scanRecord(table, row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.LocalRecord{}, fmt.Errorf("%w: %s %s", ErrRecordNotFound, entity, id)
	}
	if err != nil {
		log.Err(err).
			Str("func", "collectionRepository.Get").
			Str("entity", string(entity)).
			Str("id", id).
			Msg("failed to scan record row")
		return models.LocalRecord{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return record, nil
}

// List returns the records whose index columns equal every value in filter.
// Filtering on a column that is not indexed for entity is an error.
func (r *collectionRepository) List(ctx context.Context, entity models.Entity, filter map[string]string) ([]models.LocalRecord, error) {
	log := logger.FromContext(ctx)

	table, err := tableFor(entity)
	if err != nil {
		return nil, err
	}

	query := sqlBuilder.Select(table.columns()...).From(table.name).OrderBy("id")
	if len(filter) > 0 {
		// stable column order keeps the rendered SQL deterministic
		columns := make([]string, 0, len(filter))
		for column := range filter {
			if !table.hasIndex(column) {
				return nil, fmt.Errorf("%w: %s.%s", ErrUnknownIndex, table.name, column)
			}
			columns = append(columns, column)
		}
		sort.Strings(columns)

		where := sq.And{}
		for _, column := range columns {
			where = append(where, sq.Eq{column: filter[column]})
		}
		query = query.Where(where)
	}

	rows, err := queryBuilt(ctx, r.q, query)
	if err != nil {
		log.Err(err).
			Str("func", "collectionRepository.List").
			Str("entity", string(entity)).
			Msg("failed to query records")
		return nil, err
	}
	defer rows.Close()

	records := make([]models.LocalRecord, 0)
	for rows.Next() {
		record, scanErr := scanRecord(table, rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "collectionRepository.List").
				Str("entity", string(entity)).
				Msg("failed to scan record row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		records = append(records, record)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "collectionRepository.List").
			Str("entity", string(entity)).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return records, nil
}

// Count returns the number of stored records of entity.
func (r *collectionRepository) Count(ctx context.Context, entity models.Entity) (int, error) {
	table, err := tableFor(entity)
	if err != nil {
		return 0, err
	}

	row, err := queryRowBuilt(ctx, r.q, sqlBuilder.Select("COUNT(*)").From(table.name))
	if err != nil {
		return 0, err
	}

	var n int
	if err = row.Scan(&n); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "collectionRepository.Count").
			Str("entity", string(entity)).
			Msg("failed to count records")
		return 0, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return n, nil
}

// rowScanner is satisfied by both [*sql.Row] and [*sql.Rows].
type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(table collectionTable, row rowScanner) (models.LocalRecord, error) {
	var (
		record    models.LocalRecord
		payload   string
		updatedAt int64
	)

	keyValues := make([]string, len(table.indexes))
	dest := make([]any, 0, len(table.indexes)+3)
	dest = append(dest, &record.ID)
	for i := range keyValues {
		dest = append(dest, &keyValues[i])
	}
	dest = append(dest, &payload, &updatedAt)

	if err := row.Scan(dest...); err != nil {
		return models.LocalRecord{}, err
	}

	record.Keys = make(map[string]string, len(table.indexes))
	for i, idx := range table.indexes {
		record.Keys[idx.column] = keyValues[i]
	}
	record.Payload = []byte(payload)
	record.UpdatedAt = time.Unix(0, updatedAt).UTC()

	return record, nil
}
