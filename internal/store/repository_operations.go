// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-study-sync/internal/logger"
	"github.com/MKhiriev/go-study-sync/models"
)

const operationsTable = "pending_operations"

var operationColumns = []string{
	"id", "entity", "entity_id", "category", "type",
	"payload", "version", "created_at", "owner_id",
}

// operationRepository is the SQLite-backed [OperationRepository]. The
// autoincrement seq column breaks created_at ties, so operations appended
// within one clock tick still come back in append order.
type operationRepository struct {
	q querier
}

func newOperationRepository(q querier) OperationRepository {
	return &operationRepository{q: q}
}

// Append journals op. A second append with the same id fails with
// [ErrOperationExists]. Delete operations are stored with a NULL payload.
func (r *operationRepository) Append(ctx context.Context, op models.PendingOperation) error {
	log := logger.FromContext(ctx)

	var payload sql.NullString
	if len(op.Payload) > 0 {
		payload = sql.NullString{String: string(op.Payload), Valid: true}
	}

	stmt := sqlBuilder.Insert(operationsTable).
		Columns(operationColumns...).
		Values(
			op.ID,
			string(op.Entity),
			op.EntityID,
			string(op.Category),
			string(op.Type),
			payload,
			op.Version,
			op.CreatedAt.UnixNano(),
			op.OwnerID,
		)

	if _, err := execBuilt(ctx, r.q, stmt); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s", ErrOperationExists, op.ID)
		}
		log.Err(err).
			Str("func", "operationRepository.Append").
			Str("operation_id", op.ID).
			Str("entity", string(op.Entity)).
			Msg("failed to append pending operation")
		return err
	}

	return nil
}

// ListPending returns queued operations in send order, optionally limited to
// categories.
func (r *operationRepository) ListPending(ctx context.Context, categories ...models.Category) ([]models.PendingOperation, error) {
	log := logger.FromContext(ctx)

	query := sqlBuilder.Select(operationColumns...).
		From(operationsTable).
		OrderBy("created_at", "seq")
	if len(categories) > 0 {
		names := make([]string, len(categories))
		for i, c := range categories {
			names[i] = string(c)
		}
		query = query.Where(sq.Eq{"category": names})
	}

	rows, err := queryBuilt(ctx, r.q, query)
	if err != nil {
		log.Err(err).
			Str("func", "operationRepository.ListPending").
			Int("categories", len(categories)).
			Msg("failed to query pending operations")
		return nil, err
	}
	defer rows.Close()

	ops := make([]models.PendingOperation, 0)
	for rows.Next() {
		var (
			op        models.PendingOperation
			entity    string
			category  string
			opType    string
			payload   sql.NullString
			createdAt int64
		)

		scanErr := rows.Scan(
			&op.ID,
			&entity,
			&op.EntityID,
			&category,
			&opType,
			&payload,
			&op.Version,
			&createdAt,
			&op.OwnerID,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "operationRepository.ListPending").
				Msg("failed to scan pending operation row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		op.Entity = models.Entity(entity)
		op.Category = models.Category(category)
		op.Type = models.OperationType(opType)
		if payload.Valid {
			op.Payload = []byte(payload.String)
		}
		op.CreatedAt = time.Unix(0, createdAt).UTC()

		ops = append(ops, op)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "operationRepository.ListPending").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return ops, nil
}

// Purge deletes the operations with the given ids. Ids that are not queued
// are ignored. The ids are deleted in chunks of [bulkChunkSize] on the same
// querier, so a long applied list stays inside one transaction.
func (r *operationRepository) Purge(ctx context.Context, ids ...string) (int64, error) {
	var purged int64

	for start := 0; start < len(ids); start += bulkChunkSize {
		chunk := ids[start:min(start+bulkChunkSize, len(ids))]

		res, err := execBuilt(ctx, r.q, sqlBuilder.Delete(operationsTable).Where(sq.Eq{"id": chunk}))
		if err != nil {
			logger.FromContext(ctx).Err(err).
				Str("func", "operationRepository.Purge").
				Int("ids", len(chunk)).
				Int("purged", int(purged)).
				Msg("failed to purge pending operations")
			return purged, err
		}

		n, err := res.RowsAffected()
		if err != nil {
			return purged, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		purged += n
	}

	return purged, nil
}

// Count returns the number of queued operations.
func (r *operationRepository) Count(ctx context.Context) (int, error) {
	row, err := queryRowBuilt(ctx, r.q, sqlBuilder.Select("COUNT(*)").From(operationsTable))
	if err != nil {
		return 0, err
	}

	var n int
	if err = row.Scan(&n); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "operationRepository.Count").
			Msg("failed to count pending operations")
		return 0, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return n, nil
}
