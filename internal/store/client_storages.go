// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/go-study-sync/internal/config"
	"github.com/MKhiriev/go-study-sync/internal/logger"
	"github.com/MKhiriev/go-study-sync/models"
)

// Transactions that hit a locked database are retried this many times with
// exponential backoff starting at transactRetryBase.
const (
	transactMaxRetries = 3
	transactRetryBase  = 20 * time.Millisecond
)

// unitOfWork binds every repository to one querier.
type unitOfWork struct {
	collections CollectionRepository
	operations  OperationRepository
	metadata    MetadataRepository
}

// newUnitOfWork binds fresh repositories to q, which is either the pool or
// an open transaction.
func newUnitOfWork(q querier) *unitOfWork {
	return &unitOfWork{
		collections: newCollectionRepository(q),
		operations:  newOperationRepository(q),
		metadata:    newMetadataRepository(q),
	}
}

// Repository accessors implementing UnitOfWork.
func (u *unitOfWork) Collections() CollectionRepository { return u.collections }
func (u *unitOfWork) Operations() OperationRepository   { return u.operations }
func (u *unitOfWork) Metadata() MetadataRepository      { return u.metadata }

// ClientStorages is the SQLite implementation of [LocalStore]. Outside of
// [ClientStorages.Transact] every repository call runs in its own implicit
// transaction on the pool.
type ClientStorages struct {
	*unitOfWork

	db *DB
}

var _ LocalStore = (*ClientStorages)(nil)

// NewClientStorages opens the local database described by cfg and applies
// pending schema migrations.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) (*ClientStorages, error) {
	log.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return newClientStorages(db), nil
}

func newClientStorages(db *DB) *ClientStorages {
	return &ClientStorages{
		unitOfWork: newUnitOfWork(db.DB),
		db:         db,
	}
}

// Transact runs fn inside one SQLite transaction. fn may run more than once
// when the database is locked by another process, so it must not have side
// effects outside of uow.
func (s *ClientStorages) Transact(ctx context.Context, fn func(uow UnitOfWork) error) error {
	backoff := retry.WithMaxRetries(transactMaxRetries, retry.NewExponential(transactRetryBase))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := s.db.withTx(ctx, func(tx *sql.Tx) error {
			return fn(newUnitOfWork(tx))
		})
		if err != nil && s.db.errorClassificator.Classify(err) == Retryable {
			logger.FromContext(ctx).Warn().Err(err).
				Str("func", "ClientStorages.Transact").
				Msg("database is locked, retrying transaction")
			return retry.RetryableError(err)
		}
		return err
	})
}

// Reset deletes every row of every table, leaving the schema in place.
func (s *ClientStorages) Reset(ctx context.Context) error {
	tables := make([]string, 0, len(collectionTables)+2)
	for _, entity := range models.Entities {
		tables = append(tables, collectionTables[entity].name)
	}
	tables = append(tables, operationsTable, metadataTable)

	err := s.db.withTx(ctx, func(tx *sql.Tx) error {
		for _, table := range tables {
			if _, err := execBuilt(ctx, tx, sqlBuilder.Delete(table)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "ClientStorages.Reset").
			Msg("failed to reset local storage")
		return err
	}

	logger.FromContext(ctx).Info().Str("func", "ClientStorages.Reset").Msg("local storage wiped")
	return nil
}

// Close releases the database connection.
func (s *ClientStorages) Close() error {
	return s.db.Close()
}
