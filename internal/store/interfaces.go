// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-study-sync/models"
)

// CollectionRepository is the Local Collection Store: one table per entity
// kind holding the authoritative local snapshot.
type CollectionRepository interface {
	// BulkPut inserts or replaces records. The last record wins when the same
	// id appears twice.
	BulkPut(ctx context.Context, entity models.Entity, records ...models.LocalRecord) error
	// BulkDelete removes records by id. Missing ids are ignored.
	BulkDelete(ctx context.Context, entity models.Entity, ids ...string) error
	// Get returns one record or [ErrRecordNotFound].
	Get(ctx context.Context, entity models.Entity, id string) (models.LocalRecord, error)
	// List returns the records whose index columns equal every value in
	// filter, ordered by id.
	List(ctx context.Context, entity models.Entity, filter map[string]string) ([]models.LocalRecord, error)
	// Count returns the number of records of entity.
	Count(ctx context.Context, entity models.Entity) (int, error)
}

// OperationRepository is the Pending Operation Queue journal.
type OperationRepository interface {
	// Append persists op. A duplicate id yields [ErrOperationExists].
	Append(ctx context.Context, op models.PendingOperation) error
	// ListPending returns operations in ascending createdAt order, optionally
	// restricted to categories.
	ListPending(ctx context.Context, categories ...models.Category) ([]models.PendingOperation, error)
	// Purge removes operations by id and reports how many existed. Unknown
	// ids are not an error.
	Purge(ctx context.Context, ids ...string) (int64, error)
	// Count returns the queue size.
	Count(ctx context.Context) (int, error)
}

// MetadataRepository is the key/value metadata table holding cursors, the
// device identity, the session and the last sync time.
type MetadataRepository interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	ListPrefix(ctx context.Context, prefix string) (map[string]string, error)

	// ReadCursors returns every stored category cursor.
	ReadCursors(ctx context.Context) (models.CursorMap, error)
	// WriteCursors stores only the categories present in partial.
	WriteCursors(ctx context.Context, partial models.CursorMap) error

	// EnsureDeviceID stores candidate as the device id unless one exists and
	// returns the stored value.
	EnsureDeviceID(ctx context.Context, candidate string) (string, error)
	// DeviceID returns the stored device id or [ErrMetadataNotFound].
	DeviceID(ctx context.Context) (string, error)

	LastSyncAt(ctx context.Context) (time.Time, error)
	SetLastSyncAt(ctx context.Context, at time.Time) error

	LoadSession(ctx context.Context) (models.Session, error)
	SaveSession(ctx context.Context, session models.Session) error
	ClearSession(ctx context.Context) error
}

// UnitOfWork exposes the repositories bound to one querier. Inside
// [LocalStore.Transact] every repository shares the transaction.
type UnitOfWork interface {
	Collections() CollectionRepository
	Operations() OperationRepository
	Metadata() MetadataRepository
}

// LocalStore is the transactional multi-table local storage surface.
type LocalStore interface {
	UnitOfWork

	// Transact runs fn in a single atomic transaction spanning all tables.
	// fn must only use the UnitOfWork it receives.
	Transact(ctx context.Context, fn func(uow UnitOfWork) error) error
	// Reset wipes every table. The device id is regenerated on next use.
	Reset(ctx context.Context) error
	Close() error
}
