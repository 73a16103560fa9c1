// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrRecordNotFound is returned when a Local Collection lookup by id
	// matches no row.
	ErrRecordNotFound = errors.New("local record was not found")

	// ErrMetadataNotFound is returned when a metadata key is absent.
	ErrMetadataNotFound = errors.New("metadata key was not found")

	// ErrSessionNotFound is returned when no identity has logged in on this
	// storage instance.
	ErrSessionNotFound = errors.New("local session not found")

	// ErrUnknownEntity is returned when an entity has no Local Collection
	// table.
	ErrUnknownEntity = errors.New("unknown entity")

	// ErrUnknownIndex is returned when a lookup names a column that is not an
	// index column of the entity's table.
	ErrUnknownIndex = errors.New("unknown index column")

	// ErrInvalidPayload is returned when a payload is not a JSON object with a
	// non-empty "id".
	ErrInvalidPayload = errors.New("invalid record payload")

	// ErrOperationExists is returned when a pending operation id is appended
	// twice.
	ErrOperationExists = errors.New("pending operation already exists")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, REPLACE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
