// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-study-sync/models"
)

func testOperation(id string, entity models.Entity, createdAt time.Time) models.PendingOperation {
	category, _ := models.CategoryFor(entity)
	return models.PendingOperation{
		ID:        id,
		Entity:    entity,
		EntityID:  id + "-entity",
		Category:  category,
		Type:      models.OperationUpsert,
		Payload:   json.RawMessage(`{"id":"` + id + `-entity"}`),
		Version:   createdAt.Format(time.RFC3339Nano),
		CreatedAt: createdAt,
		OwnerID:   "u1",
	}
}

func cursorMap(values map[models.Category]string) models.CursorMap {
	var m models.CursorMap
	for c, v := range values {
		m.Set(c, v)
	}
	return m
}

func TestClientStorages_TransactIsAtomic(t *testing.T) {
	ctx := testContext()
	s := newTestStorages(t)

	require.NoError(t, s.Operations().Append(ctx, testOperation("op1", models.EntityCard, time.Now())))
	require.NoError(t, s.Metadata().WriteCursors(ctx, cursorMap(map[models.Category]string{models.CategoryWarm: "w-1"})))

	record, err := RecordFromPayload(models.EntityCard, json.RawMessage(`{"id":"c9","deckId":"d1"}`))
	require.NoError(t, err)

	interrupted := errors.New("interrupted mid-merge")
	err = s.Transact(ctx, func(uow UnitOfWork) error {
		require.NoError(t, uow.Collections().BulkPut(ctx, models.EntityCard, record))
		_, purgeErr := uow.Operations().Purge(ctx, "op1")
		require.NoError(t, purgeErr)
		require.NoError(t, uow.Metadata().WriteCursors(ctx, cursorMap(map[models.Category]string{models.CategoryWarm: "w-2"})))
		return interrupted
	})
	require.ErrorIs(t, err, interrupted)

	size, err := s.Operations().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, size)

	cursors, err := s.Metadata().ReadCursors(ctx)
	require.NoError(t, err)
	warm, _ := cursors.Get(models.CategoryWarm)
	assert.Equal(t, "w-1", warm)

	_, err = s.Collections().Get(ctx, models.EntityCard, "c9")
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestClientStorages_TransactCommits(t *testing.T) {
	ctx := testContext()
	s := newTestStorages(t)

	require.NoError(t, s.Operations().Append(ctx, testOperation("op1", models.EntityProgress, time.Now())))

	err := s.Transact(ctx, func(uow UnitOfWork) error {
		if _, err := uow.Operations().Purge(ctx, "op1"); err != nil {
			return err
		}
		return uow.Metadata().WriteCursors(ctx, cursorMap(map[models.Category]string{models.CategoryHot: "h-1"}))
	})
	require.NoError(t, err)

	size, err := s.Operations().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, size)

	cursors, err := s.Metadata().ReadCursors(ctx)
	require.NoError(t, err)
	hot, ok := cursors.Get(models.CategoryHot)
	assert.True(t, ok)
	assert.Equal(t, "h-1", hot)
}

func TestOperationRepository_FIFOWithinCategory(t *testing.T) {
	ctx := testContext()
	s := newTestStorages(t)

	tick := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	ops := []models.PendingOperation{
		testOperation("b-later", models.EntityCard, tick.Add(time.Second)),
		testOperation("a-first", models.EntityCard, tick),
		testOperation("z-tie", models.EntityCard, tick),
		testOperation("hot-1", models.EntityProgress, tick),
	}
	for _, op := range ops {
		require.NoError(t, s.Operations().Append(ctx, op))
	}

	warm, err := s.Operations().ListPending(ctx, models.CategoryWarm)
	require.NoError(t, err)
	require.Len(t, warm, 3)
	assert.Equal(t, []string{"a-first", "z-tie", "b-later"}, []string{warm[0].ID, warm[1].ID, warm[2].ID})
	for _, op := range warm {
		assert.Equal(t, models.CategoryWarm, op.Category)
	}

	all, err := s.Operations().ListPending(ctx)
	require.NoError(t, err)
	require.Len(t, all, 4)
	for i := 1; i < len(all); i++ {
		assert.False(t, all[i].CreatedAt.Before(all[i-1].CreatedAt))
	}
}

func TestOperationRepository_AppendDuplicate(t *testing.T) {
	ctx := testContext()
	s := newTestStorages(t)

	op := testOperation("op1", models.EntityDeck, time.Now())
	require.NoError(t, s.Operations().Append(ctx, op))
	assert.ErrorIs(t, s.Operations().Append(ctx, op), ErrOperationExists)
}

func TestOperationRepository_DeletePayloadIsNull(t *testing.T) {
	ctx := testContext()
	s := newTestStorages(t)

	op := testOperation("op1", models.EntityDeck, time.Now())
	op.Type = models.OperationDelete
	op.Payload = nil
	require.NoError(t, s.Operations().Append(ctx, op))

	ops, err := s.Operations().ListPending(ctx)
	require.NoError(t, err)
	require.Len(t, ops, 1)
	assert.Nil(t, ops[0].Payload)
	assert.Equal(t, "u1", ops[0].OwnerID)
}

func TestOperationRepository_PurgeIsIdempotent(t *testing.T) {
	ctx := testContext()
	s := newTestStorages(t)

	require.NoError(t, s.Operations().Append(ctx, testOperation("op1", models.EntityDeck, time.Now())))

	n, err := s.Operations().Purge(ctx, "op1", "never-existed")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = s.Operations().Purge(ctx, "op1")
	require.NoError(t, err)
	assert.Zero(t, n)
}

// sqliteMaxVariables is the default SQLITE_MAX_VARIABLE_NUMBER; a single
// IN list longer than this fails to prepare.
const sqliteMaxVariables = 32766

func TestOperationRepository_PurgeBeyondVariableLimit(t *testing.T) {
	ctx := testContext()
	s := newTestStorages(t)

	total := sqliteMaxVariables + 500
	ids := make([]string, 0, total)
	tick := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, s.Transact(ctx, func(uow UnitOfWork) error {
		for i := range total {
			id := "op" + strconv.Itoa(i)
			ids = append(ids, id)
			if err := uow.Operations().Append(ctx, testOperation(id, models.EntityProgress, tick)); err != nil {
				return err
			}
		}
		return nil
	}))

	var purged int64
	require.NoError(t, s.Transact(ctx, func(uow UnitOfWork) error {
		var err error
		purged, err = uow.Operations().Purge(ctx, ids...)
		return err
	}))
	assert.Equal(t, int64(total), purged)

	n, err := s.Operations().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestMetadataRepository_WriteCursorsMerges(t *testing.T) {
	ctx := testContext()
	s := newTestStorages(t)
	meta := s.Metadata()

	require.NoError(t, meta.WriteCursors(ctx, cursorMap(map[models.Category]string{models.CategoryHot: "h-1"})))
	require.NoError(t, meta.WriteCursors(ctx, cursorMap(map[models.Category]string{models.CategoryWarm: "w-1"})))
	require.NoError(t, meta.WriteCursors(ctx, cursorMap(map[models.Category]string{models.CategoryHot: "h-2"})))
	require.NoError(t, meta.WriteCursors(ctx, models.CursorMap{}))

	cursors, err := meta.ReadCursors(ctx)
	require.NoError(t, err)

	hot, _ := cursors.Get(models.CategoryHot)
	warm, _ := cursors.Get(models.CategoryWarm)
	assert.Equal(t, "h-2", hot)
	assert.Equal(t, "w-1", warm)
	assert.Nil(t, cursors.Cold)
}

func TestMetadataRepository_DeviceIDSurvivesReopen(t *testing.T) {
	ctx := testContext()
	path := filepath.Join(t.TempDir(), "study.db")

	s := openTestStorages(t, path)
	first, err := s.Metadata().EnsureDeviceID(ctx, "device-a")
	require.NoError(t, err)
	second, err := s.Metadata().EnsureDeviceID(ctx, "device-b")
	require.NoError(t, err)
	require.NoError(t, s.Close())

	assert.Equal(t, "device-a", first)
	assert.Equal(t, first, second)

	reopened := openTestStorages(t, path)
	t.Cleanup(func() { reopened.Close() })

	id, err := reopened.Metadata().DeviceID(ctx)
	require.NoError(t, err)
	assert.Equal(t, "device-a", id)
}

func TestMetadataRepository_Session(t *testing.T) {
	ctx := testContext()
	s := newTestStorages(t)
	meta := s.Metadata()

	_, err := meta.LoadSession(ctx)
	require.ErrorIs(t, err, ErrSessionNotFound)

	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	require.NoError(t, meta.SaveSession(ctx, models.Session{UserID: "u1", Token: "t", At: at}))

	session, err := meta.LoadSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, "u1", session.UserID)
	assert.Equal(t, "t", session.Token)
	assert.True(t, at.Equal(session.At))

	require.NoError(t, meta.ClearSession(ctx))
	_, err = meta.LoadSession(ctx)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestMetadataRepository_LastSyncAt(t *testing.T) {
	ctx := testContext()
	s := newTestStorages(t)

	at, err := s.Metadata().LastSyncAt(ctx)
	require.NoError(t, err)
	assert.True(t, at.IsZero())

	now := time.Now()
	require.NoError(t, s.Metadata().SetLastSyncAt(ctx, now))

	at, err = s.Metadata().LastSyncAt(ctx)
	require.NoError(t, err)
	assert.True(t, now.Equal(at))
}

func TestCollectionRepository_RemotePayloadWins(t *testing.T) {
	ctx := testContext()
	s := newTestStorages(t)

	local, err := RecordFromPayload(models.EntityCard, json.RawMessage(`{"id":"c1","deckId":"d1","front":"local"}`))
	require.NoError(t, err)
	remote, err := RecordFromPayload(models.EntityCard, json.RawMessage(`{"id":"c1","deckId":"d2","front":"remote"}`))
	require.NoError(t, err)

	require.NoError(t, s.Collections().BulkPut(ctx, models.EntityCard, local))
	require.NoError(t, s.Collections().BulkPut(ctx, models.EntityCard, remote))

	got, err := s.Collections().Get(ctx, models.EntityCard, "c1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"c1","deckId":"d2","front":"remote"}`, string(got.Payload))
	assert.Equal(t, "d2", got.Keys["deck_id"])

	byDeck, err := s.Collections().List(ctx, models.EntityCard, map[string]string{"deck_id": "d1"})
	require.NoError(t, err)
	assert.Empty(t, byDeck)

	require.NoError(t, s.Collections().BulkDelete(ctx, models.EntityCard, "c1", "missing"))
	n, err := s.Collections().Count(ctx, models.EntityCard)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestCollectionRepository_BulkPutManyRecords(t *testing.T) {
	ctx := testContext()
	s := newTestStorages(t)

	records := make([]models.LocalRecord, 0, 450)
	for i := range 450 {
		records = append(records, models.LocalRecord{
			ID:        "p" + strconv.Itoa(i),
			Keys:      map[string]string{"card_id": "c"},
			Payload:   json.RawMessage(`{}`),
			UpdatedAt: time.Now(),
		})
	}
	require.NoError(t, s.Collections().BulkPut(ctx, models.EntityProgress, records...))

	n, err := s.Collections().Count(ctx, models.EntityProgress)
	require.NoError(t, err)
	assert.Equal(t, 450, n)
}

func TestCollectionRepository_BulkDeleteBeyondVariableLimit(t *testing.T) {
	ctx := testContext()
	s := newTestStorages(t)

	total := sqliteMaxVariables + 500
	ids := make([]string, 0, total)
	records := make([]models.LocalRecord, 0, total)
	for i := range total {
		id := "p" + strconv.Itoa(i)
		ids = append(ids, id)
		records = append(records, models.LocalRecord{
			ID:        id,
			Keys:      map[string]string{"card_id": "c"},
			Payload:   json.RawMessage(`{}`),
			UpdatedAt: time.Now(),
		})
	}
	require.NoError(t, s.Collections().BulkPut(ctx, models.EntityProgress, records...))

	require.NoError(t, s.Collections().BulkDelete(ctx, models.EntityProgress, ids...))

	n, err := s.Collections().Count(ctx, models.EntityProgress)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestClientStorages_Reset(t *testing.T) {
	ctx := testContext()
	s := newTestStorages(t)

	_, err := s.Metadata().EnsureDeviceID(ctx, "device-a")
	require.NoError(t, err)
	require.NoError(t, s.Operations().Append(ctx, testOperation("op1", models.EntityDeck, time.Now())))
	require.NoError(t, s.Collections().BulkPut(ctx, models.EntityDeck, models.LocalRecord{ID: "d1", Payload: json.RawMessage(`{"id":"d1"}`)}))

	require.NoError(t, s.Reset(ctx))

	size, err := s.Operations().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, size)

	decks, err := s.Collections().Count(ctx, models.EntityDeck)
	require.NoError(t, err)
	assert.Zero(t, decks)

	_, err = s.Metadata().DeviceID(ctx)
	assert.ErrorIs(t, err, ErrMetadataNotFound)

	id, err := s.Metadata().EnsureDeviceID(ctx, "device-b")
	require.NoError(t, err)
	assert.Equal(t, "device-b", id)
}
