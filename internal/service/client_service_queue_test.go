// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/MKhiriev/go-study-sync/internal/store"
	"github.com/MKhiriev/go-study-sync/models"
)

func TestPendingQueue_Enqueue_DerivesCategoryFromEntity(t *testing.T) {
	tests := []struct {
		entity models.Entity
		want   models.Category
	}{
		{models.EntityDeck, models.CategoryCold},
		{models.EntityTemplate, models.CategoryCold},
		{models.EntityStyle, models.CategoryCold},
		{models.EntityField, models.CategoryCold},
		{models.EntityFieldPreference, models.CategoryCold},
		{models.EntityUserPreference, models.CategoryCold},
		{models.EntityCard, models.CategoryWarm},
		{models.EntityProgress, models.CategoryHot},
	}

	e := newTestEngine(t)
	loginAs(t, e.sessions, "user-a")
	ctx := context.Background()

	for _, tt := range tests {
		t.Run(string(tt.entity), func(t *testing.T) {
			op, err := e.queue.Enqueue(ctx, models.PendingOperationDraft{
				Entity:   tt.entity,
				EntityID: "id-" + string(tt.entity),
				Type:     models.OperationUpsert,
				Payload:  json.RawMessage(`{"name":"x"}`),
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, op.Category)

			stored, err := e.queue.ListPending(ctx, tt.want)
			require.NoError(t, err)
			require.NotEmpty(t, stored)
			assert.Equal(t, op.ID, stored[len(stored)-1].ID)
		})
	}
}

func TestPendingQueue_Enqueue_StampsPayload(t *testing.T) {
	e := newTestEngine(t)
	loginAs(t, e.sessions, "user-a")
	ctx := context.Background()

	op, err := e.queue.Enqueue(ctx, models.PendingOperationDraft{
		Entity:   models.EntityCard,
		EntityID: "card-1",
		Type:     models.OperationUpsert,
		Payload:  json.RawMessage(`{"deckId":"deck-1","fields":{"front":"hola"}}`),
	})
	require.NoError(t, err)

	assert.Equal(t, "op-1", op.ID)
	assert.Equal(t, "user-a", op.OwnerID)
	assert.False(t, op.CreatedAt.IsZero())

	payload := gjson.ParseBytes(op.Payload)
	assert.Equal(t, "card-1", payload.Get("id").String())
	assert.Equal(t, "user-a", payload.Get("ownerId").String())
	assert.Equal(t, "deck-1", payload.Get("deckId").String())
	assert.Equal(t, payload.Get("lastModifiedAt").String(), op.Version, "version defaults to lastModifiedAt")

	record, err := e.store.Collections().Get(ctx, models.EntityCard, "card-1")
	require.NoError(t, err)
	assert.Equal(t, "deck-1", record.Keys["deck_id"])
	assert.JSONEq(t, string(op.Payload), string(record.Payload), "optimistic write mirrors the queued payload")
}

func TestPendingQueue_Enqueue_KeepsExplicitVersion(t *testing.T) {
	e := newTestEngine(t)
	loginAs(t, e.sessions, "user-a")

	op, err := e.queue.Enqueue(context.Background(), models.PendingOperationDraft{
		Entity:   models.EntityDeck,
		EntityID: "deck-1",
		Type:     models.OperationUpsert,
		Payload:  json.RawMessage(`{"name":"Spanish","lastModifiedAt":"2026-01-02T03:04:05Z"}`),
		Version:  "v7",
	})
	require.NoError(t, err)
	assert.Equal(t, "v7", op.Version)
	assert.Equal(t, "2026-01-02T03:04:05Z", gjson.GetBytes(op.Payload, "lastModifiedAt").String())
}

func TestPendingQueue_ListPending_FIFO(t *testing.T) {
	e := newTestEngine(t)
	loginAs(t, e.sessions, "user-a")
	ctx := context.Background()

	var want []string
	for _, id := range []string{"p-1", "p-2", "p-3", "p-4"} {
		op, err := e.mutate.EnqueueProgressUpsert(ctx, models.Progress{ID: id, CardID: "card-1"})
		require.NoError(t, err)
		want = append(want, op.ID)
	}

	ops, err := e.queue.ListPending(ctx)
	require.NoError(t, err)
	require.Len(t, ops, len(want))

	got := make([]string, 0, len(ops))
	for i, op := range ops {
		got = append(got, op.ID)
		if i > 0 {
			assert.False(t, op.CreatedAt.Before(ops[i-1].CreatedAt), "createdAt must not decrease")
		}
	}
	assert.Equal(t, want, got)
}

func TestPendingQueue_Enqueue_NotAuthenticated(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()

	_, err := e.mutate.EnqueueDeckUpsert(ctx, models.Deck{ID: "deck-1", Name: "Spanish"})
	assert.ErrorIs(t, err, ErrNotAuthenticated)

	size, err := e.queue.Size(ctx)
	require.NoError(t, err)
	assert.Zero(t, size)

	_, err = e.store.Collections().Get(ctx, models.EntityDeck, "deck-1")
	assert.ErrorIs(t, err, store.ErrRecordNotFound, "nothing is written before the guard passes")
}

func TestPendingQueue_Enqueue_InvalidDraft(t *testing.T) {
	tests := []struct {
		name  string
		draft models.PendingOperationDraft
	}{
		{
			name:  "unknown entity",
			draft: models.PendingOperationDraft{Entity: "note", EntityID: "n-1", Type: models.OperationUpsert, Payload: json.RawMessage(`{}`)},
		},
		{
			name:  "missing entity id",
			draft: models.PendingOperationDraft{Entity: models.EntityDeck, Type: models.OperationUpsert, Payload: json.RawMessage(`{}`)},
		},
		{
			name:  "upsert without payload",
			draft: models.PendingOperationDraft{Entity: models.EntityDeck, EntityID: "deck-1", Type: models.OperationUpsert},
		},
		{
			name:  "payload id differs",
			draft: models.PendingOperationDraft{Entity: models.EntityDeck, EntityID: "deck-1", Type: models.OperationUpsert, Payload: json.RawMessage(`{"id":"deck-2"}`)},
		},
		{
			name:  "unknown type",
			draft: models.PendingOperationDraft{Entity: models.EntityDeck, EntityID: "deck-1", Type: "PATCH", Payload: json.RawMessage(`{}`)},
		},
	}

	e := newTestEngine(t)
	loginAs(t, e.sessions, "user-a")
	ctx := context.Background()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.queue.Enqueue(ctx, tt.draft)
			assert.ErrorIs(t, err, ErrInvalidDraft)
		})
	}

	size, err := e.queue.Size(ctx)
	require.NoError(t, err)
	assert.Zero(t, size)
}

func TestPendingQueue_Enqueue_Delete(t *testing.T) {
	e := newTestEngine(t)
	loginAs(t, e.sessions, "user-a")
	ctx := context.Background()

	_, err := e.mutate.EnqueueDeckUpsert(ctx, models.Deck{ID: "deck-1", Name: "Spanish"})
	require.NoError(t, err)

	op, err := e.mutate.EnqueueDeckDelete(ctx, "deck-1")
	require.NoError(t, err)
	assert.Equal(t, models.OperationDelete, op.Type)
	assert.Equal(t, models.CategoryCold, op.Category)
	assert.Nil(t, op.Payload)
	assert.NotEmpty(t, op.Version)

	_, err = e.store.Collections().Get(ctx, models.EntityDeck, "deck-1")
	assert.ErrorIs(t, err, store.ErrRecordNotFound)

	size, err := e.queue.Size(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, size)
}

func TestPendingQueue_Enqueue_DeleteOfForeignRecord(t *testing.T) {
	e := newTestEngine(t)
	loginAs(t, e.sessions, "user-a")
	ctx := context.Background()

	_, err := e.mutate.EnqueueDeckUpsert(ctx, models.Deck{ID: "deck-1", Name: "Spanish"})
	require.NoError(t, err)

	loginAs(t, e.sessions, "user-b")

	_, err = e.mutate.EnqueueDeckDelete(ctx, "deck-1")
	assert.ErrorIs(t, err, ErrOwnershipMismatch)

	_, err = e.store.Collections().Get(ctx, models.EntityDeck, "deck-1")
	assert.NoError(t, err, "the record of user-a stays in place")
}

// Two decks queued by one identity; after switching to another identity an
// enqueue for a record of the first one is refused and the queue is intact.
func TestPendingQueue_Enqueue_OwnershipSwitch(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()

	loginAs(t, e.sessions, "user-a")
	for _, id := range []string{"deck-1", "deck-2"} {
		_, err := e.mutate.EnqueueDeckUpsert(ctx, models.Deck{ID: id, OwnerID: "user-a", Name: id})
		require.NoError(t, err)
	}

	before, err := e.queue.Size(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, before)

	loginAs(t, e.sessions, "user-b")

	_, err = e.mutate.EnqueueCardUpsert(ctx, models.Card{ID: "card-1", OwnerID: "user-a", DeckID: "deck-1"})
	require.ErrorIs(t, err, ErrOwnershipMismatch)

	after, err := e.queue.Size(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)

	_, err = e.store.Collections().Get(ctx, models.EntityCard, "card-1")
	assert.ErrorIs(t, err, store.ErrRecordNotFound)
}

func TestPendingQueue_Purge_Idempotent(t *testing.T) {
	e := newTestEngine(t)
	loginAs(t, e.sessions, "user-a")
	ctx := context.Background()

	op, err := e.mutate.EnqueueStyleUpsert(ctx, models.Style{ID: "style-1", Name: "dark"})
	require.NoError(t, err)

	require.NoError(t, e.queue.Purge(ctx, op.ID))
	require.NoError(t, e.queue.Purge(ctx, op.ID, "never-existed"))
	require.NoError(t, e.queue.Purge(ctx))

	size, err := e.queue.Size(ctx)
	require.NoError(t, err)
	assert.Zero(t, size)
}
