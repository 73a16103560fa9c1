// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/MKhiriev/go-study-sync/internal/logger"
	"github.com/MKhiriev/go-study-sync/internal/store"
	"github.com/MKhiriev/go-study-sync/internal/utils"
	"github.com/MKhiriev/go-study-sync/internal/validators"
	"github.com/MKhiriev/go-study-sync/models"
)

// idGenerator issues operation and device ids. [utils.UUIDGenerator]
// satisfies it.
type idGenerator interface {
	Generate() string
}

// pendingQueue is the [PendingQueue] backed by the operation journal of the
// local store.
type pendingQueue struct {
	store store.LocalStore

	// guard resolves the owner of every new operation.
	guard OwnershipGuard

	// validator rejects drafts before they are journaled.
	validator validators.Validator

	ids idGenerator
	now func() time.Time
}

// NewPendingQueue creates the PendingQueue. Every enqueue passes guard
// before anything is written.
func NewPendingQueue(localStore store.LocalStore, guard OwnershipGuard) PendingQueue {
	return &pendingQueue{
		store:     localStore,
		guard:     guard,
		validator: validators.NewSyncValidator(),
		ids:       utils.NewUUIDGenerator(),
		now:       time.Now,
	}
}

// Enqueue implements PendingQueue.
func (q *pendingQueue) Enqueue(ctx context.Context, draft models.PendingOperationDraft) (models.PendingOperation, error) {
	log := logger.FromContext(ctx)

	declaredOwner, err := q.declaredOwner(ctx, draft)
	if err != nil {
		return models.PendingOperation{}, err
	}

	active, err := q.guard.Check(ctx, declaredOwner)
	if err != nil {
		return models.PendingOperation{}, err
	}

	if err = q.validator.Validate(ctx, draft); err != nil {
		log.Err(err).
			Str("func", "pendingQueue.Enqueue").
			Str("entity", string(draft.Entity)).
			Str("entity_id", draft.EntityID).
			Msg("draft rejected")
		return models.PendingOperation{}, fmt.Errorf("%w: %w", ErrInvalidDraft, err)
	}

	category, _ := models.CategoryFor(draft.Entity)
	now := q.now().UTC()

	op := models.PendingOperation{
		ID:        q.ids.Generate(),
		Entity:    draft.Entity,
		EntityID:  draft.EntityID,
		Category:  category,
		Type:      draft.Type,
		Version:   draft.Version,
		CreatedAt: now,
		OwnerID:   active,
	}

	if draft.Type == models.OperationUpsert {
		payload, lastModifiedAt, stampErr := stampPayload(draft.Payload, draft.EntityID, active, now)
		if stampErr != nil {
			return models.PendingOperation{}, fmt.Errorf("%w: %w", ErrInvalidDraft, stampErr)
		}
		op.Payload = payload
		if op.Version == "" {
			op.Version = lastModifiedAt
		}
	} else if op.Version == "" {
		op.Version = now.Format(time.RFC3339Nano)
	}

	err = q.store.Transact(ctx, func(uow store.UnitOfWork) error {
		if writeErr := applyLocally(ctx, uow, op); writeErr != nil {
			return writeErr
		}
		return uow.Operations().Append(ctx, op)
	})
	if err != nil {
		log.Err(err).
			Str("func", "pendingQueue.Enqueue").
			Str("entity", string(op.Entity)).
			Str("entity_id", op.EntityID).
			Msg("failed to persist pending operation")
		return models.PendingOperation{}, err
	}

	log.Debug().
		Str("func", "pendingQueue.Enqueue").
		Str("operation_id", op.ID).
		Str("entity", string(op.Entity)).
		Str("category", string(op.Category)).
		Str("type", string(op.Type)).
		Msg("operation queued")

	return op, nil
}

// declaredOwner resolves the owner a draft claims. For UPSERT the payload's
// ownerId wins over draft.Owner since it is what gets synchronized. DELETE
// drafts without an owner use the owner of the stored record.
func (q *pendingQueue) declaredOwner(ctx context.Context, draft models.PendingOperationDraft) (string, error) {
	switch draft.Type {
	case models.OperationUpsert:
		if owner := gjson.GetBytes(draft.Payload, "ownerId").String(); owner != "" {
			return owner, nil
		}
		return draft.Owner, nil
	case models.OperationDelete:
		if draft.Owner != "" {
			return draft.Owner, nil
		}
		if !draft.Entity.Valid() {
			return "", nil
		}
		record, err := q.store.Collections().Get(ctx, draft.Entity, draft.EntityID)
		if errors.Is(err, store.ErrRecordNotFound) {
			return "", nil
		}
		if err != nil {
			return "", err
		}
		return gjson.GetBytes(record.Payload, "ownerId").String(), nil
	}

	return draft.Owner, nil
}

// applyLocally is the optimistic write mirroring op into the Local
// Collection Store.
func applyLocally(ctx context.Context, uow store.UnitOfWork, op models.PendingOperation) error {
	if op.Type == models.OperationDelete {
		return uow.Collections().BulkDelete(ctx, op.Entity, op.EntityID)
	}

	record, err := store.RecordFromPayload(op.Entity, op.Payload)
	if err != nil {
		return err
	}
	return uow.Collections().BulkPut(ctx, op.Entity, record)
}

// stampPayload fills id, ownerId and lastModifiedAt when the payload lacks
// them and returns the resulting lastModifiedAt.
func stampPayload(payload json.RawMessage, entityID, owner string, now time.Time) (json.RawMessage, string, error) {
	out := []byte(payload)
	var err error

	if gjson.GetBytes(out, "id").String() == "" {
		if out, err = sjson.SetBytes(out, "id", entityID); err != nil {
			return nil, "", err
		}
	}

	if gjson.GetBytes(out, "ownerId").String() == "" {
		if out, err = sjson.SetBytes(out, "ownerId", owner); err != nil {
			return nil, "", err
		}
	}

	lastModifiedAt := gjson.GetBytes(out, "lastModifiedAt").String()
	if lastModifiedAt == "" {
		lastModifiedAt = now.Format(time.RFC3339Nano)
		if out, err = sjson.SetBytes(out, "lastModifiedAt", lastModifiedAt); err != nil {
			return nil, "", err
		}
	}

	return out, lastModifiedAt, nil
}

// ListPending implements PendingQueue.
func (q *pendingQueue) ListPending(ctx context.Context, categories ...models.Category) ([]models.PendingOperation, error) {
	return q.store.Operations().ListPending(ctx, categories...)
}

// Purge implements PendingQueue.
func (q *pendingQueue) Purge(ctx context.Context, ids ...string) error {
	n, err := q.store.Operations().Purge(ctx, ids...)
	if err != nil {
		return err
	}

	logger.FromContext(ctx).Debug().
		Str("func", "pendingQueue.Purge").
		Int("requested", len(ids)).
		Int64("removed", n).
		Msg("pending operations purged")
	return nil
}

// Size implements PendingQueue.
func (q *pendingQueue) Size(ctx context.Context) (int, error) {
	return q.store.Operations().Count(ctx)
}
