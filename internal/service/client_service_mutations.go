// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-study-sync/models"
)

// mutationService turns typed study records into pending operations. It
// holds no state of its own: ownership and categories are settled by queue.
type mutationService struct {
	queue PendingQueue
}

// NewMutationService creates the typed enqueue helpers on top of queue.
func NewMutationService(queue PendingQueue) MutationService {
	return &mutationService{queue: queue}
}

// EnqueueUpsert implements MutationService. The category is derived by the
// queue from value's kind.
func (m *mutationService) EnqueueUpsert(ctx context.Context, value models.Syncable) (models.PendingOperation, error) {
	payload, err := json.Marshal(value)
	if err != nil {
		return models.PendingOperation{}, fmt.Errorf("%w: encode %s: %w", ErrInvalidDraft, value.Kind(), err)
	}

	return m.queue.Enqueue(ctx, models.PendingOperationDraft{
		Entity:   value.Kind(),
		EntityID: value.Key(),
		Type:     models.OperationUpsert,
		Payload:  payload,
		Owner:    value.Owner(),
	})
}

// EnqueueDelete implements MutationService.
func (m *mutationService) EnqueueDelete(ctx context.Context, entity models.Entity, id string) (models.PendingOperation, error) {
	return m.queue.Enqueue(ctx, models.PendingOperationDraft{
		Entity:   entity,
		EntityID: id,
		Type:     models.OperationDelete,
	})
}

// EnqueueDeckUpsert implements MutationService.
func (m *mutationService) EnqueueDeckUpsert(ctx context.Context, deck models.Deck) (models.PendingOperation, error) {
	return m.EnqueueUpsert(ctx, deck)
}

// EnqueueDeckDelete implements MutationService.
func (m *mutationService) EnqueueDeckDelete(ctx context.Context, id string) (models.PendingOperation, error) {
	return m.EnqueueDelete(ctx, models.EntityDeck, id)
}

// EnqueueCardUpsert implements MutationService.
func (m *mutationService) EnqueueCardUpsert(ctx context.Context, card models.Card) (models.PendingOperation, error) {
	return m.EnqueueUpsert(ctx, card)
}

// EnqueueCardDelete implements MutationService.
func (m *mutationService) EnqueueCardDelete(ctx context.Context, id string) (models.PendingOperation, error) {
	return m.EnqueueDelete(ctx, models.EntityCard, id)
}

// EnqueueTemplateUpsert implements MutationService.
func (m *mutationService) EnqueueTemplateUpsert(ctx context.Context, template models.Template) (models.PendingOperation, error) {
	return m.EnqueueUpsert(ctx, template)
}

// EnqueueTemplateDelete implements MutationService.
func (m *mutationService) EnqueueTemplateDelete(ctx context.Context, id string) (models.PendingOperation, error) {
	return m.EnqueueDelete(ctx, models.EntityTemplate, id)
}

// EnqueueStyleUpsert implements MutationService.
func (m *mutationService) EnqueueStyleUpsert(ctx context.Context, style models.Style) (models.PendingOperation, error) {
	return m.EnqueueUpsert(ctx, style)
}

// EnqueueStyleDelete implements MutationService.
func (m *mutationService) EnqueueStyleDelete(ctx context.Context, id string) (models.PendingOperation, error) {
	return m.EnqueueDelete(ctx, models.EntityStyle, id)
}

// EnqueueFieldUpsert implements MutationService.
func (m *mutationService) EnqueueFieldUpsert(ctx context.Context, field models.Field) (models.PendingOperation, error) {
	return m.EnqueueUpsert(ctx, field)
}

// EnqueueFieldDelete implements MutationService.
func (m *mutationService) EnqueueFieldDelete(ctx context.Context, id string) (models.PendingOperation, error) {
	return m.EnqueueDelete(ctx, models.EntityField, id)
}

// EnqueueFieldPreferenceUpsert implements MutationService.
func (m *mutationService) EnqueueFieldPreferenceUpsert(ctx context.Context, pref models.FieldPreference) (models.PendingOperation, error) {
	return m.EnqueueUpsert(ctx, pref)
}

// EnqueueFieldPreferenceDelete implements MutationService.
func (m *mutationService) EnqueueFieldPreferenceDelete(ctx context.Context, id string) (models.PendingOperation, error) {
	return m.EnqueueDelete(ctx, models.EntityFieldPreference, id)
}

// EnqueueProgressUpsert implements MutationService.
func (m *mutationService) EnqueueProgressUpsert(ctx context.Context, progress models.Progress) (models.PendingOperation, error) {
	return m.EnqueueUpsert(ctx, progress)
}

// EnqueueProgressDelete implements MutationService.
func (m *mutationService) EnqueueProgressDelete(ctx context.Context, id string) (models.PendingOperation, error) {
	return m.EnqueueDelete(ctx, models.EntityProgress, id)
}

// EnqueueUserPreferenceUpsert implements MutationService.
func (m *mutationService) EnqueueUserPreferenceUpsert(ctx context.Context, pref models.UserPreference) (models.PendingOperation, error) {
	return m.EnqueueUpsert(ctx, pref)
}

// EnqueueUserPreferenceDelete implements MutationService.
func (m *mutationService) EnqueueUserPreferenceDelete(ctx context.Context, id string) (models.PendingOperation, error) {
	return m.EnqueueDelete(ctx, models.EntityUserPreference, id)
}
