// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-study-sync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_services_mock.go -package=mock

// SessionService owns the active local identity.
type SessionService interface {
	// Login adopts the identity named by token's subject, persists the
	// session and hands the token to the transport. switched reports whether
	// the identity differs from the previously stored one (or none existed),
	// in which case the caller should run a forcePull pass.
	Login(ctx context.Context, token string) (session models.Session, switched bool, err error)

	// Logout forgets the session. Queued operations stay in place and remain
	// bound to their owner.
	Logout(ctx context.Context) error

	// Restore loads the stored session and re-arms the transport token.
	// Returns [ErrNotAuthenticated] when there is none.
	Restore(ctx context.Context) (models.Session, error)

	// ActiveIdentity returns the active user id or [ErrNotAuthenticated].
	ActiveIdentity(ctx context.Context) (string, error)
}

// OwnershipGuard binds queued mutations to the active identity.
type OwnershipGuard interface {
	// Check returns the active identity when declaredOwner is empty or
	// equal to it. It fails with [ErrNotAuthenticated] or
	// [ErrOwnershipMismatch] otherwise.
	Check(ctx context.Context, declaredOwner string) (string, error)
}

// PendingQueue is the single entry point for local mutations.
type PendingQueue interface {
	// Enqueue guards, validates and stamps draft, then writes the optimistic
	// local change and the journal entry in one transaction.
	Enqueue(ctx context.Context, draft models.PendingOperationDraft) (models.PendingOperation, error)
	// ListPending returns queued operations in ascending createdAt order.
	ListPending(ctx context.Context, categories ...models.Category) ([]models.PendingOperation, error)
	// Purge removes operations by id. Unknown ids are ignored.
	Purge(ctx context.Context, ids ...string) error
	// Size returns the number of queued operations.
	Size(ctx context.Context) (int, error)
}

// MutationService offers typed enqueue helpers on top of [PendingQueue].
// Delete helpers read the declared owner from the local record.
type MutationService interface {
	EnqueueUpsert(ctx context.Context, value models.Syncable) (models.PendingOperation, error)
	EnqueueDelete(ctx context.Context, entity models.Entity, id string) (models.PendingOperation, error)

	EnqueueDeckUpsert(ctx context.Context, deck models.Deck) (models.PendingOperation, error)
	EnqueueDeckDelete(ctx context.Context, id string) (models.PendingOperation, error)
	EnqueueCardUpsert(ctx context.Context, card models.Card) (models.PendingOperation, error)
	EnqueueCardDelete(ctx context.Context, id string) (models.PendingOperation, error)
	EnqueueTemplateUpsert(ctx context.Context, template models.Template) (models.PendingOperation, error)
	EnqueueTemplateDelete(ctx context.Context, id string) (models.PendingOperation, error)
	EnqueueStyleUpsert(ctx context.Context, style models.Style) (models.PendingOperation, error)
	EnqueueStyleDelete(ctx context.Context, id string) (models.PendingOperation, error)
	EnqueueFieldUpsert(ctx context.Context, field models.Field) (models.PendingOperation, error)
	EnqueueFieldDelete(ctx context.Context, id string) (models.PendingOperation, error)
	EnqueueFieldPreferenceUpsert(ctx context.Context, pref models.FieldPreference) (models.PendingOperation, error)
	EnqueueFieldPreferenceDelete(ctx context.Context, id string) (models.PendingOperation, error)
	EnqueueProgressUpsert(ctx context.Context, progress models.Progress) (models.PendingOperation, error)
	EnqueueProgressDelete(ctx context.Context, id string) (models.PendingOperation, error)
	EnqueueUserPreferenceUpsert(ctx context.Context, pref models.UserPreference) (models.PendingOperation, error)
	EnqueueUserPreferenceDelete(ctx context.Context, id string) (models.PendingOperation, error)
}

// ClientSyncService runs sync passes.
type ClientSyncService interface {
	// PerformSync runs one pass for opts. Identical concurrent requests share
	// one pass, different ones run after the pass in flight.
	PerformSync(ctx context.Context, opts models.SyncOptions) (models.SyncSnapshot, error)
	// Status returns the last published status.
	Status() models.SyncStatus
	// Observe registers fn for every status change and returns a function
	// that unregisters it.
	Observe(fn func(models.SyncStatus)) (cancel func())
}

// Scheduler maps triggers to sync requests.
type Scheduler interface {
	// Enable arms the timers and fires the bootstrap request. It is a no-op
	// while already enabled.
	Enable(ctx context.Context)
	// Disable tears down timers, pending requests and the retry backoff.
	Disable()
	// Enabled reports whether the scheduler is armed.
	Enabled() bool
	// NotifyOnline reports the connectivity state. An offline to online
	// transition requests [hot, warm].
	NotifyOnline(online bool)
	// NotifyVisible reports the foreground state. A hidden to visible
	// transition requests all categories.
	NotifyVisible(visible bool)
	// Request queues an explicit request. It reports false when the
	// scheduler is disabled or the request queue is full.
	Request(reason string, categories ...models.Category) bool
}
