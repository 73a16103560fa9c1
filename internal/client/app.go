// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-study-sync/internal/adapter"
	"github.com/MKhiriev/go-study-sync/internal/config"
	"github.com/MKhiriev/go-study-sync/internal/logger"
	"github.com/MKhiriev/go-study-sync/internal/service"
	"github.com/MKhiriev/go-study-sync/internal/store"
	"github.com/MKhiriev/go-study-sync/internal/workers"
	"github.com/MKhiriev/go-study-sync/models"
)

// StatusReport is the persisted sync state of this installation.
type StatusReport struct {
	Identity        string                  `json:"identity,omitempty"`
	DeviceID        string                  `json:"deviceId,omitempty"`
	Cursors         models.CursorMap        `json:"cursors"`
	LastSyncAt      time.Time               `json:"lastSyncAt"`
	QueueSize       int                     `json:"queueSize"`
	QueueByCategory map[models.Category]int `json:"queueByCategory"`
}

// App is the client facade used by the CLI. It owns the local store and
// ties the scheduler to the session: scheduled passes only run while an
// identity is logged in.
type App struct {
	cfg      *config.ClientConfig
	store    store.LocalStore
	adapter  adapter.ServerAdapter
	services *service.ClientServices

	// runCtx is the context of an active Run, nil otherwise. A Login during
	// Run enables the scheduler under it.
	runMu  sync.Mutex
	runCtx context.Context

	logger *logger.Logger
}

var _ Client = (*App)(nil)

// NewApp opens the local store and builds the remote adapter described by
// cfg. The returned App owns the store; call Close when done.
func NewApp(ctx context.Context, cfg *config.ClientConfig, log *logger.Logger) (*App, error) {
	localStore, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, cfg.App, log)
	if err != nil {
		_ = localStore.Close()
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	return newApp(localStore, serverAdapter, cfg, log), nil
}

func newApp(localStore store.LocalStore, serverAdapter adapter.ServerAdapter, cfg *config.ClientConfig, log *logger.Logger) *App {
	return &App{
		cfg:      cfg,
		store:    localStore,
		adapter:  serverAdapter,
		services: service.NewClientServices(localStore, serverAdapter, cfg.Workers),
		logger:   log,
	}
}

// Services exposes the wired client services.
func (a *App) Services() *service.ClientServices {
	return a.services
}

// Restore loads a persisted session, if any, into the adapter.
func (a *App) Restore(ctx context.Context) (models.Session, error) {
	return a.services.SessionService.Restore(a.withLogger(ctx))
}

// Login adopts the identity of token. When the identity differs from the
// previous one a forcePull pass over all categories follows, so the local
// collections are rebuilt from the remote side. A failed pass is returned
// together with the new session; the login itself stands. While Run is
// active, a successful login also enables the scheduler.
func (a *App) Login(ctx context.Context, token string) (models.Session, bool, error) {
	ctx = a.withLogger(ctx)

	session, switched, err := a.services.SessionService.Login(ctx, token)
	if err != nil {
		return models.Session{}, false, err
	}

	if switched {
		_, err = a.services.SyncService.PerformSync(ctx, models.SyncOptions{
			ForcePull: true,
			Reason:    service.ReasonLogin,
		})
	}

	a.runMu.Lock()
	if a.runCtx != nil {
		a.services.Scheduler.Enable(a.runCtx)
	}
	a.runMu.Unlock()

	return session, switched, err
}

// Logout stops scheduled passes and forgets the active identity. Queued
// operations stay in the journal.
func (a *App) Logout(ctx context.Context) error {
	a.services.Scheduler.Disable()
	return a.services.SessionService.Logout(a.withLogger(ctx))
}

// Sync runs one pass over categories (all when empty). It fails with
// [service.ErrNotAuthenticated] when no identity is logged in, so operations
// left by a previous identity are never sent anonymously.
func (a *App) Sync(ctx context.Context, forcePull bool, categories ...models.Category) (models.SyncSnapshot, error) {
	ctx = a.withLogger(ctx)
	if _, err := a.Restore(ctx); err != nil {
		return models.SyncSnapshot{}, err
	}

	return a.services.SyncService.PerformSync(ctx, models.SyncOptions{
		Categories: categories,
		ForcePull:  forcePull,
		Reason:     service.ReasonManual,
	})
}

// Pending lists queued operations in the order they will be sent.
func (a *App) Pending(ctx context.Context, categories ...models.Category) ([]models.PendingOperation, error) {
	return a.services.PendingQueue.ListPending(a.withLogger(ctx), categories...)
}

// EnqueueUpsert queues a full replacement of the record described by a raw
// JSON payload. The record id is taken from the payload.
func (a *App) EnqueueUpsert(ctx context.Context, entity models.Entity, payload json.RawMessage) (models.PendingOperation, error) {
	var head struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(payload, &head); err != nil {
		return models.PendingOperation{}, fmt.Errorf("%w: %w", service.ErrInvalidDraft, err)
	}

	return a.services.PendingQueue.Enqueue(a.withLogger(ctx), models.PendingOperationDraft{
		Entity:   entity,
		EntityID: head.ID,
		Type:     models.OperationUpsert,
		Payload:  payload,
	})
}

// EnqueueDelete queues the removal of one record.
func (a *App) EnqueueDelete(ctx context.Context, entity models.Entity, id string) (models.PendingOperation, error) {
	return a.services.MutationService.EnqueueDelete(a.withLogger(ctx), entity, id)
}

// Status reads the persisted sync state.
func (a *App) Status(ctx context.Context) (StatusReport, error) {
	ctx = a.withLogger(ctx)
	var report StatusReport

	identity, err := a.services.SessionService.ActiveIdentity(ctx)
	if err != nil && !errors.Is(err, service.ErrNotAuthenticated) {
		return StatusReport{}, err
	}
	report.Identity = identity

	if report.DeviceID, err = a.DeviceID(ctx); err != nil {
		return StatusReport{}, err
	}

	meta := a.store.Metadata()
	if report.Cursors, err = meta.ReadCursors(ctx); err != nil {
		return StatusReport{}, err
	}
	if report.LastSyncAt, err = meta.LastSyncAt(ctx); err != nil {
		return StatusReport{}, err
	}

	pending, err := a.services.PendingQueue.ListPending(ctx)
	if err != nil {
		return StatusReport{}, err
	}
	report.QueueSize = len(pending)
	report.QueueByCategory = make(map[models.Category]int, len(models.AllCategories))
	for _, op := range pending {
		report.QueueByCategory[op.Category]++
	}

	return report, nil
}

// DeviceID returns the persisted device id, or "" before the first pass.
func (a *App) DeviceID(ctx context.Context) (string, error) {
	deviceID, err := a.store.Metadata().DeviceID(a.withLogger(ctx))
	if errors.Is(err, store.ErrMetadataNotFound) {
		return "", nil
	}
	return deviceID, err
}

// Reset stops the scheduler and wipes all local data, session included.
func (a *App) Reset(ctx context.Context) error {
	a.services.Scheduler.Disable()
	return a.store.Reset(a.withLogger(ctx))
}

// Run restores the session and keeps the scheduler, the connectivity monitor
// and the visibility monitor running until ctx is done. Without a session the
// scheduler stays disabled until Login.
func (a *App) Run(ctx context.Context) error {
	ctx = a.withLogger(ctx)

	authenticated := true
	if _, err := a.Restore(ctx); err != nil {
		if !errors.Is(err, service.ErrNotAuthenticated) {
			return fmt.Errorf("restore session: %w", err)
		}
		authenticated = false
		a.logger.Warn().Str("func", "*App.Run").Msg("no local session, sync stays disabled until login")
	}

	cancelObserver := a.services.SyncService.Observe(func(status models.SyncStatus) {
		event := a.logger.Info()
		if status.State == models.SyncStateFailed {
			event = a.logger.Warn()
		}
		event.Str("state", string(status.State)).
			Str("reason", status.Reason).
			Str("last_error", status.LastError).
			Int("queue_size", status.QueueSize).
			Msg("sync status")
	})
	defer cancelObserver()

	return a.workers(authenticated).Run(ctx)
}

// workers builds the background group of Run. The scheduler worker records
// its context for Login and enables the scheduler right away only when
// authenticated is true.
func (a *App) workers(authenticated bool) *workers.Workers {
	scheduler := a.services.Scheduler

	return workers.NewWorkers(
		workers.WorkerFunc(func(ctx context.Context) error {
			a.runMu.Lock()
			a.runCtx = ctx
			if authenticated {
				scheduler.Enable(ctx)
			}
			a.runMu.Unlock()

			<-ctx.Done()

			a.runMu.Lock()
			a.runCtx = nil
			a.runMu.Unlock()
			scheduler.Disable()
			return nil
		}),
		NewConnectivityMonitor(a.adapter, scheduler, a.cfg.Workers.ConnectivityInterval),
		NewVisibilityMonitor(scheduler),
	)
}

// Close releases the local store.
func (a *App) Close() error {
	return a.store.Close()
}

// withLogger attaches the App logger to ctx for logger.FromContext.
func (a *App) withLogger(ctx context.Context) context.Context {
	return a.logger.WithContext(ctx)
}
