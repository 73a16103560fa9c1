// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/MKhiriev/go-study-sync/internal/adapter"
	"github.com/MKhiriev/go-study-sync/internal/logger"
	"github.com/MKhiriev/go-study-sync/internal/store"
	"github.com/MKhiriev/go-study-sync/internal/utils"
	"github.com/MKhiriev/go-study-sync/models"
)

// clientSyncService is the [ClientSyncService] implementation.
type clientSyncService struct {
	store   store.LocalStore
	adapter adapter.ServerAdapter

	// ids generates the device id on the first pass.
	ids idGenerator

	// now stamps passes whose response carries no timestamp.
	now func() time.Time

	// group coalesces identical concurrent requests into one pass.
	// inflight holds the keys whose pass was started through group and has
	// not returned yet; it tells joined callers from the one that started.
	group    singleflight.Group
	flightMu sync.Mutex
	inflight map[string]struct{}

	// passMu serializes passes with different categories, so two merges
	// never interleave.
	passMu sync.Mutex

	// statusMu guards status and the observer registry.
	statusMu  sync.Mutex
	status    models.SyncStatus
	observers map[int]func(models.SyncStatus)
	nextID    int
}

// NewClientSyncService creates the sync executor.
func NewClientSyncService(localStore store.LocalStore, serverAdapter adapter.ServerAdapter) ClientSyncService {
	return &clientSyncService{
		store:     localStore,
		adapter:   serverAdapter,
		ids:       utils.NewUUIDGenerator(),
		now:       time.Now,
		status:    models.SyncStatus{State: models.SyncStateIdle},
		observers: make(map[int]func(models.SyncStatus)),
		inflight:  make(map[string]struct{}),
	}
}

// PerformSync implements ClientSyncService. Identical concurrent requests
// share one pass. The shared pass runs under the context of the caller that
// started it, and that caller always waits for the pass to return. A caller
// that joined it stops waiting when its own ctx is done but cannot cancel the
// pass.
func (s *clientSyncService) PerformSync(ctx context.Context, opts models.SyncOptions) (models.SyncSnapshot, error) {
	opts.Categories = models.NormalizeCategories(opts.Categories)
	key := models.CategoriesKey(opts.Categories) + "|force=" + strconv.FormatBool(opts.ForcePull)

	s.flightMu.Lock()
	_, joined := s.inflight[key]
	if !joined {
		s.inflight[key] = struct{}{}
	}
	results := s.group.DoChan(key, func() (any, error) {
		defer func() {
			s.flightMu.Lock()
			s.group.Forget(key)
			delete(s.inflight, key)
			s.flightMu.Unlock()
		}()
		return s.performSync(ctx, opts)
	})
	s.flightMu.Unlock()

	done := ctx.Done()
	if !joined {
		done = nil
	}

	select {
	case <-done:
		return models.SyncSnapshot{}, ctx.Err()
	case res := <-results:
		if res.Shared {
			logger.FromContext(ctx).Debug().
				Str("func", "clientSyncService.PerformSync").
				Str("key", key).
				Msg("joined sync pass in flight")
		}
		if res.Err != nil {
			return models.SyncSnapshot{}, res.Err
		}
		return res.Val.(models.SyncSnapshot), nil
	}
}

// performSync runs one pass under passMu and publishes the running, then
// the succeeded or failed, status. A ctx that is already done when the lock
// is acquired returns without publishing anything.
func (s *clientSyncService) performSync(ctx context.Context, opts models.SyncOptions) (models.SyncSnapshot, error) {
	s.passMu.Lock()
	defer s.passMu.Unlock()

	if err := ctx.Err(); err != nil {
		return models.SyncSnapshot{}, err
	}

	log := logger.FromContext(ctx)
	s.publish(func(st *models.SyncStatus) {
		st.State = models.SyncStateRunning
		st.Reason = opts.Reason
	})

	started := time.Now()
	snapshot, err := s.runPass(ctx, opts)
	if err != nil {
		log.Err(err).
			Str("func", "clientSyncService.performSync").
			Str("reason", opts.Reason).
			Str("categories", models.CategoriesKey(opts.Categories)).
			Msg("sync pass failed")
		s.publish(func(st *models.SyncStatus) {
			st.State = models.SyncStateFailed
			st.LastError = err.Error()
		})
		return models.SyncSnapshot{}, err
	}

	log.Info().
		Str("func", "clientSyncService.performSync").
		Str("reason", opts.Reason).
		Str("categories", models.CategoriesKey(opts.Categories)).
		Bool("force_pull", opts.ForcePull).
		Int("applied", len(snapshot.Metadata.AppliedOperationIDs)).
		Int("received", snapshot.Collections.Len()).
		Int("queue_size", snapshot.QueueSize).
		Dur("took", time.Since(started)).
		Msg("sync pass finished")

	s.publish(func(st *models.SyncStatus) {
		st.State = models.SyncStateSucceeded
		st.LastError = ""
		st.LastSyncAt = snapshot.Metadata.Timestamp
		st.QueueSize = snapshot.QueueSize
	})
	return snapshot, nil
}

// runPass gathers, transmits, then merges. Nothing local is written before
// the remote call succeeds, except the device id on first use.
func (s *clientSyncService) runPass(ctx context.Context, opts models.SyncOptions) (models.SyncSnapshot, error) {
	deviceID, err := s.store.Metadata().EnsureDeviceID(ctx, s.ids.Generate())
	if err != nil {
		return models.SyncSnapshot{}, fmt.Errorf("%w: device id: %w", ErrSyncTransactionFailure, err)
	}

	cursors, err := s.store.Metadata().ReadCursors(ctx)
	if err != nil {
		return models.SyncSnapshot{}, fmt.Errorf("%w: read cursors: %w", ErrSyncTransactionFailure, err)
	}

	ops, err := s.store.Operations().ListPending(ctx, opts.Categories...)
	if err != nil {
		return models.SyncSnapshot{}, fmt.Errorf("%w: list pending: %w", ErrSyncTransactionFailure, err)
	}
	if ops == nil {
		ops = []models.PendingOperation{}
	}

	requestOpts := opts
	if len(requestOpts.Categories) == 0 {
		requestOpts.Categories = models.AllCategories
	}

	resp, err := s.adapter.Sync(ctx, models.SyncRequest{
		DeviceID:   deviceID,
		Operations: ops,
		Cursors:    cursors,
		Options:    &requestOpts,
	})
	if err != nil {
		return models.SyncSnapshot{}, mapAdapterError(err)
	}

	timestamp := resp.Timestamp
	if timestamp.IsZero() {
		timestamp = s.now()
	}
	timestamp = timestamp.UTC()

	var queueSize int
	err = s.store.Transact(ctx, func(uow store.UnitOfWork) error {
		for entity, items := range resp.Collections.ByEntity() {
			if putErr := mergeCollection(ctx, uow, entity, items); putErr != nil {
				return putErr
			}
		}

		if len(resp.AppliedOperationIDs) > 0 {
			if _, purgeErr := uow.Operations().Purge(ctx, resp.AppliedOperationIDs...); purgeErr != nil {
				return purgeErr
			}
		}

		if writeErr := uow.Metadata().WriteCursors(ctx, resp.Cursors); writeErr != nil {
			return writeErr
		}

		if writeErr := uow.Metadata().SetLastSyncAt(ctx, timestamp); writeErr != nil {
			return writeErr
		}

		var countErr error
		queueSize, countErr = uow.Operations().Count(ctx)
		return countErr
	})
	if err != nil {
		return models.SyncSnapshot{}, fmt.Errorf("%w: %w", ErrSyncTransactionFailure, err)
	}

	cursors.Merge(resp.Cursors)
	applied := resp.AppliedOperationIDs
	if applied == nil {
		applied = []string{}
	}

	return models.SyncSnapshot{
		Collections: resp.Collections,
		QueueSize:   queueSize,
		Metadata: models.SyncMetadata{
			DeviceID:            deviceID,
			Cursors:             cursors,
			Timestamp:           timestamp,
			AppliedOperationIDs: applied,
		},
	}, nil
}

// mergeCollection stores the remote records of one entity kind. The remote
// payload replaces the local record. Records without a usable id are skipped.
func mergeCollection(ctx context.Context, uow store.UnitOfWork, entity models.Entity, items []json.RawMessage) error {
	log := logger.FromContext(ctx)

	records := make([]models.LocalRecord, 0, len(items))
	for _, item := range items {
		record, err := store.RecordFromPayload(entity, item)
		if err != nil {
			log.Warn().Err(err).
				Str("func", "mergeCollection").
				Str("entity", string(entity)).
				Msg("skipping invalid remote record")
			continue
		}
		records = append(records, record)
	}

	return uow.Collections().BulkPut(ctx, entity, records...)
}

// Status implements ClientSyncService.
func (s *clientSyncService) Status() models.SyncStatus {
	s.statusMu.Lock()
	defer s.statusMu.Unlock()
	return s.status
}

// Observe implements ClientSyncService.
func (s *clientSyncService) Observe(fn func(models.SyncStatus)) func() {
	s.statusMu.Lock()
	id := s.nextID
	s.nextID++
	s.observers[id] = fn
	s.statusMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.statusMu.Lock()
			delete(s.observers, id)
			s.statusMu.Unlock()
		})
	}
}

// publish applies change to the status and notifies observers outside the
// lock so they may call Status.
func (s *clientSyncService) publish(change func(st *models.SyncStatus)) {
	s.statusMu.Lock()
	change(&s.status)
	status := s.status
	observers := make([]func(models.SyncStatus), 0, len(s.observers))
	for _, fn := range s.observers {
		observers = append(observers, fn)
	}
	s.statusMu.Unlock()

	for _, fn := range observers {
		fn(status)
	}
}
