// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/go-study-sync/internal/config"
	"github.com/MKhiriev/go-study-sync/internal/logger"
	"github.com/MKhiriev/go-study-sync/models"
)

// Trigger reasons attached to scheduled passes.
const (
	ReasonBootstrap  = "bootstrap"
	ReasonHotTimer   = "hot-timer"
	ReasonWarmTimer  = "warm-timer"
	ReasonReconnect  = "reconnect"
	ReasonForeground = "foreground"
	ReasonRetry      = "retry"

	// ReasonLogin and ReasonManual are used by callers outside the scheduler.
	ReasonLogin  = "login"
	ReasonManual = "manual"
)

const requestQueueSize = 8

var (
	hotCategories  = []models.Category{models.CategoryHot}
	warmCategories = []models.Category{models.CategoryHot, models.CategoryWarm}
	allCategories  = []models.Category{models.CategoryHot, models.CategoryWarm, models.CategoryCold}
)

// syncRequest is one queued trigger: the categories to sync and why.
type syncRequest struct {
	reason     string
	categories []models.Category
}

// scheduler is the [Scheduler] implementation. While enabled, a single loop
// goroutine owns the timers and runs passes one at a time, so triggers never
// overlap.
type scheduler struct {
	syncService ClientSyncService
	cfg         config.ClientWorkers

	// mu guards the fields below. The loop reads none of them.
	mu sync.Mutex

	// enabled is true between Enable and Disable.
	enabled bool

	// cancel stops the loop started by Enable.
	cancel context.CancelFunc

	// requests feeds triggers to the loop. It is replaced on every Enable,
	// so a stale loop never sees requests meant for a new one.
	requests chan syncRequest

	// online and visible hold the last reported state. Only a false to
	// true transition triggers a pass.
	online  bool
	visible bool

	// wg tracks the loop goroutine for Disable.
	wg sync.WaitGroup
}

// NewScheduler creates a disabled Scheduler driving syncService.
func NewScheduler(syncService ClientSyncService, cfg config.ClientWorkers) Scheduler {
	if cfg.HotInterval <= 0 {
		cfg.HotInterval = config.DefaultHotInterval
	}
	if cfg.WarmInterval <= 0 {
		cfg.WarmInterval = config.DefaultWarmInterval
	}
	if cfg.BackoffBase <= 0 {
		cfg.BackoffBase = config.DefaultBackoffBase
	}
	if cfg.BackoffMax <= 0 {
		cfg.BackoffMax = config.DefaultBackoffMax
	}

	return &scheduler{
		syncService: syncService,
		cfg:         cfg,
		online:      true,
		visible:     true,
	}
}

// Enable implements Scheduler.
func (s *scheduler) Enable(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.enabled {
		return
	}

	loopCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.requests = make(chan syncRequest, requestQueueSize)
	s.enabled = true
	s.online = true
	s.visible = true

	s.wg.Add(1)
	go s.loop(loopCtx, s.requests)

	s.enqueueLocked(syncRequest{reason: ReasonBootstrap, categories: allCategories})
}

// Disable implements Scheduler. It blocks until the pass in flight, if any,
// has returned.
func (s *scheduler) Disable() {
	s.mu.Lock()
	if !s.enabled {
		s.mu.Unlock()
		return
	}
	cancel := s.cancel
	s.cancel = nil
	s.requests = nil
	s.enabled = false
	s.online = true
	s.visible = true
	s.mu.Unlock()

	cancel()
	s.wg.Wait()
}

// Enabled implements Scheduler.
func (s *scheduler) Enabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.enabled
}

// NotifyOnline implements Scheduler.
func (s *scheduler) NotifyOnline(online bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	wasOnline := s.online
	s.online = online
	if online && !wasOnline {
		s.enqueueLocked(syncRequest{reason: ReasonReconnect, categories: warmCategories})
	}
}

// NotifyVisible implements Scheduler.
func (s *scheduler) NotifyVisible(visible bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	wasVisible := s.visible
	s.visible = visible
	if visible && !wasVisible {
		s.enqueueLocked(syncRequest{reason: ReasonForeground, categories: allCategories})
	}
}

// Request implements Scheduler.
func (s *scheduler) Request(reason string, categories ...models.Category) bool {
	if len(categories) == 0 {
		categories = allCategories
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.enqueueLocked(syncRequest{reason: reason, categories: categories})
}

// enqueueLocked never blocks. Requests are dropped while disabled or when the
// queue is full; a full queue already holds a pass that will pick up the
// same pending operations.
func (s *scheduler) enqueueLocked(req syncRequest) bool {
	if !s.enabled {
		return false
	}

	select {
	case s.requests <- req:
		return true
	default:
		return false
	}
}

// loop runs passes for queued requests and for the hot and warm tickers
// until ctx is done. A retryable failure arms one backoff timer. Categories
// of further failures are folded into it, and any successful pass clears it.
func (s *scheduler) loop(ctx context.Context, requests <-chan syncRequest) {
	defer s.wg.Done()

	log := logger.FromContext(ctx)

	hot := time.NewTicker(s.cfg.HotInterval)
	defer hot.Stop()
	warm := time.NewTicker(s.cfg.WarmInterval)
	defer warm.Stop()

	var (
		backoff    retry.Backoff
		retryTimer *time.Timer
		retryC     <-chan time.Time
		retryCats  []models.Category
	)
	stopRetry := func() {
		if retryTimer != nil {
			retryTimer.Stop()
		}
		retryTimer, retryC, retryCats, backoff = nil, nil, nil, nil
	}
	defer stopRetry()

	run := func(req syncRequest) {
		if ctx.Err() != nil {
			return
		}

		_, err := s.syncService.PerformSync(ctx, models.SyncOptions{
			Categories: req.categories,
			Reason:     req.reason,
		})
		if err == nil {
			stopRetry()
			return
		}
		if ctx.Err() != nil || !IsRetryable(err) {
			return
		}

		if backoff == nil {
			backoff = retry.WithCappedDuration(s.cfg.BackoffMax,
				retry.WithJitterPercent(10, retry.NewExponential(s.cfg.BackoffBase)))
		}
		delay, stop := backoff.Next()
		if stop {
			return
		}

		retryCats = models.NormalizeCategories(append(retryCats, req.categories...))
		if retryTimer != nil {
			retryTimer.Stop()
		}
		retryTimer = time.NewTimer(delay)
		retryC = retryTimer.C

		log.Debug().
			Str("func", "scheduler.loop").
			Str("categories", models.CategoriesKey(retryCats)).
			Dur("delay", delay).
			Msg("sync retry armed")
	}

	for {
		select {
		case <-ctx.Done():
			return
		case req := <-requests:
			run(req)
		case <-hot.C:
			run(syncRequest{reason: ReasonHotTimer, categories: hotCategories})
		case <-warm.C:
			run(syncRequest{reason: ReasonWarmTimer, categories: warmCategories})
		case <-retryC:
			cats := retryCats
			retryTimer, retryC, retryCats = nil, nil, nil
			run(syncRequest{reason: ReasonRetry, categories: cats})
		}
	}
}
