// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Workers is a group of workers sharing one lifetime.
type Workers struct {
	workers []Worker
}

// NewWorkers creates a group running workers.
func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Add registers more workers. It must not be called while Run is active.
func (w *Workers) Add(workers ...Worker) {
	w.workers = append(w.workers, workers...)
}

// Run starts every worker in its own goroutine and blocks until all of them
// have returned. The first error cancels the context shared by the others
// and is returned.
func (w *Workers) Run(ctx context.Context) error {
	g, gCtx := errgroup.WithContext(ctx)
	for _, worker := range w.workers {
		g.Go(func() error {
			return worker.Run(gCtx)
		})
	}
	return g.Wait()
}
