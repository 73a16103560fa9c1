// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the long-lived background loops of the sync client
// (scheduler, connectivity monitor, visibility source) as one group.
package workers

import "context"

// Worker is a background loop. Run blocks until ctx is done or the worker
// fails; returning nil after ctx is cancelled is the normal exit.
//
// Example implementation:
//
//	type ticker struct{ every time.Duration }
//
//	func (w *ticker) Run(ctx context.Context) error {
//	    t := time.NewTicker(w.every)
//	    defer t.Stop()
//	    for {
//	        select {
//	        case <-ctx.Done():
//	            return nil
//	        case <-t.C:
//	            // work
//	        }
//	    }
//	}
type Worker interface {
	Run(ctx context.Context) error
}

// WorkerFunc adapts a plain function to [Worker].
type WorkerFunc func(ctx context.Context) error

// Run calls f(ctx).
func (f WorkerFunc) Run(ctx context.Context) error {
	return f(ctx)
}
