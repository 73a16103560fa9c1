// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"os"
	"os/signal"

	"github.com/MKhiriev/go-study-sync/internal/logger"
)

// VisibilityMonitor turns "process resumed" signals into a hidden→visible
// transition. A terminal process has no notion of being hidden other than
// being stopped, so each resume is reported as a short hidden period
// followed by visible.
type VisibilityMonitor struct {
	notifier VisibilityNotifier

	// notify and stop subscribe and unsubscribe the signal channel. Tests
	// replace them to deliver signals by hand.
	notify func(c chan<- os.Signal)
	stop   func(c chan<- os.Signal)
}

// NewVisibilityMonitor creates a monitor reporting resumes to notifier.
func NewVisibilityMonitor(notifier VisibilityNotifier) *VisibilityMonitor {
	return &VisibilityMonitor{
		notifier: notifier,
		notify:   notifyResume,
		stop:     signal.Stop,
	}
}

func notifyResume(c chan<- os.Signal) {
	// signal.Notify without signals would relay every signal
	if len(resumeSignals) > 0 {
		signal.Notify(c, resumeSignals...)
	}
}

// Run listens for resume signals until ctx is done. On platforms without
// such signals it just waits for ctx.
func (m *VisibilityMonitor) Run(ctx context.Context) error {
	signals := make(chan os.Signal, 1)
	m.notify(signals)
	defer m.stop(signals)

	for {
		select {
		case <-ctx.Done():
			return nil
		case sig := <-signals:
			logger.FromContext(ctx).Debug().
				Str("func", "*VisibilityMonitor.Run").
				Str("signal", sig.String()).
				Msg("process resumed")
			m.notifier.NotifyVisible(false)
			m.notifier.NotifyVisible(true)
		}
	}
}
