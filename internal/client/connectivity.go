// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-study-sync/internal/logger"
)

// ConnectivityMonitor probes the remote endpoint on a fixed interval and
// reports every observation to its notifier. The notifier decides what a
// transition means; the monitor only logs them.
type ConnectivityMonitor struct {
	pinger   Pinger
	notifier OnlineNotifier

	// interval is both the probe period and the timeout of a single probe.
	interval time.Duration

	// online is the result of the last probe. probed turns true after the
	// first one, so the first result is always logged.
	online atomic.Bool
	probed atomic.Bool
}

// NewConnectivityMonitor creates a monitor that pings through pinger every
// interval and reports each result to notifier.
func NewConnectivityMonitor(pinger Pinger, notifier OnlineNotifier, interval time.Duration) *ConnectivityMonitor {
	return &ConnectivityMonitor{
		pinger:   pinger,
		notifier: notifier,
		interval: interval,
	}
}

// Run probes once immediately and then every interval until ctx is done.
func (m *ConnectivityMonitor) Run(ctx context.Context) error {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.probe(ctx)
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			m.probe(ctx)
		}
	}
}

// Online reports the result of the last probe. It is false before the first
// probe has finished.
func (m *ConnectivityMonitor) Online() bool {
	return m.online.Load()
}

// probe pings once and notifies. Transitions are logged; steady states are
// not.
func (m *ConnectivityMonitor) probe(ctx context.Context) {
	probeCtx, cancel := context.WithTimeout(ctx, m.interval)
	defer cancel()

	err := m.pinger.Ping(probeCtx)
	if ctx.Err() != nil {
		// shutting down, the failure says nothing about the network
		return
	}

	online := err == nil
	previous := m.online.Swap(online)
	first := !m.probed.Swap(true)

	if first || previous != online {
		log := logger.FromContext(ctx)
		if online {
			log.Info().Str("func", "*ConnectivityMonitor.probe").Msg("remote endpoint reachable")
		} else {
			log.Warn().Err(err).Str("func", "*ConnectivityMonitor.probe").Msg("remote endpoint unreachable")
		}
	}

	m.notifier.NotifyOnline(online)
}
