// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts background synchronization and blocks until ctx is done.
	Run(ctx context.Context) error
}

// Pinger probes the remote endpoint.
type Pinger interface {
	Ping(ctx context.Context) error
}

// OnlineNotifier receives connectivity observations.
type OnlineNotifier interface {
	NotifyOnline(online bool)
}

// VisibilityNotifier receives foreground/background observations.
type VisibilityNotifier interface {
	NotifyVisible(visible bool)
}
