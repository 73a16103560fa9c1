// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-study-sync/internal/adapter"
	"github.com/MKhiriev/go-study-sync/internal/config"
	"github.com/MKhiriev/go-study-sync/internal/store"
)

// ClientServices wires the local sync engine.
type ClientServices struct {
	SessionService  SessionService
	OwnershipGuard  OwnershipGuard
	PendingQueue    PendingQueue
	MutationService MutationService
	SyncService     ClientSyncService
	Scheduler       Scheduler
}

// NewClientServices builds the client services on top of localStore and
// serverAdapter. The scheduler starts disabled.
func NewClientServices(localStore store.LocalStore, serverAdapter adapter.ServerAdapter, cfg config.ClientWorkers) *ClientServices {
	sessions := NewClientSessionService(localStore, serverAdapter)
	guard := NewOwnershipGuard(sessions)
	queue := NewPendingQueue(localStore, guard)
	syncSvc := NewClientSyncService(localStore, serverAdapter)

	return &ClientServices{
		SessionService:  sessions,
		OwnershipGuard:  guard,
		PendingQueue:    queue,
		MutationService: NewMutationService(queue),
		SyncService:     syncSvc,
		Scheduler:       NewScheduler(syncSvc, cfg),
	}
}
