// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"path/filepath"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-study-sync/internal/config"
	"github.com/MKhiriev/go-study-sync/internal/logger"
	"github.com/MKhiriev/go-study-sync/internal/mock"
	"github.com/MKhiriev/go-study-sync/internal/store"
	"github.com/MKhiriev/go-study-sync/internal/utils"
)

// newTestStore opens a migrated SQLite database in a temporary directory.
func newTestStore(t *testing.T) *store.ClientStorages {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "study.db")
	s, err := store.NewClientStorages(context.Background(), config.ClientStorage{DB: config.ClientDB{DSN: dsn}}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return s
}

// newTestToken returns a signed token whose subject is userID.
func newTestToken(t *testing.T, userID string) string {
	t.Helper()

	token, err := utils.GenerateJWTToken("study-test", userID, time.Hour, "test-secret")
	require.NoError(t, err)
	return token
}

// newLenientAdapter returns a ServerAdapter mock that accepts any token
// changes. Sync expectations are left to the caller.
func newLenientAdapter(ctrl *gomock.Controller) *mock.MockServerAdapter {
	a := mock.NewMockServerAdapter(ctrl)
	a.EXPECT().SetToken(gomock.Any()).AnyTimes()
	return a
}

// loginAs starts a session for userID.
func loginAs(t *testing.T, sessions SessionService, userID string) {
	t.Helper()

	_, _, err := sessions.Login(context.Background(), newTestToken(t, userID))
	require.NoError(t, err)
}

// steppingClock returns strictly increasing instants one millisecond apart.
type steppingClock struct {
	mu  sync.Mutex
	now time.Time
}

func newSteppingClock() *steppingClock {
	return &steppingClock{now: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *steppingClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(time.Millisecond)
	return c.now
}

// sequentialIDs yields "op-1", "op-2", ...
type sequentialIDs struct {
	mu sync.Mutex
	n  int
}

func (g *sequentialIDs) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return "op-" + strconv.Itoa(g.n)
}

// engine bundles the client services over one real store.
type engine struct {
	store    *store.ClientStorages
	adapter  *mock.MockServerAdapter
	sessions SessionService
	queue    *pendingQueue
	mutate   MutationService
	sync     *clientSyncService
}

func newTestEngine(t *testing.T) *engine {
	t.Helper()

	ctrl := gomock.NewController(t)
	s := newTestStore(t)
	a := newLenientAdapter(ctrl)

	sessions := NewClientSessionService(s, a)
	queue := NewPendingQueue(s, NewOwnershipGuard(sessions)).(*pendingQueue)
	queue.now = newSteppingClock().Now
	queue.ids = &sequentialIDs{}

	return &engine{
		store:    s,
		adapter:  a,
		sessions: sessions,
		queue:    queue,
		mutate:   NewMutationService(queue),
		sync:     NewClientSyncService(s, a).(*clientSyncService),
	}
}
