// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-study-sync/internal/mock"
)

// scriptedPinger returns the scripted results in order and then nil.
type scriptedPinger struct {
	mu      sync.Mutex
	results []error
}

func (p *scriptedPinger) Ping(context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.results) == 0 {
		return nil
	}
	err := p.results[0]
	p.results = p.results[1:]
	return err
}

type onlineRecorder struct {
	seen chan bool
}

func (r *onlineRecorder) NotifyOnline(online bool) { r.seen <- online }

func TestConnectivityMonitor_ReportsEveryProbe(t *testing.T) {
	offline := errors.New("connection refused")
	pinger := &scriptedPinger{results: []error{offline, offline, nil}}
	recorder := &onlineRecorder{seen: make(chan bool, 8)}
	monitor := NewConnectivityMonitor(pinger, recorder, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- monitor.Run(ctx) }()

	var got []bool
	for len(got) < 3 {
		select {
		case v := <-recorder.seen:
			got = append(got, v)
		case <-time.After(time.Second):
			t.Fatalf("only %d probes reported", len(got))
		}
	}
	cancel()
	require.NoError(t, <-done)

	assert.Equal(t, []bool{false, false, true}, got)
	assert.True(t, monitor.Online())
}

func TestConnectivityMonitor_ProbeFeedsScheduler(t *testing.T) {
	ctrl := gomock.NewController(t)
	scheduler := mock.NewMockScheduler(ctrl)

	gomock.InOrder(
		scheduler.EXPECT().NotifyOnline(false),
		scheduler.EXPECT().NotifyOnline(true),
	)

	pinger := &scriptedPinger{results: []error{errors.New("timeout"), nil}}
	monitor := NewConnectivityMonitor(pinger, scheduler, time.Second)

	monitor.probe(context.Background())
	assert.False(t, monitor.Online())
	monitor.probe(context.Background())
	assert.True(t, monitor.Online())
}

func TestConnectivityMonitor_SilentAfterCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	scheduler := mock.NewMockScheduler(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	monitor := NewConnectivityMonitor(&scriptedPinger{results: []error{context.Canceled}}, scheduler, time.Second)
	monitor.probe(ctx)

	assert.False(t, monitor.Online())
}
