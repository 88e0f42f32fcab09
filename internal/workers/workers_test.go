// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"bytes"
	"context"
	"database/sql"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-catalog-api/internal/logger"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockWorker counts Run calls and blocks until the context is done.
type mockWorker struct {
	runCount atomic.Int32
}

func (m *mockWorker) Run(ctx context.Context) {
	m.runCount.Add(1)
	<-ctx.Done()
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1, w2, w3 := &mockWorker{}, &mockWorker{}, &mockWorker{}
	ws := NewWorkers(w1, w2, w3)
	require.Equal(t, 3, ws.Len())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		ws.Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool {
		return w1.runCount.Load() == 1 && w2.runCount.Load() == 1 && w3.runCount.Load() == 1
	}, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	// Should return immediately without panicking.
	NewWorkers().Run(context.Background())
	(&Workers{}).Run(context.Background())
}

type statsStub struct {
	calls atomic.Int32
}

func (s *statsStub) Stats() sql.DBStats {
	s.calls.Add(1)
	return sql.DBStats{MaxOpenConnections: 10, OpenConnections: 2, InUse: 1, Idle: 1}
}

type syncBuffer struct {
	mu  chan struct{}
	buf bytes.Buffer
}

func newSyncBuffer() *syncBuffer {
	b := &syncBuffer{mu: make(chan struct{}, 1)}
	return b
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu <- struct{}{}
	defer func() { <-b.mu }()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu <- struct{}{}
	defer func() { <-b.mu }()
	return b.buf.String()
}

func TestPoolStatsWorker_ReportsUntilCancelled(t *testing.T) {
	stats := &statsStub{}
	out := newSyncBuffer()
	log := &logger.Logger{Logger: zerolog.New(out)}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		NewPoolStatsWorker(stats, 5*time.Millisecond, log).Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool { return stats.calls.Load() >= 2 }, time.Second, 5*time.Millisecond)
	cancel()
	<-done

	assert.Contains(t, out.String(), `"max_open":10`)
	assert.Contains(t, out.String(), `"in_use":1`)
	assert.Contains(t, out.String(), "database pool stats")
}

func TestPoolStatsWorker_DisabledInterval(t *testing.T) {
	for _, interval := range []time.Duration{0, -time.Second} {
		stats := &statsStub{}

		// Returns immediately even though the context never ends.
		NewPoolStatsWorker(stats, interval, logger.Nop()).Run(context.Background())

		assert.Zero(t, stats.calls.Load(), "interval %s", interval)
	}
}
