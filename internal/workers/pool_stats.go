// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-catalog-api/internal/logger"
)

// PoolStatsWorker periodically logs the state of the database connection
// pool.
type PoolStatsWorker struct {
	db       StatsProvider
	interval time.Duration
	logger   *logger.Logger
}

func NewPoolStatsWorker(db StatsProvider, interval time.Duration, logger *logger.Logger) *PoolStatsWorker {
	return &PoolStatsWorker{db: db, interval: interval, logger: logger}
}

// Run logs pool statistics every interval. A non-positive interval disables
// the worker.
func (p *PoolStatsWorker) Run(ctx context.Context) {
	if p.interval <= 0 {
		return
	}

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.report()
		}
	}
}

func (p *PoolStatsWorker) report() {
	stats := p.db.Stats()
	p.logger.Info().
		Str("func", "*PoolStatsWorker.report").
		Int("max_open", stats.MaxOpenConnections).
		Int("open", stats.OpenConnections).
		Int("in_use", stats.InUse).
		Int("idle", stats.Idle).
		Int64("wait_count", stats.WaitCount).
		Dur("wait_duration", stats.WaitDuration).
		Msg("database pool stats")
}
