// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-item-sync/internal/connectivity"
	"github.com/MKhiriev/go-item-sync/internal/logger"
)

type syncJob struct {
	syncService ItemSyncService
	oracle      connectivity.Oracle
	interval    time.Duration
	logger      *logger.Logger
}

// NewSyncJob creates a job that calls syncService.Sync on a ticker. Ticks
// are skipped while the oracle reports offline. If interval is zero or
// negative it defaults to 5 minutes.
func NewSyncJob(syncService ItemSyncService, oracle connectivity.Oracle, interval time.Duration, logger *logger.Logger) SyncJob {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &syncJob{
		syncService: syncService,
		oracle:      oracle,
		interval:    interval,
		logger:      logger,
	}
}

// Run returns nil once ctx is done.
func (j *syncJob) Run(ctx context.Context) error {
	t := time.NewTicker(j.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
			j.tick(ctx)
		}
	}
}

func (j *syncJob) tick(ctx context.Context) {
	if !j.oracle.IsOnline() {
		j.logger.Debug().Str("func", "syncJob.tick").Msg("offline, skipping sync")
		return
	}

	report, err := j.syncService.Sync(ctx)
	switch {
	case err == nil:
		j.logger.Debug().Str("func", "syncJob.tick").
			Int("pending", report.Pending).
			Int("merged", report.Merged).
			Msg("background sync done")
	case errors.Is(err, context.Canceled):
	default:
		j.logger.Err(err).Str("func", "syncJob.tick").
			Int("failed", len(report.Failures)).
			Msg("background sync failed")
	}
}
