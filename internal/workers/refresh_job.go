// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-feed-sync/internal/logger"
)

const defaultRefreshInterval = 10 * time.Minute

// RefreshJob periodically drives the sync coordinator: pending statuses
// are pushed first, then the incremental change feed is applied, then a
// full refresh runs. The first cycle starts immediately on Run; a cycle
// that fails is logged and retried on the next tick, never fatal.
type RefreshJob struct {
	refresher Refresher
	interval  time.Duration
	log       *logger.Logger

	stop chan struct{}
	done sync.WaitGroup
}

// NewRefreshJob builds the periodic refresh worker. A non-positive
// interval falls back to the default.
func NewRefreshJob(refresher Refresher, interval time.Duration, log *logger.Logger) *RefreshJob {
	if interval <= 0 {
		interval = defaultRefreshInterval
	}
	return &RefreshJob{
		refresher: refresher,
		interval:  interval,
		log:       log,
		stop:      make(chan struct{}),
	}
}

// Run starts the refresh loop in its own goroutine and returns.
func (j *RefreshJob) Run() {
	j.done.Add(1)
	go j.loop()
}

// Stop signals the loop to exit and blocks until it has drained.
func (j *RefreshJob) Stop() {
	close(j.stop)
	j.done.Wait()
}

func (j *RefreshJob) loop() {
	defer j.done.Done()

	j.cycle()

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			j.cycle()
		case <-j.stop:
			j.log.Debug().Msg("refresh job stopped")
			return
		}
	}
}

func (j *RefreshJob) cycle() {
	ctx := context.Background()

	if err := j.refresher.SendPendingStatuses(ctx); err != nil {
		j.log.Err(err).Msg("pushing pending statuses failed")
	}
	if err := j.refresher.RefreshChanges(ctx); err != nil {
		j.log.Err(err).Msg("applying change feed failed")
	}
	if err := j.refresher.RefreshAll(ctx); err != nil {
		j.log.Err(err).Msg("full refresh failed")
		return
	}
	j.log.Debug().Msg("refresh cycle finished")
}
