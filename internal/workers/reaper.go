// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-employee-catalog/internal/config"
	"github.com/MKhiriev/go-employee-catalog/internal/logger"
	"github.com/MKhiriev/go-employee-catalog/internal/metrics"
	"github.com/MKhiriev/go-employee-catalog/internal/service"
	"github.com/MKhiriev/go-employee-catalog/internal/store"
	"github.com/MKhiriev/go-employee-catalog/models"
)

// ReapStats summarises one reaper pass.
type ReapStats struct {
	Pending  int
	Resolved int
	Failed   int
}

// ReapJob retries the cleanup of journalled employees. Employees that are
// deleted or already absent are marked resolved; the others get another
// attempt recorded.
type ReapJob struct {
	auth      service.AuthService
	employees service.EmployeeService
	journal   store.JournalRepository
	creds     models.Credentials
	interval  time.Duration
	batchSize int
	metrics   *metrics.Metrics
	logger    *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewReapJob creates a reaper that is idle until Start or ReapOnce is
// called. m may be nil.
func NewReapJob(services *service.Services, journal store.JournalRepository, creds models.Credentials, cfg config.ClientWorkers, m *metrics.Metrics, logger *logger.Logger) *ReapJob {
	return &ReapJob{
		auth:      services.AuthService,
		employees: services.EmployeeService,
		journal:   journal,
		creds:     creds,
		interval:  cfg.ReapInterval,
		batchSize: cfg.ReapBatchSize,
		metrics:   m,
		logger:    logger,
	}
}

// ReapOnce runs a single pass over up to batchSize pending rows. It logs in
// only when there is something to reap. Journal write failures do not stop
// the pass; they are joined into the returned error. The pending gauge is set
// from the whole journal, not from the batch.
func (j *ReapJob) ReapOnce(ctx context.Context) (ReapStats, error) {
	var stats ReapStats

	pending, err := j.journal.ListPending(ctx, j.batchSize)
	if err != nil {
		return stats, fmt.Errorf("list pending leaks: %w", err)
	}
	stats.Pending = len(pending)
	if stats.Pending == 0 {
		j.metrics.SetLeaksPending(0)
		return stats, nil
	}

	session, err := j.auth.Login(ctx, j.creds)
	if err != nil {
		return stats, fmt.Errorf("reaper login: %w", err)
	}

	var errs []error
	for _, leak := range pending {
		if err = ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}

		outcome, cleanupErr := j.employees.Cleanup(ctx, session, leak.EmployeeID)
		if outcome.Succeeded() {
			if err = j.journal.MarkResolved(ctx, leak.EmployeeID, outcome); err != nil {
				errs = append(errs, fmt.Errorf("resolve %s: %w", leak.EmployeeID, err))
				continue
			}
			stats.Resolved++
			continue
		}

		stats.Failed++
		reason := string(outcome)
		if cleanupErr != nil {
			reason = cleanupErr.Error()
		}
		if err = j.journal.MarkAttempt(ctx, leak.EmployeeID, reason); err != nil {
			errs = append(errs, fmt.Errorf("record attempt %s: %w", leak.EmployeeID, err))
		}
	}

	// the batch may be capped, so the backlog is counted from the journal
	if ctx.Err() == nil {
		left, countErr := j.journal.CountPending(ctx)
		if countErr != nil {
			errs = append(errs, fmt.Errorf("count pending leaks: %w", countErr))
		} else {
			j.metrics.SetLeaksPending(left)
		}
	}
	return stats, errors.Join(errs...)
}

// Start stops any running loop, then reaps once right away and again on
// every tick until ctx is cancelled or Stop is called. A non-positive
// interval defaults to config.DefaultReapInterval.
func (j *ReapJob) Start(ctx context.Context) {
	interval := j.interval
	if interval <= 0 {
		interval = config.DefaultReapInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			j.tick(jobCtx)

			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
			}
		}
	}()
}

// Stop cancels the loop and waits for it to exit. It is a no-op when the
// job is not running.
func (j *ReapJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

func (j *ReapJob) tick(ctx context.Context) {
	stats, err := j.ReapOnce(ctx)
	if err != nil && ctx.Err() == nil {
		j.logger.Err(err).Str("func", "*ReapJob.tick").Msg("reaper pass failed")
	}
	j.logger.Info().
		Str("func", "*ReapJob.tick").
		Int("pending", stats.Pending).
		Int("resolved", stats.Resolved).
		Int("failed", stats.Failed).
		Msg("reaper pass finished")
}
