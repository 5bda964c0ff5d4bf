// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package harness

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/go-employee-catalog/internal/adapter"
	"github.com/MKhiriev/go-employee-catalog/internal/logger"
	"github.com/MKhiriev/go-employee-catalog/internal/metrics"
	"github.com/MKhiriev/go-employee-catalog/internal/service"
	"github.com/MKhiriev/go-employee-catalog/internal/utils"
	"github.com/MKhiriev/go-employee-catalog/models"
)

// LeakRecorder persists employees whose cleanup failed.
type LeakRecorder interface {
	RecordLeak(ctx context.Context, leak models.LeakedEmployee) error
}

// Options configures a [Suite].
type Options struct {
	Credentials models.Credentials

	// Cases is the number of lifecycle cases. Values below 1 run one case.
	Cases int

	// Seed makes generated employees reproducible. Zero means random.
	Seed uint64

	SkipAuthChecks bool
}

// Suite runs the login, the authorization checks and the lifecycle cases
// against one catalog.
type Suite struct {
	auth      service.AuthService
	employees service.EmployeeService
	generator *Generator
	leaks     LeakRecorder
	metrics   *metrics.Metrics
	logger    *logger.Logger
	opts      Options

	newRunID func() string
	now      func() time.Time
}

// NewSuite builds a suite on top of services. leaks and m may be nil.
func NewSuite(services *service.Services, opts Options, leaks LeakRecorder, m *metrics.Metrics, logger *logger.Logger) *Suite {
	if opts.Cases < 1 {
		opts.Cases = 1
	}

	return &Suite{
		auth:      services.AuthService,
		employees: services.EmployeeService,
		generator: NewGenerator(opts.Seed),
		leaks:     leaks,
		metrics:   m,
		logger:    logger,
		opts:      opts,
		newRunID:  utils.NewUUIDGenerator().Generate,
		now:       time.Now,
	}
}

// Run executes the suite and returns its report. A failed stage is recorded
// in the report, not returned. The error is non-nil only when ctx ends
// before every case ran; the partial report is returned with it.
func (s *Suite) Run(ctx context.Context) (*Report, error) {
	report := &Report{RunID: s.newRunID(), StartedAt: s.now()}
	log := s.logger.With().Str("run_id", report.RunID).Logger()
	defer func() { report.Duration = time.Since(report.StartedAt) }()

	var session *models.Session
	report.Login = timeStep(ctx, StageLogin, func(ctx context.Context) (int, error) {
		var err error
		session, err = s.auth.Login(ctx, s.opts.Credentials)
		if err != nil {
			return adapter.StatusCode(err), fmt.Errorf("%w: %w", ErrLoginFailed, err)
		}
		return http.StatusOK, nil
	})
	if !report.Login.Passed() {
		log.Error().Err(report.Login.Err).Msg("login failed, skipping cases")
		return report, ctx.Err()
	}

	if !s.opts.SkipAuthChecks {
		report.AuthChecks = s.authChecks(ctx, session)
	}

	for i := 1; i <= s.opts.Cases; i++ {
		if err := ctx.Err(); err != nil {
			log.Warn().Err(err).Int("completed", i-1).Msg("run interrupted")
			return report, err
		}

		result := s.runCase(ctx, session, report.RunID, i)
		report.Cases = append(report.Cases, result)
		s.metrics.ObserveLifecycle(result.Passed())

		event := log.Info()
		if !result.Passed() {
			event = log.Warn()
		}
		event.Int("case", i).
			Str("employee_id", result.EmployeeID).
			Str("cleanup", string(result.Cleanup)).
			Bool("passed", result.Passed()).
			Msg("case finished")
	}

	return report, nil
}

func (s *Suite) runCase(ctx context.Context, session *models.Session, runID string, index int) CaseResult {
	c := &caseRun{
		employees: s.employees,
		session:   session,
		result:    CaseResult{Index: index},
	}
	c.run(ctx, s.generator.Employee(), s.generator.Employee())

	if c.result.EmployeeID != "" {
		s.cleanup(ctx, session, runID, &c.result)
	}
	return c.result
}

// cleanup removes the case's employee even if ctx was cancelled.
func (s *Suite) cleanup(ctx context.Context, session *models.Session, runID string, result *CaseResult) {
	ctx = context.WithoutCancel(ctx)

	result.Cleanup, result.CleanupErr = s.employees.Cleanup(ctx, session, result.EmployeeID)
	if result.Cleanup != models.CleanupFailed || s.leaks == nil {
		return
	}

	reason := errText(result.CleanupErr)
	err := s.leaks.RecordLeak(ctx, models.LeakedEmployee{
		EmployeeID: result.EmployeeID,
		RunID:      runID,
		Reason:     reason,
		Attempts:   1,
		Outcome:    models.CleanupFailed,
		CreatedAt:  s.now(),
	})
	if err != nil {
		s.logger.Error().Err(err).
			Str("employee_id", result.EmployeeID).
			Msg("failed to journal leaked employee")
		result.CleanupErr = errors.Join(result.CleanupErr, fmt.Errorf("journal: %w", err))
	}
}
