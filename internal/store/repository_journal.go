// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/MKhiriev/go-employee-catalog/internal/logger"
	"github.com/MKhiriev/go-employee-catalog/models"
	sq "github.com/Masterminds/squirrel"
	"github.com/sethvargo/go-retry"
)

const (
	journalTable = "leaked_employees"

	// upsertLeakSuffix reopens a resolved row and counts the new attempt.
	upsertLeakSuffix = `ON CONFLICT (employee_id) DO UPDATE SET
		attempts = leaked_employees.attempts + 1,
		run_id = excluded.run_id,
		reason = excluded.reason,
		outcome = excluded.outcome,
		resolved_at = NULL`

	defaultRetryDelay = 100 * time.Millisecond
)

var journalColumns = []string{"employee_id", "run_id", "reason", "attempts", "outcome", "created_at", "resolved_at"}

// journalRepository is the SQL implementation of [JournalRepository]. A
// write that fails with a retryable driver error is attempted once more.
type journalRepository struct {
	db         *DB
	logger     *logger.Logger
	retryDelay time.Duration
	now        func() time.Time
}

func NewJournalRepository(db *DB, logger *logger.Logger) JournalRepository {
	logger.Debug().Msg("creating journal repository")
	return &journalRepository{
		db:         db,
		logger:     logger,
		retryDelay: defaultRetryDelay,
		now:        time.Now,
	}
}

func (r *journalRepository) RecordLeak(ctx context.Context, leak models.LeakedEmployee) error {
	if leak.CreatedAt.IsZero() {
		leak.CreatedAt = r.now()
	}
	if leak.Attempts < 1 {
		leak.Attempts = 1
	}
	if leak.Outcome == "" {
		leak.Outcome = models.CleanupFailed
	}

	query := r.db.builder().
		Insert(journalTable).
		Columns("employee_id", "run_id", "reason", "attempts", "outcome", "created_at").
		Values(leak.EmployeeID, leak.RunID, leak.Reason, leak.Attempts, string(leak.Outcome), leak.CreatedAt.UTC()).
		Suffix(upsertLeakSuffix)

	if _, err := r.exec(ctx, "RecordLeak", query); err != nil {
		return err
	}

	r.logger.Info().
		Str("func", "*journalRepository.RecordLeak").
		Str("employee_id", leak.EmployeeID).
		Str("run_id", leak.RunID).
		Msg("leaked employee journalled")
	return nil
}

func (r *journalRepository) ListPending(ctx context.Context, limit int) ([]models.LeakedEmployee, error) {
	log := logger.FromContext(ctx)

	builder := r.db.builder().
		Select(journalColumns...).
		From(journalTable).
		Where(sq.Eq{"resolved_at": nil}).
		OrderBy("created_at ASC")
	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*journalRepository.ListPending").Msg("error querying pending leaks")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var leaks []models.LeakedEmployee
	for rows.Next() {
		var (
			leak       models.LeakedEmployee
			outcome    string
			resolvedAt sql.NullTime
		)
		if err = rows.Scan(&leak.EmployeeID, &leak.RunID, &leak.Reason, &leak.Attempts, &outcome, &leak.CreatedAt, &resolvedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		leak.Outcome = models.CleanupOutcome(outcome)
		if resolvedAt.Valid {
			leak.ResolvedAt = &resolvedAt.Time
		}
		leaks = append(leaks, leak)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return leaks, nil
}

func (r *journalRepository) CountPending(ctx context.Context) (int, error) {
	query, args, err := r.db.builder().
		Select("COUNT(*)").
		From(journalTable).
		Where(sq.Eq{"resolved_at": nil}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*journalRepository.CountPending").Msg("error counting pending leaks")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return count, nil
}

func (r *journalRepository) MarkAttempt(ctx context.Context, employeeID, reason string) error {
	query := r.db.builder().
		Update(journalTable).
		Set("attempts", sq.Expr("attempts + 1")).
		Set("reason", reason).
		Set("outcome", string(models.CleanupFailed)).
		Where(sq.Eq{"employee_id": employeeID, "resolved_at": nil})

	return r.execOne(ctx, "MarkAttempt", query)
}

func (r *journalRepository) MarkResolved(ctx context.Context, employeeID string, outcome models.CleanupOutcome) error {
	query := r.db.builder().
		Update(journalTable).
		Set("outcome", string(outcome)).
		Set("resolved_at", r.now().UTC()).
		Where(sq.Eq{"employee_id": employeeID, "resolved_at": nil})

	return r.execOne(ctx, "MarkResolved", query)
}

// execOne runs query and fails with ErrLeakNotFound if no row changed.
func (r *journalRepository) execOne(ctx context.Context, op string, query sq.Sqlizer) error {
	res, err := r.exec(ctx, op, query)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrLeakNotFound
	}
	return nil
}

func (r *journalRepository) exec(ctx context.Context, op string, query sq.Sqlizer) (sql.Result, error) {
	log := logger.FromContext(ctx)

	stmt, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var res sql.Result
	backoff := retry.WithMaxRetries(1, retry.NewConstant(r.retryDelay))
	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		var execErr error
		res, execErr = r.db.ExecContext(ctx, stmt, args...)
		if execErr != nil && r.db.errorClassificator.Classify(execErr) == Retryable {
			log.Warn().Err(execErr).Str("func", "*journalRepository."+op).Msg("retryable journal error")
			return retry.RetryableError(execErr)
		}
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", "*journalRepository."+op).Msg("error executing journal statement")
		return nil, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return res, nil
}
