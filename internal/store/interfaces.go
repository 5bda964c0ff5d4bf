package store

import (
	"context"

	"github.com/MKhiriev/go-employee-catalog/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// JournalRepository records employees whose cleanup failed so that a later
// reaper pass can remove them.
type JournalRepository interface {
	// RecordLeak inserts leak. If the employee is already journalled its
	// attempt counter is incremented and the row is reopened.
	RecordLeak(ctx context.Context, leak models.LeakedEmployee) error

	// ListPending returns up to limit unresolved rows, oldest first.
	ListPending(ctx context.Context, limit int) ([]models.LeakedEmployee, error)

	// CountPending returns the number of unresolved rows.
	CountPending(ctx context.Context) (int, error)

	// MarkAttempt records another failed cleanup attempt.
	MarkAttempt(ctx context.Context, employeeID, reason string) error

	// MarkResolved closes the row with a successful outcome.
	MarkResolved(ctx context.Context, employeeID string, outcome models.CleanupOutcome) error
}
