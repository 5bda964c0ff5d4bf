// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// CleanupOutcome is the result of a best-effort delete.
type CleanupOutcome string

const (
	// CleanupDeleted means the delete call returned 200.
	CleanupDeleted CleanupOutcome = "deleted"

	// CleanupAlreadyAbsent means the delete call returned 404. It counts as
	// success: the record is gone either way.
	CleanupAlreadyAbsent CleanupOutcome = "already_absent"

	// CleanupFailed covers every other status and transport failures.
	CleanupFailed CleanupOutcome = "failed"
)

// Succeeded reports whether the outcome leaves the catalog clean.
func (o CleanupOutcome) Succeeded() bool {
	return o == CleanupDeleted || o == CleanupAlreadyAbsent
}

// LeakedEmployee is a journal entry for an employee created by the harness
// whose cleanup did not succeed.
type LeakedEmployee struct {
	EmployeeID string
	RunID      string
	Reason     string
	Attempts   int
	Outcome    CleanupOutcome
	CreatedAt  time.Time
	ResolvedAt *time.Time
}
