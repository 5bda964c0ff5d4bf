package client

import "errors"

var (
	// ErrSuiteFailed is returned by the run command when at least one stage
	// failed or an employee leaked. The report has already been printed.
	ErrSuiteFailed = errors.New("lifecycle suite failed")
	// ErrJournalRequired is returned by reap and watch without a journal.
	ErrJournalRequired = errors.New("cleanup journal is not configured")
)
