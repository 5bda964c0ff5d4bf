// Package workers runs background jobs of the catalog client. The only job
// today is the reaper, which retries cleanups recorded in the journal.
package workers

import "context"

// Worker is a background job with an explicit lifecycle.
//
// Start launches the job and returns immediately. Stop cancels it and
// blocks until it has exited. Both are safe to call more than once.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}
