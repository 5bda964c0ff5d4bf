package server

import "context"

// Server defines the common lifecycle contract for listeners managed by this
// package.
//
// Implementations block in [Server.Run] until ctx is cancelled or the
// listener fails, and shut down gracefully before returning.
type Server interface {
	// Run serves requests until ctx is done. A graceful shutdown returns nil.
	Run(ctx context.Context) error
}
