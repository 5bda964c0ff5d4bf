// Package server runs the HTTP listeners of the catalog tools.
//
// It owns the listen/serve/shutdown lifecycle shared by the stub catalog and
// the Prometheus /metrics endpoint, so both stop gracefully when their
// context is cancelled.
package server
