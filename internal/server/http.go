package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/go-employee-catalog/internal/logger"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 5 * time.Second
)

type httpServer struct {
	name   string
	server *http.Server
	logger *logger.Logger
}

// NewHTTPServer creates a named HTTP listener on address serving handler.
func NewHTTPServer(name, address string, handler http.Handler, logger *logger.Logger) (Server, error) {
	if address == "" {
		return nil, fmt.Errorf("%s: %w", name, errNoAddress)
	}
	if handler == nil {
		return nil, fmt.Errorf("%s: %w", name, errNoHandler)
	}

	return &httpServer{
		name: name,
		server: &http.Server{
			Addr:              address,
			Handler:           handler,
			ReadHeaderTimeout: readHeaderTimeout,
		},
		logger: logger,
	}, nil
}

func (h *httpServer) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		h.logger.Info().Str("server", h.name).Str("address", h.server.Addr).Msg("listening")
		errCh <- h.server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("%s server: %w", h.name, err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	h.logger.Info().Str("server", h.name).Msg("shutting down")
	if err := h.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("%s server shutdown: %w", h.name, err)
	}
	return nil
}
