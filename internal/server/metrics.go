// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"net/http"

	"github.com/MKhiriev/go-employee-catalog/internal/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsPath is where the Prometheus exposition is served.
const MetricsPath = "/metrics"

// NewMetricsServer serves the instruments gathered by gatherer on
// address+[MetricsPath].
func NewMetricsServer(address string, gatherer prometheus.Gatherer, logger *logger.Logger) (Server, error) {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Method(http.MethodGet, MetricsPath, promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	return NewHTTPServer("metrics", address, router, logger)
}
