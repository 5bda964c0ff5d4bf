// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport-layer client for the employee
// catalog REST API.
//
// The primary abstraction is [EmployeeCatalog], which decouples the service
// layer and the harness from HTTP. The package ships an HTTP/REST
// implementation ([NewHTTPEmployeeCatalog]) built on resty.
//
// Non-2xx responses are returned as [*RequestError], which unwraps to the
// status sentinels in errors.go so callers can use [errors.Is]
// (e.g. [ErrNotFound] for 404, [ErrForbidden] for 403). Failures that never
// produced a response are returned as [*TransportError].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-employee-catalog/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/employee_catalog_mock.go -package=mock

// EmployeeCatalog is a thin typed wrapper over the catalog endpoints. Each
// call performs exactly one HTTP request: no caching, no retries.
//
// token is sent as "Authorization: Bearer <token>"; an empty token sends no
// Authorization header at all.
type EmployeeCatalog interface {
	// Login exchanges HR credentials for a bearer token (POST /hr/login).
	// A 401 is returned as a *RequestError, not reinterpreted.
	Login(ctx context.Context, creds models.Credentials) (models.Response[models.LoginResponse], error)

	// CreateEmployee creates a record (POST /employees) and returns the
	// server-assigned employeeId on 201.
	CreateEmployee(ctx context.Context, token string, employee models.Employee) (models.Response[models.CreateEmployeeResponse], error)

	// ListEmployees returns every record (GET /employees). The result is
	// unbounded; the API has no pagination.
	ListEmployees(ctx context.Context, token string) (models.Response[[]models.Employee], error)

	// GetEmployee fetches one record (GET /employees/{id}).
	GetEmployee(ctx context.Context, token, employeeID string) (models.Response[models.Employee], error)

	// UpdateEmployee replaces a record in full (PUT /employees/{id}).
	UpdateEmployee(ctx context.Context, token, employeeID string, employee models.Employee) (models.Response[models.MessageResponse], error)

	// DeleteEmployee removes a record (DELETE /employees/{id}). It is not
	// idempotent server-side: a second call yields 404.
	DeleteEmployee(ctx context.Context, token, employeeID string) (models.Response[models.MessageResponse], error)
}
