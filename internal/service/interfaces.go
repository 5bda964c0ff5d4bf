// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the catalog use cases on top of
// [adapter.EmployeeCatalog]: acquiring an HR session, forwarding employee
// operations with that session, and best-effort cleanup.
package service

import (
	"context"

	"github.com/MKhiriev/go-employee-catalog/models"
)

//go:generate mockgen -destination=../mock/service_mock.go -package=mock github.com/MKhiriev/go-employee-catalog/internal/service AuthService,EmployeeService

// AuthService acquires HR sessions.
type AuthService interface {
	// Login validates creds client-side, exchanges them for a token and
	// returns an immutable session. An empty token is rejected with
	// ErrEmptyToken.
	Login(ctx context.Context, creds models.Credentials) (*models.Session, error)
}

// EmployeeService forwards catalog operations using the session's token.
// The session is never mutated and may be shared by many callers.
type EmployeeService interface {
	Create(ctx context.Context, session *models.Session, employee models.Employee) (models.Response[models.CreateEmployeeResponse], error)
	List(ctx context.Context, session *models.Session) (models.Response[[]models.Employee], error)
	Get(ctx context.Context, session *models.Session, employeeID string) (models.Response[models.Employee], error)
	Update(ctx context.Context, session *models.Session, employeeID string, employee models.Employee) (models.Response[models.MessageResponse], error)
	Delete(ctx context.Context, session *models.Session, employeeID string) (models.Response[models.MessageResponse], error)

	// Cleanup deletes employeeID on a best-effort basis. A 200 yields
	// CleanupDeleted and a 404 yields CleanupAlreadyAbsent, both with a nil
	// error; anything else yields CleanupFailed and the cause.
	Cleanup(ctx context.Context, session *models.Session, employeeID string) (models.CleanupOutcome, error)
}

// EmployeeServiceWrapper defines middleware composition for EmployeeService.
// Implementations wrap an existing EmployeeService to add behavior such as
// validation.
type EmployeeServiceWrapper interface {
	Wrap(EmployeeService) EmployeeService
}
