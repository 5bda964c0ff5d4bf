package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-employee-catalog/internal/adapter"
	"github.com/MKhiriev/go-employee-catalog/internal/logger"
	"github.com/MKhiriev/go-employee-catalog/internal/metrics"
	"github.com/MKhiriev/go-employee-catalog/models"
	"github.com/rs/zerolog"
)

type employeeService struct {
	catalog adapter.EmployeeCatalog
	metrics *metrics.Metrics
	logger  *logger.Logger
}

// NewEmployeeService returns the plain forwarding service. Use
// [NewEmployeeValidationService] to reject invalid records before I/O.
func NewEmployeeService(catalog adapter.EmployeeCatalog, m *metrics.Metrics, logger *logger.Logger) EmployeeService {
	return &employeeService{catalog: catalog, metrics: m, logger: logger}
}

func (s *employeeService) Create(ctx context.Context, session *models.Session, employee models.Employee) (models.Response[models.CreateEmployeeResponse], error) {
	if session == nil {
		return models.Response[models.CreateEmployeeResponse]{}, ErrNilSession
	}
	return s.catalog.CreateEmployee(ctx, session.Token(), employee)
}

func (s *employeeService) List(ctx context.Context, session *models.Session) (models.Response[[]models.Employee], error) {
	if session == nil {
		return models.Response[[]models.Employee]{}, ErrNilSession
	}
	return s.catalog.ListEmployees(ctx, session.Token())
}

func (s *employeeService) Get(ctx context.Context, session *models.Session, employeeID string) (models.Response[models.Employee], error) {
	if err := checkCall(session, employeeID); err != nil {
		return models.Response[models.Employee]{}, err
	}
	return s.catalog.GetEmployee(ctx, session.Token(), employeeID)
}

func (s *employeeService) Update(ctx context.Context, session *models.Session, employeeID string, employee models.Employee) (models.Response[models.MessageResponse], error) {
	if err := checkCall(session, employeeID); err != nil {
		return models.Response[models.MessageResponse]{}, err
	}
	return s.catalog.UpdateEmployee(ctx, session.Token(), employeeID, employee)
}

func (s *employeeService) Delete(ctx context.Context, session *models.Session, employeeID string) (models.Response[models.MessageResponse], error) {
	if err := checkCall(session, employeeID); err != nil {
		return models.Response[models.MessageResponse]{}, err
	}
	return s.catalog.DeleteEmployee(ctx, session.Token(), employeeID)
}

func (s *employeeService) Cleanup(ctx context.Context, session *models.Session, employeeID string) (models.CleanupOutcome, error) {
	if err := checkCall(session, employeeID); err != nil {
		return models.CleanupFailed, err
	}

	outcome, err := s.cleanup(ctx, session, employeeID)
	s.metrics.ObserveCleanup(string(outcome))

	level := zerolog.InfoLevel
	if err != nil {
		level = zerolog.WarnLevel
	}
	s.logger.WithLevel(level).Err(err).
		Str("func", "employeeService.Cleanup").
		Str("employee_id", employeeID).
		Str("outcome", string(outcome)).
		Msg("cleanup finished")

	return outcome, err
}

func (s *employeeService) cleanup(ctx context.Context, session *models.Session, employeeID string) (models.CleanupOutcome, error) {
	resp, err := s.catalog.DeleteEmployee(ctx, session.Token(), employeeID)
	switch {
	case err == nil, resp.StatusCode == http.StatusOK:
		return models.CleanupDeleted, nil
	case errors.Is(err, adapter.ErrNotFound):
		return models.CleanupAlreadyAbsent, nil
	default:
		return models.CleanupFailed, fmt.Errorf("cleanup %s: %w", employeeID, err)
	}
}

func checkCall(session *models.Session, employeeID string) error {
	if session == nil {
		return ErrNilSession
	}
	if strings.TrimSpace(employeeID) == "" {
		return ErrEmptyEmployeeID
	}
	return nil
}
