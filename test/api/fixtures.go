package api

import (
	"context"
	"fmt"
	"net/http/httptest"

	"github.com/MKhiriev/go-employee-catalog/internal/adapter"
	"github.com/MKhiriev/go-employee-catalog/internal/config"
	"github.com/MKhiriev/go-employee-catalog/internal/harness"
	"github.com/MKhiriev/go-employee-catalog/internal/logger"
	"github.com/MKhiriev/go-employee-catalog/internal/metrics"
	"github.com/MKhiriev/go-employee-catalog/internal/service"
	"github.com/MKhiriev/go-employee-catalog/internal/stub"
	"github.com/MKhiriev/go-employee-catalog/models"
	"github.com/prometheus/client_golang/prometheus"
)

const stubSignKey = "api-suite-stub-key"

// Environment is the catalog the suites run against.
type Environment struct {
	Config    *TestConfig
	Services  *service.Services
	Generator *harness.Generator
	BaseURL   string

	close func()
}

// NewEnvironment connects to cfg.BaseURL, or starts a stub catalog when it
// is empty. Close must be called when the suite ends.
func NewEnvironment(cfg *TestConfig) (*Environment, error) {
	env := &Environment{
		Config:    cfg,
		Generator: harness.NewGenerator(0),
		BaseURL:   cfg.BaseURL,
		close:     func() {},
	}

	if cfg.UseStub() {
		h, err := stub.NewHandler(config.StubConfig{
			Username:     cfg.Username,
			Password:     cfg.Password,
			TokenSignKey: stubSignKey,
		}, logger.Nop())
		if err != nil {
			return nil, fmt.Errorf("starting stub catalog: %w", err)
		}

		srv := httptest.NewServer(h.Init())
		env.BaseURL = srv.URL
		env.close = srv.Close
	}

	m := metrics.NewMetrics(prometheus.NewRegistry())
	catalog, err := adapter.NewHTTPEmployeeCatalog(config.ClientAdapter{
		HTTPAddress:    env.BaseURL,
		RequestTimeout: cfg.RequestTimeout,
	}, m, logger.Nop())
	if err != nil {
		env.close()
		return nil, fmt.Errorf("creating catalog adapter: %w", err)
	}

	env.Services = service.NewServices(catalog, m, logger.Nop())
	return env, nil
}

// Close stops the stub catalog, if one was started.
func (e *Environment) Close() {
	e.close()
}

// Credentials returns the configured HR credentials.
func (e *Environment) Credentials() models.Credentials {
	return models.Credentials{Username: e.Config.Username, Password: e.Config.Password}
}

// Login opens an HR session.
func (e *Environment) Login(ctx context.Context) (*models.Session, error) {
	return e.Services.AuthService.Login(ctx, e.Credentials())
}

// CreateEmployee creates a generated employee and returns it with the id
// the catalog assigned.
func (e *Environment) CreateEmployee(ctx context.Context, session *models.Session) (models.Employee, models.CreateEmployeeResponse, error) {
	employee := e.Generator.Employee()

	resp, err := e.Services.EmployeeService.Create(ctx, session, employee)
	if err != nil {
		return employee, resp.Data, fmt.Errorf("creating employee: %w", err)
	}

	employee.EmployeeID = resp.Data.EmployeeID
	return employee, resp.Data, nil
}

// Cleanup deletes employeeID, treating an already absent employee as done.
func (e *Environment) Cleanup(ctx context.Context, session *models.Session, employeeID string) error {
	outcome, err := e.Services.EmployeeService.Cleanup(ctx, session, employeeID)
	if err != nil {
		return fmt.Errorf("cleanup of %s ended %s: %w", employeeID, outcome, err)
	}
	return nil
}
