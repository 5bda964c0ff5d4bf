package service

import (
	"github.com/MKhiriev/go-employee-catalog/internal/adapter"
	"github.com/MKhiriev/go-employee-catalog/internal/logger"
	"github.com/MKhiriev/go-employee-catalog/internal/metrics"
	"github.com/MKhiriev/go-employee-catalog/internal/validators"
)

type Services struct {
	AuthService     AuthService
	EmployeeService EmployeeService
}

// NewServices wires the auth service and the validated employee service on
// top of catalog. m may be nil.
func NewServices(catalog adapter.EmployeeCatalog, m *metrics.Metrics, logger *logger.Logger) *Services {
	validator := validators.NewCatalogValidator()

	employees := NewEmployeeValidationService(validator).
		Wrap(NewEmployeeService(catalog, m, logger))

	return &Services{
		AuthService:     NewAuthService(catalog, validator, logger),
		EmployeeService: employees,
	}
}
