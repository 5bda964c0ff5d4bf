package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-employee-catalog/internal/validators"
	"github.com/MKhiriev/go-employee-catalog/models"
)

// EmployeeValidationService rejects invalid records before they reach the
// wrapped service.
type EmployeeValidationService struct {
	inner     EmployeeService
	validator validators.Validator
}

func NewEmployeeValidationService(validator validators.Validator) EmployeeServiceWrapper {
	return &EmployeeValidationService{validator: validator}
}

func (v *EmployeeValidationService) Create(ctx context.Context, session *models.Session, employee models.Employee) (models.Response[models.CreateEmployeeResponse], error) {
	if err := v.validator.Validate(ctx, employee); err != nil {
		return models.Response[models.CreateEmployeeResponse]{}, fmt.Errorf("%w: %w", ErrInvalidEmployee, err)
	}

	return v.inner.Create(ctx, session, employee)
}

func (v *EmployeeValidationService) List(ctx context.Context, session *models.Session) (models.Response[[]models.Employee], error) {
	return v.inner.List(ctx, session)
}

func (v *EmployeeValidationService) Get(ctx context.Context, session *models.Session, employeeID string) (models.Response[models.Employee], error) {
	return v.inner.Get(ctx, session, employeeID)
}

func (v *EmployeeValidationService) Update(ctx context.Context, session *models.Session, employeeID string, employee models.Employee) (models.Response[models.MessageResponse], error) {
	if err := v.validator.Validate(ctx, employee); err != nil {
		return models.Response[models.MessageResponse]{}, fmt.Errorf("%w: %w", ErrInvalidEmployee, err)
	}

	return v.inner.Update(ctx, session, employeeID, employee)
}

func (v *EmployeeValidationService) Delete(ctx context.Context, session *models.Session, employeeID string) (models.Response[models.MessageResponse], error) {
	return v.inner.Delete(ctx, session, employeeID)
}

func (v *EmployeeValidationService) Cleanup(ctx context.Context, session *models.Session, employeeID string) (models.CleanupOutcome, error) {
	return v.inner.Cleanup(ctx, session, employeeID)
}

func (v *EmployeeValidationService) Wrap(wrapped EmployeeService) EmployeeService {
	v.inner = wrapped
	return v
}
