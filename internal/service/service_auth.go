package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-employee-catalog/internal/adapter"
	"github.com/MKhiriev/go-employee-catalog/internal/logger"
	"github.com/MKhiriev/go-employee-catalog/internal/validators"
	"github.com/MKhiriev/go-employee-catalog/models"
)

type authService struct {
	catalog   adapter.EmployeeCatalog
	validator validators.Validator
	logger    *logger.Logger
	now       func() time.Time
}

func NewAuthService(catalog adapter.EmployeeCatalog, validator validators.Validator, logger *logger.Logger) AuthService {
	return &authService{catalog: catalog, validator: validator, logger: logger, now: time.Now}
}

func (a *authService) Login(ctx context.Context, creds models.Credentials) (*models.Session, error) {
	if err := a.validator.Validate(ctx, creds); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
	}

	resp, err := a.catalog.Login(ctx, creds)
	if err != nil {
		a.logger.Err(err).Str("func", "authService.Login").Str("username", creds.Username).Msg("login failed")
		return nil, fmt.Errorf("login: %w", err)
	}

	token := strings.TrimSpace(resp.Data.Token)
	if token == "" {
		return nil, ErrEmptyToken
	}

	a.logger.Info().Str("func", "authService.Login").Str("username", creds.Username).Msg("session acquired")

	return models.NewSession(creds.Username, token, a.now()), nil
}
