package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-employee-catalog/internal/adapter"
	"github.com/MKhiriev/go-employee-catalog/internal/logger"
	"github.com/MKhiriev/go-employee-catalog/internal/mock"
	"github.com/MKhiriev/go-employee-catalog/internal/validators"
	"github.com/MKhiriev/go-employee-catalog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller) (*authService, *mock.MockEmployeeCatalog) {
	t.Helper()
	mockCatalog := mock.NewMockEmployeeCatalog(ctrl)

	svc := NewAuthService(mockCatalog, validators.NewCatalogValidator(), logger.Nop()).(*authService)
	svc.now = func() time.Time { return time.Date(2026, time.October, 16, 9, 0, 0, 0, time.UTC) }

	return svc, mockCatalog
}

func TestAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockCatalog := newTestAuthSvc(t, ctrl)

	creds := models.Credentials{Username: "admin10", Password: "securePassword"}
	mockCatalog.EXPECT().
		Login(gomock.Any(), creds).
		Return(models.Response[models.LoginResponse]{StatusCode: http.StatusOK, Data: models.LoginResponse{Token: " tok "}}, nil)

	session, err := svc.Login(context.Background(), creds)
	require.NoError(t, err)
	assert.Equal(t, "tok", session.Token())
	assert.Equal(t, "admin10", session.Username())
	assert.Equal(t, svc.now(), session.AcquiredAt())
}

func TestAuthService_Login_EmptyToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockCatalog := newTestAuthSvc(t, ctrl)

	mockCatalog.EXPECT().
		Login(gomock.Any(), gomock.Any()).
		Return(models.Response[models.LoginResponse]{StatusCode: http.StatusOK}, nil)

	_, err := svc.Login(context.Background(), models.Credentials{Username: "admin10", Password: "x"})
	require.ErrorIs(t, err, ErrEmptyToken)
}

func TestAuthService_Login_InvalidCredentialsBeforeIO(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestAuthSvc(t, ctrl)

	_, err := svc.Login(context.Background(), models.Credentials{Username: "admin10"})
	require.ErrorIs(t, err, ErrInvalidCredentials)
	assert.ErrorIs(t, err, validators.ErrEmptyPassword)
}

func TestAuthService_Login_PropagatesUnauthorized(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockCatalog := newTestAuthSvc(t, ctrl)

	rejected := &adapter.RequestError{Operation: adapter.OpLogin, StatusCode: http.StatusUnauthorized, Message: "Invalid credentials"}
	mockCatalog.EXPECT().
		Login(gomock.Any(), gomock.Any()).
		Return(models.Response[models.LoginResponse]{StatusCode: http.StatusUnauthorized}, rejected)

	session, err := svc.Login(context.Background(), models.Credentials{Username: "admin10", Password: "wrong"})
	require.Error(t, err)
	assert.Nil(t, session)
	assert.Equal(t, http.StatusUnauthorized, adapter.StatusCode(err))
	assert.Equal(t, "Invalid credentials", adapter.ErrorMessage(err))
}

func TestNewServices(t *testing.T) {
	ctrl := gomock.NewController(t)
	services := NewServices(mock.NewMockEmployeeCatalog(ctrl), nil, logger.Nop())

	require.NotNil(t, services.AuthService)
	require.NotNil(t, services.EmployeeService)

	_, err := services.EmployeeService.Create(context.Background(), testSession(), models.Employee{})
	assert.ErrorIs(t, err, ErrInvalidEmployee)
}
