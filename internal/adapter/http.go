package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-employee-catalog/internal/config"
	"github.com/MKhiriev/go-employee-catalog/internal/logger"
	"github.com/MKhiriev/go-employee-catalog/internal/metrics"
	"github.com/MKhiriev/go-employee-catalog/internal/utils"
	"github.com/MKhiriev/go-employee-catalog/models"
	"github.com/go-resty/resty/v2"
)

// Operation names used in errors, logs and metrics labels.
const (
	OpLogin          = "login"
	OpCreateEmployee = "create_employee"
	OpListEmployees  = "list_employees"
	OpGetEmployee    = "get_employee"
	OpUpdateEmployee = "update_employee"
	OpDeleteEmployee = "delete_employee"
)

type httpEmployeeCatalog struct {
	client  *utils.HTTPClient
	metrics *metrics.Metrics
	logger  *logger.Logger
}

// NewHTTPEmployeeCatalog constructs an HTTP/REST implementation of
// [EmployeeCatalog]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying HTTP client with the
// resolved base URL and request timeout. m may be nil.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPEmployeeCatalog(adapterCfg config.ClientAdapter, m *metrics.Metrics, logger *logger.Logger) (EmployeeCatalog, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	timeout := adapterCfg.RequestTimeout
	if timeout <= 0 {
		timeout = config.DefaultRequestTimeout
	}

	return &httpEmployeeCatalog{
		client:  utils.NewHTTPClient(baseURL, timeout),
		metrics: m,
		logger:  logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Login implements [EmployeeCatalog]. POST /hr/login.
func (h *httpEmployeeCatalog) Login(ctx context.Context, creds models.Credentials) (models.Response[models.LoginResponse], error) {
	start := time.Now()
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(creds).
		Post("/hr/login")

	return finish[models.LoginResponse](h, OpLogin, start, resp, err)
}

// CreateEmployee implements [EmployeeCatalog]. POST /employees.
func (h *httpEmployeeCatalog) CreateEmployee(ctx context.Context, token string, employee models.Employee) (models.Response[models.CreateEmployeeResponse], error) {
	start := time.Now()
	resp, err := h.authedRequest(ctx, token).
		SetBody(employee).
		Post("/employees")

	return finish[models.CreateEmployeeResponse](h, OpCreateEmployee, start, resp, err)
}

// ListEmployees implements [EmployeeCatalog]. GET /employees.
func (h *httpEmployeeCatalog) ListEmployees(ctx context.Context, token string) (models.Response[[]models.Employee], error) {
	start := time.Now()
	resp, err := h.authedRequest(ctx, token).
		Get("/employees")

	return finish[[]models.Employee](h, OpListEmployees, start, resp, err)
}

// GetEmployee implements [EmployeeCatalog]. GET /employees/{id}.
func (h *httpEmployeeCatalog) GetEmployee(ctx context.Context, token, employeeID string) (models.Response[models.Employee], error) {
	start := time.Now()
	resp, err := h.authedRequest(ctx, token).
		SetPathParam("employeeId", employeeID).
		Get("/employees/{employeeId}")

	return finish[models.Employee](h, OpGetEmployee, start, resp, err)
}

// UpdateEmployee implements [EmployeeCatalog]. PUT /employees/{id}.
func (h *httpEmployeeCatalog) UpdateEmployee(ctx context.Context, token, employeeID string, employee models.Employee) (models.Response[models.MessageResponse], error) {
	// the path carries the id; the body must not
	employee.EmployeeID = ""

	start := time.Now()
	resp, err := h.authedRequest(ctx, token).
		SetPathParam("employeeId", employeeID).
		SetBody(employee).
		Put("/employees/{employeeId}")

	return finish[models.MessageResponse](h, OpUpdateEmployee, start, resp, err)
}

// DeleteEmployee implements [EmployeeCatalog]. DELETE /employees/{id}.
func (h *httpEmployeeCatalog) DeleteEmployee(ctx context.Context, token, employeeID string) (models.Response[models.MessageResponse], error) {
	start := time.Now()
	resp, err := h.authedRequest(ctx, token).
		SetPathParam("employeeId", employeeID).
		Delete("/employees/{employeeId}")

	return finish[models.MessageResponse](h, OpDeleteEmployee, start, resp, err)
}

func (h *httpEmployeeCatalog) authedRequest(ctx context.Context, token string) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token = strings.TrimSpace(token); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

// finish records metrics and logs for one request, maps transport and status
// failures, and decodes a 2xx body into Data. StatusCode is set whenever a
// response was received.
func finish[T any](h *httpEmployeeCatalog, operation string, start time.Time, resp *resty.Response, reqErr error) (models.Response[T], error) {
	var out models.Response[T]
	elapsed := time.Since(start)

	if reqErr != nil {
		h.metrics.ObserveRequest(operation, 0, elapsed)
		h.logger.Err(reqErr).
			Str("func", "httpEmployeeCatalog."+operation).
			Dur("elapsed", elapsed).
			Msg("catalog request failed without response")
		return out, &TransportError{Operation: operation, Err: reqErr}
	}

	out.StatusCode = resp.StatusCode()
	h.metrics.ObserveRequest(operation, resp.StatusCode(), elapsed)
	h.logger.Debug().
		Str("func", "httpEmployeeCatalog."+operation).
		Str("method", resp.Request.Method).
		Str("url", resp.Request.URL).
		Int("status", resp.StatusCode()).
		Dur("elapsed", elapsed).
		Msg("catalog request done")

	if err := mapHTTPError(operation, resp); err != nil {
		return out, err
	}

	if len(resp.Body()) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(resp.Body(), &out.Data); err != nil {
		return out, fmt.Errorf("%s: decode response: %w", operation, err)
	}

	return out, nil
}
