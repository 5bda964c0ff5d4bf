//go:build contract

//nolint:revive // dot imports are standard for Ginkgo
package consumer_test

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/pact-foundation/pact-go/v2/consumer"
	"github.com/pact-foundation/pact-go/v2/matchers"

	"github.com/MKhiriev/go-employee-catalog/internal/adapter"
	"github.com/MKhiriev/go-employee-catalog/internal/config"
	"github.com/MKhiriev/go-employee-catalog/internal/logger"
	"github.com/MKhiriev/go-employee-catalog/models"
)

var testingT *testing.T //nolint:gochecknoglobals

const (
	employeeID  = "0192f3a4-7b1c-7d2e-9f00-1a2b3c4d5e6f"
	bearerToken = "contract-token"
)

func TestContracts(t *testing.T) { //nolint:paralleltest
	testingT = t

	RegisterFailHandler(Fail)
	RunSpecs(t, "Employee Catalog Consumer Contract Suite")
}

func newCatalog(cfg consumer.MockServerConfig) (adapter.EmployeeCatalog, error) {
	url := fmt.Sprintf("http://%s", net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)))

	return adapter.NewHTTPEmployeeCatalog(config.ClientAdapter{
		HTTPAddress:    url,
		RequestTimeout: 5 * time.Second,
	}, nil, logger.Nop())
}

func contractEmployee() models.Employee {
	return models.Employee{
		FirstName:   "Ada",
		LastName:    "Lovelace",
		DateOfBirth: models.NewDate(1990, time.January, 1),
		ContactInfo: models.ContactInfo{
			Email: "ada@example.com",
			Phone: "+12345678901",
			Address: models.Address{
				Street:   "1 Analytical Way",
				Town:     "London",
				PostCode: "SW1A 1AA",
			},
		},
	}
}

func employeeBody() map[string]interface{} {
	return map[string]interface{}{
		"firstName":   matchers.String("Ada"),
		"lastName":    matchers.String("Lovelace"),
		"dateOfBirth": matchers.Regex("1990-01-01", `^\d{4}-\d{2}-\d{2}$`),
		"contactInfo": map[string]interface{}{
			"email": matchers.String("ada@example.com"),
			"phone": matchers.String("+12345678901"),
			"address": map[string]interface{}{
				"street":   matchers.String("1 Analytical Way"),
				"town":     matchers.String("London"),
				"postCode": matchers.String("SW1A 1AA"),
			},
		},
	}
}

func bearer(b *consumer.V4RequestBuilder) {
	b.Header("Authorization", matchers.Regex("Bearer "+bearerToken, `^Bearer .+$`))
}

var _ = Describe("Employee Catalog Contract", func() {
	var (
		pact *consumer.V4HTTPMockProvider
		ctx  context.Context
	)

	BeforeEach(func() {
		var err error
		pact, err = consumer.NewV4Pact(consumer.MockHTTPProviderConfig{
			Consumer: "catalogctl",
			Provider: "employee-catalog",
			PactDir:  "../pacts",
		})
		Expect(err).NotTo(HaveOccurred())
		ctx = context.Background()
	})

	Describe("Login", func() {
		It("issues a token for valid HR credentials", func() {
			pact.AddInteraction().
				Given("HR user admin10 exists").
				UponReceiving("a login request").
				WithRequest("POST", "/hr/login", func(b *consumer.V4RequestBuilder) {
					b.JSONBody(map[string]interface{}{
						"username": matchers.String("admin10"),
						"password": matchers.String("securePassword"),
					})
				}).
				WillRespondWith(http.StatusOK, func(b *consumer.V4ResponseBuilder) {
					b.JSONBody(map[string]interface{}{
						"token": matchers.String(bearerToken),
					})
				})

			test := func(cfg consumer.MockServerConfig) error {
				catalog, err := newCatalog(cfg)
				if err != nil {
					return err
				}

				resp, err := catalog.Login(ctx, models.Credentials{Username: "admin10", Password: "securePassword"})
				if err != nil {
					return fmt.Errorf("login: %w", err)
				}

				Expect(resp.StatusCode).To(Equal(http.StatusOK))
				Expect(resp.Data.Token).NotTo(BeEmpty())
				return nil
			}

			Expect(pact.ExecuteTest(testingT, test)).To(Succeed())
		})
	})

	Describe("Employees", func() {
		It("creates an employee", func() {
			pact.AddInteraction().
				Given("the HR session is valid").
				UponReceiving("a request to create an employee").
				WithRequest("POST", "/employees", func(b *consumer.V4RequestBuilder) {
					bearer(b)
					b.JSONBody(employeeBody())
				}).
				WillRespondWith(http.StatusCreated, func(b *consumer.V4ResponseBuilder) {
					b.JSONBody(map[string]interface{}{
						"employeeId": matchers.String(employeeID),
						"message":    matchers.String("Employee created successfully!"),
					})
				})

			test := func(cfg consumer.MockServerConfig) error {
				catalog, err := newCatalog(cfg)
				if err != nil {
					return err
				}

				resp, err := catalog.CreateEmployee(ctx, bearerToken, contractEmployee())
				if err != nil {
					return fmt.Errorf("create employee: %w", err)
				}

				Expect(resp.StatusCode).To(Equal(http.StatusCreated))
				Expect(resp.Data.EmployeeID).To(Equal(employeeID))
				return nil
			}

			Expect(pact.ExecuteTest(testingT, test)).To(Succeed())
		})

		It("returns an existing employee", func() {
			body := employeeBody()
			body["employeeId"] = matchers.String(employeeID)

			pact.AddInteraction().
				Given("employee " + employeeID + " exists").
				UponReceiving("a request for an existing employee").
				WithRequest("GET", "/employees/"+employeeID, bearer).
				WillRespondWith(http.StatusOK, func(b *consumer.V4ResponseBuilder) {
					b.JSONBody(body)
				})

			test := func(cfg consumer.MockServerConfig) error {
				catalog, err := newCatalog(cfg)
				if err != nil {
					return err
				}

				resp, err := catalog.GetEmployee(ctx, bearerToken, employeeID)
				if err != nil {
					return fmt.Errorf("get employee: %w", err)
				}

				Expect(resp.Data.EmployeeID).To(Equal(employeeID))
				Expect(resp.Data.SameIdentity(contractEmployee())).To(BeTrue())
				return nil
			}

			Expect(pact.ExecuteTest(testingT, test)).To(Succeed())
		})

		It("answers 404 for a missing employee", func() {
			pact.AddInteraction().
				Given("employee " + employeeID + " does not exist").
				UponReceiving("a request for a missing employee").
				WithRequest("GET", "/employees/"+employeeID, bearer).
				WillRespondWith(http.StatusNotFound, func(b *consumer.V4ResponseBuilder) {
					b.JSONBody(map[string]interface{}{
						"message": matchers.String("Employee not found"),
					})
				})

			test := func(cfg consumer.MockServerConfig) error {
				catalog, err := newCatalog(cfg)
				if err != nil {
					return err
				}

				_, err = catalog.GetEmployee(ctx, bearerToken, employeeID)
				Expect(err).To(MatchError(adapter.ErrNotFound))
				Expect(adapter.ErrorMessage(err)).To(Equal("Employee not found"))
				return nil
			}

			Expect(pact.ExecuteTest(testingT, test)).To(Succeed())
		})

		It("deletes an employee", func() {
			pact.AddInteraction().
				Given("employee " + employeeID + " exists").
				UponReceiving("a request to delete an employee").
				WithRequest("DELETE", "/employees/"+employeeID, bearer).
				WillRespondWith(http.StatusOK, func(b *consumer.V4ResponseBuilder) {
					b.JSONBody(map[string]interface{}{
						"message": matchers.String("Employee deleted successfully!"),
					})
				})

			test := func(cfg consumer.MockServerConfig) error {
				catalog, err := newCatalog(cfg)
				if err != nil {
					return err
				}

				resp, err := catalog.DeleteEmployee(ctx, bearerToken, employeeID)
				if err != nil {
					return fmt.Errorf("delete employee: %w", err)
				}

				Expect(resp.Data.Message).To(Equal("Employee deleted successfully!"))
				return nil
			}

			Expect(pact.ExecuteTest(testingT, test)).To(Succeed())
		})

		It("rejects listing without a token", func() {
			pact.AddInteraction().
				Given("the catalog requires authentication").
				UponReceiving("a list request without a token").
				WithRequest("GET", "/employees").
				WillRespondWith(http.StatusUnauthorized)

			test := func(cfg consumer.MockServerConfig) error {
				catalog, err := newCatalog(cfg)
				if err != nil {
					return err
				}

				_, err = catalog.ListEmployees(ctx, "")
				Expect(adapter.StatusCode(err)).To(Equal(http.StatusUnauthorized))
				return nil
			}

			Expect(pact.ExecuteTest(testingT, test)).To(Succeed())
		})
	})
})
