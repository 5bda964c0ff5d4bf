//nolint:revive // dot imports are standard for Ginkgo
package suites

import (
	"net/http"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/MKhiriev/go-employee-catalog/internal/adapter"
	"github.com/MKhiriev/go-employee-catalog/internal/harness"
	"github.com/MKhiriev/go-employee-catalog/models"
)

var _ = Describe("Authentication", func() {
	Context("When listing employees without a valid session", func() {
		It("should reject a request without a token with 401", func() {
			resp, err := env.Services.EmployeeService.List(ctx, models.AnonymousSession())

			Expect(err).To(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(http.StatusUnauthorized))
			Expect(adapter.StatusCode(err)).To(Equal(http.StatusUnauthorized))
		})

		It("should reject a wrong token with 403", func() {
			wrong := models.NewSession(session.Username(), harness.InvalidToken, time.Now())

			resp, err := env.Services.EmployeeService.List(ctx, wrong)

			Expect(err).To(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(http.StatusForbidden))
		})
	})

	Context("When logging in", func() {
		It("should reject a wrong password", func() {
			creds := env.Credentials()
			creds.Password += "-wrong"

			_, err := env.Services.AuthService.Login(ctx, creds)

			Expect(err).To(HaveOccurred())
			Expect(adapter.StatusCode(err)).To(Equal(http.StatusUnauthorized))
		})
	})
})
