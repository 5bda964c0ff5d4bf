//nolint:revive // dot imports are standard for Ginkgo
package suites

import (
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/MKhiriev/go-employee-catalog/internal/adapter"
	"github.com/MKhiriev/go-employee-catalog/internal/harness"
	"github.com/MKhiriev/go-employee-catalog/models"
)

var _ = Describe("Employees", func() {
	var existing models.Employee

	// each test gets its own employee and removes it afterwards
	BeforeEach(func() {
		var err error
		existing, _, err = env.CreateEmployee(ctx, session)
		Expect(err).NotTo(HaveOccurred())
		Expect(existing.EmployeeID).NotTo(BeEmpty())

		id := existing.EmployeeID
		DeferCleanup(func() {
			Expect(env.Cleanup(ctx, session, id)).To(Succeed())
		})
	})

	Context("When creating an employee", func() {
		It("should create it and return the stored details", func() {
			created, body, err := env.CreateEmployee(ctx, session)
			Expect(err).NotTo(HaveOccurred())
			DeferCleanup(func() {
				Expect(env.Cleanup(ctx, session, created.EmployeeID)).To(Succeed())
			})

			Expect(body.Message).To(Equal(harness.CreatedMessage))

			resp, err := env.Services.EmployeeService.Get(ctx, session, created.EmployeeID)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(http.StatusOK))
			Expect(resp.Data.FirstName).To(Equal(created.FirstName))
			Expect(resp.Data.SameIdentity(created)).To(BeTrue())
		})
	})

	Context("When updating an employee", func() {
		It("should replace the stored details", func() {
			updated := env.Generator.Employee()

			resp, err := env.Services.EmployeeService.Update(ctx, session, existing.EmployeeID, updated)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(http.StatusOK))

			got, err := env.Services.EmployeeService.Get(ctx, session, existing.EmployeeID)
			Expect(err).NotTo(HaveOccurred())
			Expect(got.Data.FirstName).To(Equal(updated.FirstName))
		})
	})

	Context("When deleting an employee", func() {
		It("should delete it and answer 404 afterwards", func() {
			resp, err := env.Services.EmployeeService.Delete(ctx, session, existing.EmployeeID)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(http.StatusOK))
			Expect(resp.Data.Message).To(Equal(harness.DeletedMessage))

			got, err := env.Services.EmployeeService.Get(ctx, session, existing.EmployeeID)
			Expect(err).To(HaveOccurred())
			Expect(got.StatusCode).To(Equal(http.StatusNotFound))
			Expect(adapter.ErrorMessage(err)).To(Equal(harness.NotFoundMessage))
		})
	})

	Context("When listing employees", func() {
		It("should include the newly created one", func() {
			resp, err := env.Services.EmployeeService.List(ctx, session)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(http.StatusOK))
			Expect(models.ContainsEmployee(resp.Data, existing.EmployeeID)).To(BeTrue())
		})
	})
})
