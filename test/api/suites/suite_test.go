//nolint:revive // dot imports are standard for Ginkgo
package suites

import (
	"context"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/MKhiriev/go-employee-catalog/models"
	"github.com/MKhiriev/go-employee-catalog/test/api"
)

var (
	env     *api.Environment
	session *models.Session
	ctx     context.Context
)

var _ = BeforeSuite(func() {
	var err error
	env, err = api.NewEnvironment(api.LoadTestConfig())
	Expect(err).NotTo(HaveOccurred())

	ctx = context.Background()

	// one login for the whole suite
	session, err = env.Login(ctx)
	Expect(err).NotTo(HaveOccurred())
	Expect(session.Token()).NotTo(BeEmpty())
})

var _ = AfterSuite(func() {
	if env != nil {
		env.Close()
	}
})

func TestSuites(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Employee Catalog API Suites")
}
