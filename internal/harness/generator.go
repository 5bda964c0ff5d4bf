package harness

import (
	"context"
	"time"

	"github.com/MKhiriev/go-employee-catalog/internal/validators"
	"github.com/MKhiriev/go-employee-catalog/models"
	"github.com/brianvoe/gofakeit/v7"
	"github.com/tamathecxder/randomail"
)

// Dates of birth fall in the 30 years before this instant.
var birthRangeEnd = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

const maxGenerateAttempts = 10

// Generator produces synthetic employees. A Generator is not safe for
// concurrent use.
type Generator struct {
	faker     *gofakeit.Faker
	seeded    bool
	validator validators.Validator
}

// NewGenerator returns a generator seeded with seed. The same non-zero seed
// yields the same sequence of employees; zero picks a random seed.
func NewGenerator(seed uint64) *Generator {
	return &Generator{
		faker:     gofakeit.New(seed),
		seeded:    seed != 0,
		validator: validators.NewCatalogValidator(),
	}
}

// Employee returns a record that passes validation.
func (g *Generator) Employee() models.Employee {
	var e models.Employee
	for range maxGenerateAttempts {
		e = g.employee()
		if g.validator.Validate(context.Background(), e) == nil {
			return e
		}
	}
	// faker's own email is always well-formed
	e.ContactInfo.Email = g.faker.Email()
	return e
}

func (g *Generator) employee() models.Employee {
	f := g.faker
	dob := f.DateRange(birthRangeEnd.AddDate(-30, 0, 0), birthRangeEnd.AddDate(0, 0, -1))

	return models.Employee{
		FirstName:   f.FirstName(),
		LastName:    f.LastName(),
		DateOfBirth: models.DateOf(dob),
		ContactInfo: models.ContactInfo{
			Email: g.email(),
			Phone: f.Numerify("+###########"),
			Address: models.Address{
				Street:   f.Street(),
				Town:     f.City(),
				PostCode: f.Zip(),
			},
		},
	}
}

// email keeps seeded runs reproducible; unseeded runs use randomail.
func (g *Generator) email() string {
	if g.seeded {
		return g.faker.Email()
	}
	return randomail.GenerateRandomEmail()
}
