// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-employee-catalog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func fixedValidator() *CatalogValidator {
	return &CatalogValidator{now: func() time.Time {
		return time.Date(2026, time.October, 16, 12, 0, 0, 0, time.UTC)
	}}
}

func validEmployee() models.Employee {
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

// ---------------------------------------------------------------------------
// Dispatch
// ---------------------------------------------------------------------------

func TestValidate_Dispatch(t *testing.T) {
	v := NewCatalogValidator()
	ctx := context.Background()

	t.Run("unsupported type", func(t *testing.T) {
		require.ErrorIs(t, v.Validate(ctx, "a string"), ErrUnsupportedType)
	})

	t.Run("nil employee pointer", func(t *testing.T) {
		var e *models.Employee
		require.ErrorIs(t, v.Validate(ctx, e), ErrUnsupportedType)
	})

	t.Run("employee value", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, validEmployee()))
	})

	t.Run("employee pointer", func(t *testing.T) {
		e := validEmployee()
		require.NoError(t, v.Validate(ctx, &e))
	})

	t.Run("credentials", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, models.Credentials{Username: "admin10", Password: "securePassword"}))
	})

	t.Run("unknown field", func(t *testing.T) {
		require.ErrorIs(t, v.Validate(ctx, validEmployee(), "salary"), ErrUnknownField)
	})
}

// ---------------------------------------------------------------------------
// Employee rules
// ---------------------------------------------------------------------------

func TestValidateEmployee(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(e *models.Employee)
		want   error
	}{
		{"blank first name", func(e *models.Employee) { e.FirstName = "  " }, ErrEmptyFirstName},
		{"missing last name", func(e *models.Employee) { e.LastName = "" }, ErrEmptyLastName},
		{"zero date of birth", func(e *models.Employee) { e.DateOfBirth = models.Date{} }, ErrInvalidDateOfBirth},
		{"future date of birth", func(e *models.Employee) { e.DateOfBirth = models.NewDate(2030, time.May, 1) }, ErrInvalidDateOfBirth},
		{"email without at", func(e *models.Employee) { e.ContactInfo.Email = "ada.example.com" }, ErrInvalidEmail},
		{"email with display name", func(e *models.Employee) { e.ContactInfo.Email = "Ada <ada@example.com>" }, ErrInvalidEmail},
		{"email without domain dot", func(e *models.Employee) { e.ContactInfo.Email = "ada@localhost" }, ErrInvalidEmail},
		{"phone with letters", func(e *models.Employee) { e.ContactInfo.Phone = "+1234abc890" }, ErrInvalidPhone},
		{"phone too short", func(e *models.Employee) { e.ContactInfo.Phone = "+123" }, ErrInvalidPhone},
		{"missing street", func(e *models.Employee) { e.ContactInfo.Address.Street = "" }, ErrIncompleteAddress},
		{"missing town", func(e *models.Employee) { e.ContactInfo.Address.Town = "" }, ErrIncompleteAddress},
		{"missing post code", func(e *models.Employee) { e.ContactInfo.Address.PostCode = " " }, ErrIncompleteAddress},
	}

	v := fixedValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := validEmployee()
			tt.mutate(&e)

			err := v.Validate(context.Background(), e)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestValidateEmployee_PhoneLength(t *testing.T) {
	v := fixedValidator()
	for phone, valid := range map[string]bool{
		"123456":            false,
		"1234567":           true,
		"+123456789012345":  true,
		"1234567890123456":  false,
		"+1234567890123456": false,
	} {
		e := validEmployee()
		e.ContactInfo.Phone = phone

		err := v.Validate(context.Background(), e, FieldPhone)
		if valid {
			assert.NoError(t, err, phone)
		} else {
			assert.ErrorIs(t, err, ErrInvalidPhone, phone)
		}
	}
}

func TestValidateEmployee_FieldScoping(t *testing.T) {
	v := fixedValidator()
	e := validEmployee()
	e.ContactInfo.Phone = "nope"

	assert.NoError(t, v.Validate(context.Background(), e, FieldFirstName, FieldLastName))
	assert.ErrorIs(t, v.Validate(context.Background(), e, FieldPhone), ErrInvalidPhone)
}

func TestValidateEmployee_BirthdayToday(t *testing.T) {
	v := fixedValidator()
	e := validEmployee()
	e.DateOfBirth = models.NewDate(2026, time.October, 16)

	assert.NoError(t, v.Validate(context.Background(), e))
}

// ---------------------------------------------------------------------------
// Credentials rules
// ---------------------------------------------------------------------------

func TestValidateCredentials(t *testing.T) {
	v := NewCatalogValidator()
	ctx := context.Background()

	assert.ErrorIs(t, v.Validate(ctx, models.Credentials{Password: "x"}), ErrEmptyUsername)
	assert.ErrorIs(t, v.Validate(ctx, &models.Credentials{Username: "admin10"}), ErrEmptyPassword)
	assert.NoError(t, v.Validate(ctx, models.Credentials{Username: "admin10"}, FieldUsername))
}
