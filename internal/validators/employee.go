package validators

import (
	"context"
	"net/mail"
	"regexp"
	"strings"
	"time"

	"github.com/MKhiriev/go-employee-catalog/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldFirstName   = "first_name"
	FieldLastName    = "last_name"
	FieldDateOfBirth = "date_of_birth"
	FieldEmail       = "email"
	FieldPhone       = "phone"
	FieldAddress     = "address"

	FieldUsername = "username"
	FieldPassword = "password"
)

var employeeFields = []string{FieldFirstName, FieldLastName, FieldDateOfBirth, FieldEmail, FieldPhone, FieldAddress}

// phonePattern accepts an optional leading "+" followed by 7 to 15 digits.
var phonePattern = regexp.MustCompile(`^\+?[0-9]{7,15}$`)

// CatalogValidator implements [Validator] for models.Employee and
// models.Credentials, by value or by pointer.
type CatalogValidator struct {
	now func() time.Time
}

// NewCatalogValidator constructs a CatalogValidator that judges dates of
// birth against the wall clock.
func NewCatalogValidator() Validator {
	return &CatalogValidator{now: time.Now}
}

// Validate dispatches on the dynamic type of obj. Without fields, every
// field of the type is checked. The first failing rule is returned.
func (v *CatalogValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Employee:
		return v.validateEmployee(ctx, value, fields...)
	case *models.Employee:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateEmployee(ctx, *value, fields...)

	case models.Credentials:
		return v.validateCredentials(ctx, value, fields...)
	case *models.Credentials:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateCredentials(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *CatalogValidator) validateEmployee(_ context.Context, e models.Employee, fields ...string) error {
	if len(fields) == 0 {
		fields = employeeFields
	}

	for _, f := range fields {
		switch f {
		case FieldFirstName:
			if strings.TrimSpace(e.FirstName) == "" {
				return ErrEmptyFirstName
			}
		case FieldLastName:
			if strings.TrimSpace(e.LastName) == "" {
				return ErrEmptyLastName
			}
		case FieldDateOfBirth:
			if e.DateOfBirth.IsZero() || e.DateOfBirth.After(v.now()) {
				return ErrInvalidDateOfBirth
			}
		case FieldEmail:
			if !isValidEmail(e.ContactInfo.Email) {
				return ErrInvalidEmail
			}
		case FieldPhone:
			if !phonePattern.MatchString(e.ContactInfo.Phone) {
				return ErrInvalidPhone
			}
		case FieldAddress:
			a := e.ContactInfo.Address
			if strings.TrimSpace(a.Street) == "" || strings.TrimSpace(a.Town) == "" || strings.TrimSpace(a.PostCode) == "" {
				return ErrIncompleteAddress
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *CatalogValidator) validateCredentials(_ context.Context, c models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if strings.TrimSpace(c.Username) == "" {
				return ErrEmptyUsername
			}
		case FieldPassword:
			if c.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// isValidEmail accepts a bare RFC 5322 address without a display name.
func isValidEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	if err != nil {
		return false
	}
	return addr.Address == s && strings.Contains(addr.Address[strings.LastIndex(addr.Address, "@")+1:], ".")
}
