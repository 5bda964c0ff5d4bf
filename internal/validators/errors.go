package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyFirstName     = errors.New("first name is required")
	ErrEmptyLastName      = errors.New("last name is required")
	ErrInvalidDateOfBirth = errors.New("date of birth must be set and not in the future")
	ErrInvalidEmail       = errors.New("invalid email")
	ErrInvalidPhone       = errors.New("invalid phone number")
	ErrIncompleteAddress  = errors.New("address street, town and post code are required")
	ErrEmptyUsername      = errors.New("username is required")
	ErrEmptyPassword      = errors.New("password is required")
)
