package harness

import "errors"

var (
	ErrUnexpectedStatus  = errors.New("unexpected status code")
	ErrMissingEmployeeID = errors.New("create returned no employee id")
	ErrIdentityMismatch  = errors.New("fetched employee does not match the submitted record")
	ErrNotListed         = errors.New("employee missing from list")
	ErrUnexpectedMessage = errors.New("unexpected response message")
	ErrLoginFailed       = errors.New("login failed")
)
