package stub

import "errors"

var (
	ErrEmployeeNotFound    = errors.New("employee not found")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrMissingToken        = errors.New("missing access token")
	ErrInvalidToken        = errors.New("invalid access token")
	ErrMalformedBody       = errors.New("malformed request body")
	ErrIncompleteStubSetup = errors.New("stub requires username, password and token sign key")
)

// Response messages. They match the remote catalog byte for byte.
const (
	MsgInvalidCredentials = "Invalid credentials"
	MsgEmployeeCreated    = "Employee created successfully!"
	MsgEmployeeUpdated    = "Employee updated successfully!"
	MsgEmployeeDeleted    = "Employee deleted successfully!"
	MsgEmployeeNotFound   = "Employee not found"
	MsgMissingToken       = "Access token is missing"
	MsgInvalidToken       = "Invalid or expired token"
)
