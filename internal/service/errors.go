package service

import "errors"

var (
	ErrInvalidEmployee    = errors.New("invalid employee")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmptyEmployeeID    = errors.New("employee id is required")
	ErrNilSession         = errors.New("session is required")
	ErrEmptyToken         = errors.New("login returned an empty token")
)
