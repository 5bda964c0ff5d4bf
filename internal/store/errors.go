package store

import "errors"

var (
	// ErrLeakNotFound is returned when no unresolved journal row matches the
	// given employee id.
	ErrLeakNotFound = errors.New("leaked employee not found")

	// ErrUnsupportedDSN is returned for an empty journal DSN.
	ErrUnsupportedDSN = errors.New("unsupported journal dsn")
)

// Low-level database operation errors. Repository methods wrap the driver
// error with one of these.
var (
	ErrBuildingSQLQuery   = errors.New("error building sql query")
	ErrExecutingQuery     = errors.New("error executing sql query")
	ErrExecutingStatement = errors.New("failed to execute statement")
	ErrScanningRows       = errors.New("failed to scan journal rows")
)
