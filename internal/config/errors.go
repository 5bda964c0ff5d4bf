package config

import "errors"

// Validation errors returned by [ClientConfig.validate] and
// [StubConfig.validate] when required configuration groups are incomplete
// or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid adapter settings
	// (for example, missing base URL or non-positive request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidAuthConfigs indicates missing HR credentials.
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")
	// ErrInvalidHarnessConfigs indicates invalid suite settings
	// (for example, a non-positive case count).
	ErrInvalidHarnessConfigs = errors.New("invalid harness configuration")
	// ErrInvalidStorageConfigs indicates a command that needs the cleanup
	// journal was started without a DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidWorkerConfigs indicates invalid reaper settings.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrInvalidStubConfigs indicates invalid stub catalog settings.
	ErrInvalidStubConfigs = errors.New("invalid stub configuration")
	// ErrInvalidLogConfigs indicates an unknown log level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
	// ErrUnknownCommand indicates an unsupported catalogctl command.
	ErrUnknownCommand = errors.New("unknown command")
)
