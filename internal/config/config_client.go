package config

import (
	"fmt"
	"time"
)

// catalogctl commands.
const (
	CommandRun   = "run"
	CommandReap  = "reap"
	CommandWatch = "watch"
)

// ClientAdapter holds network settings used by the catalog transport.
type ClientAdapter struct {
	// HTTPAddress is the catalog base URL.
	HTTPAddress string
	// RequestTimeout is the timeout for every outbound request.
	RequestTimeout time.Duration
}

// ClientAuth holds the HR credentials used to obtain a session.
type ClientAuth struct {
	Username string
	Password string
}

// ClientHarness controls the lifecycle suite.
type ClientHarness struct {
	Cases          int
	Seed           uint64
	SkipAuthChecks bool
}

// ClientDB contains cleanup journal connection settings.
type ClientDB struct {
	// DSN is the SQLite/PostgreSQL connection string. Empty disables the journal.
	DSN string
}

// ClientStorage groups storage backend settings.
type ClientStorage struct {
	DB ClientDB
}

// ClientWorkers contains reaper settings.
type ClientWorkers struct {
	// ReapInterval defines how often the reaper retries leaked records in watch mode.
	ReapInterval time.Duration
	// ReapBatchSize caps the number of records retried per tick.
	ReapBatchSize int
}

// ClientConfig is the catalogctl configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	Command        string
	Adapter        ClientAdapter
	Auth           ClientAuth
	Harness        ClientHarness
	Storage        ClientStorage
	Workers        ClientWorkers
	MetricsAddress string
	LogLevel       string
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to catalogctl, and validates the resulting [ClientConfig]. An
// empty command defaults to [CommandRun].
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig("catalogctl", args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)

	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	command := cfg.Command
	if command == "" {
		command = CommandRun
	}

	return &ClientConfig{
		Command: command,
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Auth: ClientAuth{
			Username: cfg.Auth.Username,
			Password: cfg.Auth.Password,
		},
		Harness: ClientHarness{
			Cases:          cfg.Harness.Cases,
			Seed:           cfg.Harness.Seed,
			SkipAuthChecks: cfg.Harness.SkipAuthChecks,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: cfg.Storage.DB.DSN},
		},
		Workers: ClientWorkers{
			ReapInterval:  cfg.Workers.ReapInterval,
			ReapBatchSize: cfg.Workers.ReapBatchSize,
		},
		MetricsAddress: cfg.Metrics.HTTPAddress,
		LogLevel:       cfg.Log.Level,
	}
}
