// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Defaults applied before any other source.
const (
	DefaultCatalogAddress = "https://apisforemployeecatalogmanagementsystem.onrender.com"
	DefaultRequestTimeout = 10 * time.Second
	DefaultHarnessCases   = 1
	DefaultReapInterval   = 5 * time.Minute
	DefaultReapBatchSize  = 50
	DefaultStubAddress    = "localhost:8080"
	DefaultTokenIssuer    = "employee-catalog-stub"
	DefaultTokenDuration  = time.Hour
	DefaultLogLevel       = "info"
	DefaultEnvFile        = ".env"
)

// StructuredConfig is the top-level configuration container. It is populated
// by merging defaults, an optional JSON file, environment variables and
// command-line flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Adapter holds the address and timeout of the remote catalog.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Auth holds the HR credentials used to log in.
	Auth Auth `envPrefix:"AUTH_"`

	// Harness controls the lifecycle suite.
	Harness Harness `envPrefix:"HARNESS_"`

	// Storage holds the cleanup journal connection settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds reaper settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// Stub holds settings of the in-process stub catalog.
	Stub Stub `envPrefix:"STUB_"`

	// Metrics holds the Prometheus listener settings.
	Metrics Metrics `envPrefix:"METRICS_"`

	// Log holds logger settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`

	// EnvFilePath is the optional path to a dotenv file loaded before
	// environment variables are parsed.
	// Populated via the ENV_FILE environment variable or the -env-file flag.
	EnvFilePath string `env:"ENV_FILE"`

	// Command is the first positional command-line argument (run, reap, watch).
	Command string
}

// Adapter holds outbound transport settings.
type Adapter struct {
	// HTTPAddress is the base URL of the catalog. A missing scheme defaults
	// to http://.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Auth holds HR credentials.
type Auth struct {
	// Env: AUTH_USERNAME
	Username string `env:"USERNAME"`
	// Env: AUTH_PASSWORD
	Password string `env:"PASSWORD"`
}

// Harness controls the lifecycle suite run by catalogctl.
type Harness struct {
	// Cases is the number of independent lifecycle cases per run.
	// Env: HARNESS_CASES
	Cases int `env:"CASES"`

	// Seed makes generated payloads reproducible. Zero picks a random seed.
	// Env: HARNESS_SEED
	Seed uint64 `env:"SEED"`

	// SkipAuthChecks disables the 401/403 authorization checks.
	// Env: HARNESS_SKIP_AUTH_CHECKS
	SkipAuthChecks bool `env:"SKIP_AUTH_CHECKS"`
}

// Storage groups persistence settings.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds the cleanup journal connection settings.
type DB struct {
	// DSN is either a SQLite file path or a postgres:// URL. Empty disables
	// the journal.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Workers holds reaper settings.
type Workers struct {
	// Env: WORKERS_REAP_INTERVAL
	ReapInterval time.Duration `env:"REAP_INTERVAL"`
	// Env: WORKERS_REAP_BATCH_SIZE
	ReapBatchSize int `env:"REAP_BATCH_SIZE"`
}

// Stub holds settings of the stub catalog.
type Stub struct {
	// Env: STUB_ADDRESS
	HTTPAddress string `env:"ADDRESS"`
	// Env: STUB_USERNAME
	Username string `env:"USERNAME"`
	// Env: STUB_PASSWORD
	Password string `env:"PASSWORD"`
	// Env: STUB_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`
	// Env: STUB_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`
	// Env: STUB_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`
}

// Metrics holds the Prometheus listener settings.
type Metrics struct {
	// HTTPAddress is where /metrics is served. Empty disables the listener.
	// Env: METRICS_ADDRESS
	HTTPAddress string `env:"ADDRESS"`
}

// Log holds logger settings.
type Log struct {
	// Level is a zerolog level name (debug, info, warn, error).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Adapter: Adapter{
			HTTPAddress:    DefaultCatalogAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Harness: Harness{Cases: DefaultHarnessCases},
		Workers: Workers{
			ReapInterval:  DefaultReapInterval,
			ReapBatchSize: DefaultReapBatchSize,
		},
		Stub: Stub{
			HTTPAddress:   DefaultStubAddress,
			TokenIssuer:   DefaultTokenIssuer,
			TokenDuration: DefaultTokenDuration,
		},
		Log: Log{Level: DefaultLogLevel},
	}
}

// GetStructuredConfig loads and merges the configuration from all sources.
// args are the command-line arguments without the program name.
func GetStructuredConfig(programName string, args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withFlags(programName, args).
		withDotEnv().
		withEnv().
		withJSON().
		build()
}
