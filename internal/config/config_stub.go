package config

import (
	"fmt"
	"time"
)

// StubConfig is the catalog-stub configuration assembled from
// [StructuredConfig].
type StubConfig struct {
	// HTTPAddress is the listen address, e.g. "localhost:8080".
	HTTPAddress string
	// Username and Password are the only credentials the stub accepts.
	Username string
	Password string
	// TokenSignKey signs issued HS256 tokens.
	TokenSignKey  string
	TokenIssuer   string
	TokenDuration time.Duration
	LogLevel      string
}

// GetStubConfig builds and validates the stub catalog config view.
func GetStubConfig(args []string) (*StubConfig, error) {
	cfg, err := GetStructuredConfig("catalog-stub", args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	stubCfg := newStubConfig(cfg)

	return stubCfg, stubCfg.validate()
}

func newStubConfig(cfg *StructuredConfig) *StubConfig {
	return &StubConfig{
		HTTPAddress:   cfg.Stub.HTTPAddress,
		Username:      cfg.Stub.Username,
		Password:      cfg.Stub.Password,
		TokenSignKey:  cfg.Stub.TokenSignKey,
		TokenIssuer:   cfg.Stub.TokenIssuer,
		TokenDuration: cfg.Stub.TokenDuration,
		LogLevel:      cfg.Log.Level,
	}
}
