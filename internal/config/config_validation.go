// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/rs/zerolog"
)

func (cfg *ClientConfig) validate() error {
	switch cfg.Command {
	case CommandRun, CommandReap, CommandWatch:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCommand, cfg.Command)
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Auth.Username == "" || cfg.Auth.Password == "" {
		return ErrInvalidAuthConfigs
	}

	if cfg.Harness.Cases < 1 {
		return ErrInvalidHarnessConfigs
	}

	if cfg.Command != CommandRun && cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Command == CommandWatch && cfg.Workers.ReapInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.Workers.ReapBatchSize < 1 {
		return ErrInvalidWorkerConfigs
	}

	return validateLogLevel(cfg.LogLevel)
}

func (cfg *StubConfig) validate() error {
	if cfg.HTTPAddress == "" || cfg.Username == "" || cfg.Password == "" {
		return ErrInvalidStubConfigs
	}

	if cfg.TokenSignKey == "" || cfg.TokenIssuer == "" || cfg.TokenDuration <= 0 {
		return ErrInvalidStubConfigs
	}

	return validateLogLevel(cfg.LogLevel)
}

func validateLogLevel(level string) error {
	if level == "" {
		return nil
	}
	if _, err := zerolog.ParseLevel(level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err)
	}
	return nil
}
