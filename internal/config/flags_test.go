// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		check   func(t *testing.T, cfg *StructuredConfig)
		wantErr error
	}{
		{
			name: "no args",
			args: nil,
			check: func(t *testing.T, cfg *StructuredConfig) {
				assert.Empty(t, cfg.Command)
				assert.Empty(t, cfg.Adapter.HTTPAddress)
				assert.Zero(t, cfg.Harness.Cases)
			},
		},
		{
			name: "flags before command",
			args: []string{"-a", "http://localhost:8080", "-u", "admin10", "-p", "securePassword", "run"},
			check: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "run", cfg.Command)
				assert.Equal(t, "http://localhost:8080", cfg.Adapter.HTTPAddress)
				assert.Equal(t, "admin10", cfg.Auth.Username)
				assert.Equal(t, "securePassword", cfg.Auth.Password)
			},
		},
		{
			name: "flags after command",
			args: []string{"watch", "-reap-interval", "30s", "-reap-batch", "5", "-d", "journal.db"},
			check: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "watch", cfg.Command)
				assert.Equal(t, 30*time.Second, cfg.Workers.ReapInterval)
				assert.Equal(t, 5, cfg.Workers.ReapBatchSize)
				assert.Equal(t, "journal.db", cfg.Storage.DB.DSN)
			},
		},
		{
			name: "harness flags",
			args: []string{"-cases", "3", "-seed", "7", "-skip-auth-checks", "-request-timeout", "2s"},
			check: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, 3, cfg.Harness.Cases)
				assert.Equal(t, uint64(7), cfg.Harness.Seed)
				assert.True(t, cfg.Harness.SkipAuthChecks)
				assert.Equal(t, 2*time.Second, cfg.Adapter.RequestTimeout)
			},
		},
		{
			name: "config aliases",
			args: []string{"-config", "cfg.json", "-env-file", "local.env", "-log-level", "debug", "-metrics-address", ":2112"},
			check: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "cfg.json", cfg.JSONFilePath)
				assert.Equal(t, "local.env", cfg.EnvFilePath)
				assert.Equal(t, "debug", cfg.Log.Level)
				assert.Equal(t, ":2112", cfg.Metrics.HTTPAddress)
			},
		},
		{
			name: "short config flag",
			args: []string{"-c", "short.json"},
			check: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "short.json", cfg.JSONFilePath)
			},
		},
		{
			name:    "extra positional argument",
			args:    []string{"run", "again"},
			wantErr: ErrUnknownCommand,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parseFlags("test", tt.args)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestParseFlags_UnknownFlag(t *testing.T) {
	_, err := parseFlags("test", []string{"-nope"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error parsing flags")
}

func TestParseFlags_InvalidDuration(t *testing.T) {
	_, err := parseFlags("test", []string{"-request-timeout", "later"})
	require.Error(t, err)
}
