package config

import (
	"flag"
	"fmt"
	"io"
)

// parseFlags parses command-line flags into a fresh StructuredConfig. Every
// flag defaults to its zero value so that unset flags never override lower
// precedence sources during the merge. The single positional argument becomes
// Command.
func parseFlags(programName string, args []string) (*StructuredConfig, error) {
	cfg := &StructuredConfig{}

	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	// adapter
	fs.StringVar(&cfg.Adapter.HTTPAddress, "a", "", "catalog base URL")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "request-timeout", 0, "per-request timeout")

	// auth
	fs.StringVar(&cfg.Auth.Username, "u", "", "HR username")
	fs.StringVar(&cfg.Auth.Password, "p", "", "HR password")

	// harness
	fs.IntVar(&cfg.Harness.Cases, "cases", 0, "number of lifecycle cases")
	fs.Uint64Var(&cfg.Harness.Seed, "seed", 0, "payload generator seed")
	fs.BoolVar(&cfg.Harness.SkipAuthChecks, "skip-auth-checks", false, "skip authorization checks")

	// storage
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "cleanup journal DSN (sqlite path or postgres URL)")

	// workers
	fs.DurationVar(&cfg.Workers.ReapInterval, "reap-interval", 0, "reaper tick interval")
	fs.IntVar(&cfg.Workers.ReapBatchSize, "reap-batch", 0, "reaper batch size")

	// stub
	fs.StringVar(&cfg.Stub.HTTPAddress, "stub-address", "", "stub catalog listen address")

	// metrics
	fs.StringVar(&cfg.Metrics.HTTPAddress, "metrics-address", "", "prometheus listen address")

	// log
	fs.StringVar(&cfg.Log.Level, "log-level", "", "log level")

	// sources
	fs.StringVar(&cfg.JSONFilePath, "c", "", "path to JSON config file")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "path to JSON config file")
	fs.StringVar(&cfg.EnvFilePath, "env-file", "", "path to .env file")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	// flags may also follow the command: catalogctl run -cases 3
	if fs.NArg() > 0 {
		cfg.Command = fs.Arg(0)
		if err := fs.Parse(fs.Args()[1:]); err != nil {
			return nil, fmt.Errorf("error parsing flags: %w", err)
		}
		if fs.NArg() > 0 {
			return nil, fmt.Errorf("%w: unexpected argument %q", ErrUnknownCommand, fs.Arg(0))
		}
	}

	return cfg, nil
}
