// Package config provides configuration loading, merging, and validation
// facilities for the catalog client and the stub catalog.
//
// Configuration is assembled from several sources. Later sources override
// earlier non-zero fields:
//  1. Built-in defaults
//  2. JSON config file (-c / -config / CONFIG)
//  3. Environment variables, after an optional .env file has been loaded
//     into the process environment (-env-file / ENV_FILE, or ./.env)
//  4. Command-line flags
//
// The main entry points are [GetClientConfig] for catalogctl and
// [GetStubConfig] for catalog-stub.
package config
