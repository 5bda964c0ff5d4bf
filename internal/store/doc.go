// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists the cleanup journal: employees created by the
// harness whose cleanup did not succeed.
//
// The journal lives in SQLite by default. A DSN starting with postgres:// or
// postgresql:// selects PostgreSQL through the pgx stdlib driver. Queries
// are built with squirrel using the placeholder format of the active
// dialect, and writes that fail with a transient driver error are attempted
// once more.
package store
