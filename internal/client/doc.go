// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the catalogctl application runtime.
//
// It dispatches the run, reap and watch commands onto the lifecycle suite
// and the cleanup reaper, and serves Prometheus metrics alongside them when
// a metrics address is configured.
package client
