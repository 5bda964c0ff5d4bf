// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package harness exercises a live employee catalog end to end.
//
// A [Suite] logs in once, runs the authorization checks and then N
// independent lifecycle cases. Each case creates a synthetic employee,
// verifies, lists, updates, re-verifies and deletes it, then confirms the
// record is gone and that a repeated delete yields 404. Cleanup always runs
// afterwards; a cleanup that neither deletes the record nor finds it already
// absent is handed to a [LeakRecorder].
package harness
