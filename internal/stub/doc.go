// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package stub serves an in-memory employee catalog over HTTP.
//
// The stub reproduces the wire contract of the remote catalog: the login
// route issues HS256 tokens for a single HR account, protected routes
// answer 401 without an Authorization header and 403 with an invalid
// token, and every response carries the same status codes and messages as
// the real service. It exists so that the harness and the API suites can
// run without network access.
package stub
