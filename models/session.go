// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Session is an authenticated conversation with the catalog.
//
// A Session is immutable once constructed: the bearer token cannot be
// replaced, so one Session can be handed to many callers by pointer
// without coordination. Token expiry is not tracked client-side; an expired
// token surfaces as a rejected request.
type Session struct {
	username   string
	token      string
	acquiredAt time.Time
}

// NewSession wraps a bearer token obtained for username at acquiredAt.
func NewSession(username, token string, acquiredAt time.Time) *Session {
	return &Session{username: username, token: token, acquiredAt: acquiredAt}
}

// AnonymousSession returns a session without a token. Requests made with it
// carry no Authorization header.
func AnonymousSession() *Session {
	return &Session{}
}

// Token returns the bearer token, or an empty string for an anonymous session.
func (s *Session) Token() string {
	return s.token
}

// Username returns the HR login the token was issued to.
func (s *Session) Username() string {
	return s.username
}

// AcquiredAt returns when the token was obtained.
func (s *Session) AcquiredAt() time.Time {
	return s.acquiredAt
}

// Authenticated reports whether the session carries a token.
func (s *Session) Authenticated() bool {
	return s.token != ""
}
