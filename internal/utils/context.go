// Package utils provides general-purpose helpers shared by the catalog client
// and the stub catalog: the resty-based HTTP client, JWT issuing and
// validation, JSON response writing, UUID generation and typed context keys.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// SubjectCtxKey is the key used to store the authenticated token subject
// (the HR username) in the request context.
var SubjectCtxKey = contextKey("subject")

// GetSubjectFromContext retrieves the authenticated subject from ctx.
func GetSubjectFromContext(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(SubjectCtxKey).(string)
	return subject, ok && subject != ""
}
