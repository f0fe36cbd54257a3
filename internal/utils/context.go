// Package utils provides general-purpose helpers shared by the client and
// the privileged process: context keys, HMAC body hashing, JSON responses,
// the resty client, JWT issuing and parsing, and request ID generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
type contextKey string

// String implements fmt.Stringer.
func (c contextKey) String() string {
	return string(c)
}

// SubjectCtxKey stores the authenticated caller (the token "sub" claim).
//
//	ctx := context.WithValue(ctx, utils.SubjectCtxKey, "renderer")
var SubjectCtxKey = contextKey("subject")

// GetSubjectFromContext returns the authenticated caller stored under
// [SubjectCtxKey]. ok is false when the value is missing, empty or not a
// string.
func GetSubjectFromContext(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(SubjectCtxKey).(string)
	return subject, ok && subject != ""
}
