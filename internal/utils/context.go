// Package utils provides small helpers shared by the transport layers:
// typed context keys, JSON responses, the resty client constructor,
// JWT issuing and validation, and trace identifiers.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// UsernameCtxKey is the key under which the authentication middleware
// stores the name of the authenticated user.
//
//	ctx := context.WithValue(ctx, utils.UsernameCtxKey, "mia")
var UsernameCtxKey = contextKey("username")

// GetUsernameFromContext retrieves the authenticated user name.
// ok is false when the value is missing, empty or has another type.
func GetUsernameFromContext(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(UsernameCtxKey).(string)
	return username, ok && username != ""
}

// WithUsername returns a copy of ctx carrying username.
func WithUsername(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, UsernameCtxKey, username)
}
