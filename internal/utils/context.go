// Package utils holds small helpers shared by both halves of the
// application: context keys for request-scoped values, the HMAC hasher pool
// used for request integrity checking, JWT token generation and validation,
// and thin HTTP conveniences.
package utils

import (
	"context"
)

// contextKey is an unexported key type for context values so keys defined
// here can never collide with string keys from other packages.
type contextKey string

// String implements fmt.Stringer.
func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey carries the authenticated user's ID through the request
// context. The auth middleware stores the ID it resolved from the bearer
// token; document handlers read it back via GetUserIDFromContext.
var UserIDCtxKey = contextKey("userID")

// GetUserIDFromContext returns the user ID placed in ctx by the auth
// middleware. The second return value is false when no ID is present or the
// stored value is not an int64, which means the request never passed
// authentication.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}
