// Package utils provides general-purpose helpers shared across the
// application: type-safe context keys, JSON response writing, JWT token
// generation/validation, and password hashing.
package utils

import "context"

// contextKey is a private type for context keys. Using a dedicated type
// instead of a plain string prevents collisions with other packages.
type contextKey string

// String implements fmt.Stringer.
func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey stores the authenticated user's ID in the request context.
var UserIDCtxKey = contextKey("userID")

// UserRoleCtxKey stores the authenticated user's role claim in the request
// context.
var UserRoleCtxKey = contextKey("userRole")

// GetUserIDFromContext retrieves the authenticated user ID from ctx.
// ok is false when the value is missing or has an unexpected type.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}

// GetUserRoleFromContext retrieves the authenticated user's role from ctx.
// ok is false when the value is missing or has an unexpected type.
func GetUserRoleFromContext(ctx context.Context) (string, bool) {
	role, ok := ctx.Value(UserRoleCtxKey).(string)
	return role, ok
}
