// Package middleware contains the HTTP middleware chain: panic rescue,
// request logging, CORS, and the auth gateway that turns a bearer token
// into a verified user id on the request context.
package middleware

import "context"

type ctxKey string

const userIDKey ctxKey = "userID"

// WithUserID returns a context annotated with the verified user id.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserIDFromContext extracts the verified user id set by Authorizing.
// The second result is false when the request never passed the auth
// gateway.
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok && id != ""
}
