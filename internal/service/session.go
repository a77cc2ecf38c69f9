package service

import (
	"context"
)

type sessionTokenKey struct{}

// WithSessionToken returns a context carrying the caller's session token.
func WithSessionToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, sessionTokenKey{}, token)
}

// SessionToken returns the session token carried by ctx, or "".
func SessionToken(ctx context.Context) string {
	token, _ := ctx.Value(sessionTokenKey{}).(string)
	return token
}
