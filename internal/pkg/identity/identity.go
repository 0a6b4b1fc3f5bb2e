// Package identity carries the caller's bearer token and user id through a request context.
package identity

import "context"

type tokenKey struct{}

type userIDKey struct{}

type verifiedKey struct{}

func WithToken(ctx context.Context, token string) context.Context {
	if token == "" {
		return ctx
	}
	return context.WithValue(ctx, tokenKey{}, token)
}

// Token returns the raw bearer token the caller presented, if any.
func Token(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenKey{}).(string)
	return token, ok && token != ""
}

func WithUserID(ctx context.Context, userID string) context.Context {
	if userID == "" {
		return ctx
	}
	return context.WithValue(ctx, userIDKey{}, userID)
}

func UserID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey{}).(string)
	return id, ok && id != ""
}

// WithVerified marks the user id in ctx as coming from a token whose signature was checked.
func WithVerified(ctx context.Context) context.Context {
	return context.WithValue(ctx, verifiedKey{}, true)
}

func Verified(ctx context.Context) bool {
	verified, _ := ctx.Value(verifiedKey{}).(bool)
	return verified
}
