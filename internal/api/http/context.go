package http

import (
	"context"

	"propdesk-backend/internal/domain"
)

type contextKey string

const userContextKey contextKey = "authenticated_user"

func withUser(ctx context.Context, user *domain.User) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

// userFromContext returns the authenticated user set by the auth middleware,
// or nil on unauthenticated routes.
func userFromContext(ctx context.Context) *domain.User {
	user, _ := ctx.Value(userContextKey).(*domain.User)
	return user
}
