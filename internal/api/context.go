package api

import (
	"context"

	"github.com/avelichko/chequeroom/internal/database"
)

type contextKey string

const userKey contextKey = "user"

// WithUser stores the authenticated account in the request context.
func WithUser(ctx context.Context, u database.User) context.Context {
	return context.WithValue(ctx, userKey, u)
}

// UserFrom returns the authenticated account placed in the context by the
// auth middleware.
func UserFrom(ctx context.Context) (database.User, bool) {
	u, ok := ctx.Value(userKey).(database.User)
	return u, ok
}
