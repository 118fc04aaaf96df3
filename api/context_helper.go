package api

import (
	"context"
	"time"

	"github.com/shaj13/go-guardian/auth"
)

// QueryTimeout is the default timeout for database queries
const QueryTimeout = 10 * time.Second

type contextKey string

const userContextKey contextKey = "authUser"

// WithQueryTimeout creates a context with query timeout
func WithQueryTimeout(parent context.Context) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return context.WithTimeout(parent, QueryTimeout)
}

// WithUser stashes the authenticated user in the context
func WithUser(parent context.Context, user auth.Info) context.Context {
	return context.WithValue(parent, userContextKey, user)
}

// UserID returns the authenticated user's id from the context, or ""
// when the request was not authenticated
func UserID(ctx context.Context) string {
	user, ok := ctx.Value(userContextKey).(auth.Info)
	if !ok {
		return ""
	}
	return user.ID()
}
