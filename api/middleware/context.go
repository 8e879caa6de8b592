package middleware

import (
	"context"

	"github.com/IGN03/TMC/pkg/db/models"
)

type contextKey string

const (
	ctxAccountID   contextKey = "account_id"
	ctxAccessLevel contextKey = "access_level"
	ctxAccessID    contextKey = "access_id"
)

func AccountIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(ctxAccountID).(string); ok {
		return v
	}
	return ""
}

func AccessLevelFromContext(ctx context.Context) int {
	if ctx == nil {
		return models.AccessLevelUnset
	}
	if v, ok := ctx.Value(ctxAccessLevel).(int); ok {
		return v
	}
	return models.AccessLevelUnset
}

// AccessIDFromContext returns the jti of the access token that authenticated the request.
func AccessIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(ctxAccessID).(string); ok {
		return v
	}
	return ""
}

// WithAccountID injects the account identifier into the context.
func WithAccountID(ctx context.Context, accountID string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxAccountID, accountID)
}

// WithAccessLevel injects the caller's access level into the context.
func WithAccessLevel(ctx context.Context, level int) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxAccessLevel, level)
}
