package middleware

import (
	"context"

	"github.com/google/uuid"
)

type commandIDKey struct{}

func Tracing(_ string, next Command) Command {
	return func(ctx context.Context) error {
		ctx = context.WithValue(ctx, commandIDKey{}, uuid.New().String())
		return next(ctx)
	}
}

func CommandIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(commandIDKey{}).(string); ok {
		return id
	}
	return ""
}
