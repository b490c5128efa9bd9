package middleware

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/josh-kwaku/terminal-bank/internal/logging"
)

var ErrInternal = errors.New("internal error")

func Recovery(name string, next Command) Command {
	return func(ctx context.Context) (err error) {
		defer func() {
			if r := recover(); r != nil {
				log := logging.FromContext(ctx)
				log.Error("panic recovered", "error", r, "stack", string(debug.Stack()))
				err = fmt.Errorf("%s: %v: %w", name, r, ErrInternal)
			}
		}()
		return next(ctx)
	}
}
