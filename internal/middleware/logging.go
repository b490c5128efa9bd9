package middleware

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/josh-kwaku/terminal-bank/internal/logging"
	"github.com/josh-kwaku/terminal-bank/internal/service"
)

func Logging(name string, next Command) Command {
	return func(ctx context.Context) error {
		start := time.Now()

		logger := slog.Default().With(
			"command", name,
			"command_id", CommandIDFromContext(ctx),
		)
		ctx = logging.WithLogger(ctx, logger)

		err := next(ctx)

		attrs := []any{"duration_ms", time.Since(start).Milliseconds()}
		switch {
		case err == nil:
			logger.Info("command completed", attrs...)
		case errors.Is(err, io.EOF), errors.Is(err, context.Canceled):
			logger.Info("command abandoned", attrs...)
		case service.IsRejection(err):
			logger.Warn("command rejected", append(attrs, "error", err)...)
		default:
			logger.Error("command failed", append(attrs, "error", err)...)
		}
		return err
	}
}
