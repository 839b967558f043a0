package middleware

import (
	"context"
	"go-application-tracker/internal/delivery/cli/response"
	"go-application-tracker/pkg/audit"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// RequestID tags each command with a fresh id, visible to the audit trail
// and echoed on the result.
func RequestID() Middleware {
	return func(next HandlerFunc) HandlerFunc {
		return func(ctx context.Context, cmd Command) (response.Result, error) {
			id := uuid.NewString()
			ctx = audit.WithRequestID(ctx, id)
			res, err := next(ctx, cmd)
			res.RequestID = id
			return res, err
		}
	}
}

// Logger logs every command with its outcome and latency.
func Logger(log *slog.Logger) Middleware {
	return func(next HandlerFunc) HandlerFunc {
		return func(ctx context.Context, cmd Command) (response.Result, error) {
			start := time.Now()
			res, err := next(ctx, cmd)
			log.Debug("Command handled",
				"op", cmd.Op(),
				"request_id", audit.RequestIDFrom(ctx),
				"success", err == nil && res.Success,
				"duration", time.Since(start),
			)
			return res, err
		}
	}
}
