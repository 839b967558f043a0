package middleware

import (
	"context"
	"errors"
	"fmt"
	"go-application-tracker/internal/delivery/cli/response"
	"go-application-tracker/pkg/apperror"
	"log/slog"
)

// ErrorHandler turns handler errors into failed results. AppErrors keep their
// code and message; anything else is logged and replaced by a generic message.
func ErrorHandler(log *slog.Logger) Middleware {
	return func(next HandlerFunc) HandlerFunc {
		return func(ctx context.Context, cmd Command) (response.Result, error) {
			res, err := next(ctx, cmd)
			if err == nil {
				return res, nil
			}

			var appErr *apperror.AppError
			if errors.As(err, &appErr) {
				if appErr.Err != nil {
					log.Debug("Command failed", "op", cmd.Op(), "code", appErr.Code, "error", appErr.Err)
				}
				return response.Error(ctx, appErr.Code, appErr.Message, res.Error), nil
			}

			log.Error("Internal error", "op", cmd.Op(), "error", err)
			return response.Error(ctx, apperror.CodeInternal, "An unexpected error occurred. Please try again.", nil), nil
		}
	}
}

// Recovery converts a panic inside the chain into an internal error.
func Recovery(log *slog.Logger) Middleware {
	return func(next HandlerFunc) HandlerFunc {
		return func(ctx context.Context, cmd Command) (res response.Result, err error) {
			defer func() {
				if r := recover(); r != nil {
					log.Error("Recovered from panic", "op", cmd.Op(), "panic", fmt.Sprint(r))
					res = response.Error(ctx, apperror.CodeInternal, "An unexpected error occurred. Please try again.", nil)
					err = nil
				}
			}()
			return next(ctx, cmd)
		}
	}
}
