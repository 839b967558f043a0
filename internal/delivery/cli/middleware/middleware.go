package middleware

import (
	"context"
	"go-application-tracker/internal/delivery/cli/response"
)

// Command is anything the dispatcher can route.
type Command interface {
	Op() string
}

// HandlerFunc handles one command.
type HandlerFunc func(ctx context.Context, cmd Command) (response.Result, error)

// Middleware wraps a HandlerFunc.
type Middleware func(next HandlerFunc) HandlerFunc

// Chain applies mws so that the first one is the outermost.
func Chain(h HandlerFunc, mws ...Middleware) HandlerFunc {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}
