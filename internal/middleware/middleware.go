package middleware

import "context"

// Command is one shell command bound to its arguments.
type Command func(ctx context.Context) error

type Middleware func(name string, next Command) Command

// Chain wraps h so that the first middleware runs outermost.
func Chain(name string, h Command, mws ...Middleware) Command {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](name, h)
	}
	return h
}
