package trace

import (
	"context"

	"github.com/google/uuid"
)

type requestIDKey struct{}

// WithRequestID returns a copy of ctx carrying id as the request-scoped
// identifier logged by [Begin]/[Op.End]. An empty string is a valid id,
// distinguishable from no id being set at all (see [RequestIDFrom]).
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFrom returns the request id stored in ctx via [WithRequestID],
// and whether one was set.
func RequestIDFrom(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDKey{}).(string)
	return id, ok
}

// EnsureRequestID returns ctx unchanged if it already carries a request
// id, otherwise it stamps a freshly generated one. Callers at a process
// boundary (a bulk load kicked off from a CLI or job runner) use this so
// every operation logged beneath it shares one request id even when the
// caller never set one explicitly.
func EnsureRequestID(ctx context.Context) context.Context {
	if _, ok := RequestIDFrom(ctx); ok {
		return ctx
	}
	return WithRequestID(ctx, uuid.NewString())
}
