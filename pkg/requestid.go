package pkg

import (
	"context"

	"github.com/rs/xid"
)

// RequestIDHeader is the gRPC metadata key carrying the request id across hops.
const RequestIDHeader = "x-request-id"

type requestIDKey struct{}

// NewRequestID returns a fresh, globally unique request id.
func NewRequestID() string {
	return xid.New().String()
}

// ContextWithRequestID returns a copy of ctx carrying id.
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromContext returns the request id stored in ctx, or "".
func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
