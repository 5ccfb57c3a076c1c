package transport

import (
	"context"
	"time"

	"golang.org/x/sync/semaphore"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/saleemasekrea000/Simplified-Chord-algorithm-using-gRPC/pkg"
)

// RequestIDInterceptor creates a gRPC unary interceptor that puts a request id
// on the handler's context. The id arriving in the x-request-id metadata is
// reused; a new one is generated when the caller sent none.
func RequestIDInterceptor() grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req any,
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (any, error) {
		var id string
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			if ids := md.Get(pkg.RequestIDHeader); len(ids) > 0 {
				id = ids[0]
			}
		}
		if id == "" {
			id = pkg.NewRequestID()
		}

		// Echo the id so callers can correlate their logs with ours
		_ = grpc.SetHeader(ctx, metadata.Pairs(pkg.RequestIDHeader, id))

		return handler(pkg.ContextWithRequestID(ctx, id), req)
	}
}

// forwarder is implemented by the data requests, which may be routed onward.
type forwarder interface {
	GetForwarded() bool
}

// holdsWorker reports whether req can make outbound calls while handled.
// Route, deliveries and the read-only calls are answered locally.
func holdsWorker(req any) bool {
	f, ok := req.(forwarder)
	return ok && !f.GetForwarded()
}

// WorkerPoolInterceptor admits at most maxWorkers routed requests at a time.
// A request waiting for a slot gives up when its context ends. Calls that
// never leave the node are not counted, so two saturated nodes waiting on
// each other still get their Route and delivery calls answered.
func WorkerPoolInterceptor(maxWorkers int) grpc.UnaryServerInterceptor {
	if maxWorkers < 1 {
		maxWorkers = 1
	}
	sem := semaphore.NewWeighted(int64(maxWorkers))

	return func(
		ctx context.Context,
		req any,
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (any, error) {
		if !holdsWorker(req) {
			return handler(ctx, req)
		}

		if err := sem.Acquire(ctx, 1); err != nil {
			return nil, status.FromContextError(err).Err()
		}
		defer sem.Release(1)

		return handler(ctx, req)
	}
}

// LoggingInterceptor logs every handled call at debug level.
func LoggingInterceptor(logger *pkg.Logger) grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req any,
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)

		logger.WithContext(ctx).Debug().
			Str("method", info.FullMethod).
			Str("code", status.Code(err).String()).
			Dur("duration", time.Since(start)).
			Msg("Handled RPC")

		return resp, err
	}
}

// RequestIDClientInterceptor forwards the request id of the calling context
// on every outbound call, so one client request keeps one id across hops.
func RequestIDClientInterceptor() grpc.UnaryClientInterceptor {
	return func(
		ctx context.Context,
		method string,
		req, reply any,
		cc *grpc.ClientConn,
		invoker grpc.UnaryInvoker,
		opts ...grpc.CallOption,
	) error {
		if id := pkg.RequestIDFromContext(ctx); id != "" {
			ctx = metadata.AppendToOutgoingContext(ctx, pkg.RequestIDHeader, id)
		}
		return invoker(ctx, method, req, reply, cc, opts...)
	}
}
