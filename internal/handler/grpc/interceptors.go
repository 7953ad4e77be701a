package grpc

import "google.golang.org/grpc"

// UnaryInterceptors returns the handler's interceptors in the order they must
// be chained: trace id first so later stages log with it.
func (h *Handler) UnaryInterceptors() []grpc.UnaryServerInterceptor {
	return []grpc.UnaryServerInterceptor{
		h.withTraceID,
		h.withLogging,
		h.withMetrics,
		h.withRecovery,
	}
}
