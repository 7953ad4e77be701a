package grpc

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

// withMetrics records call counts, latency and in-flight calls.
func (h *Handler) withMetrics(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	h.metrics.callStarted()
	defer h.metrics.callFinished()

	start := time.Now()
	resp, err := handler(ctx, req)

	h.metrics.RecordRequest(info.FullMethod, status.Code(err).String(), time.Since(start).Seconds())

	return resp, err
}
