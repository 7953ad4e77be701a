package grpc

import (
	"context"
	"time"

	"github.com/MKhiriev/go-translator/internal/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

// withLogging writes one access-log entry per call.
func (h *Handler) withLogging(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	log := logger.FromContext(ctx)

	start := time.Now()
	resp, err := handler(ctx, req)
	duration := time.Since(start)

	log.Info().
		Str("method", info.FullMethod).
		Str("code", status.Code(err).String()).
		Dur("duration", duration).
		Send()

	return resp, err
}
