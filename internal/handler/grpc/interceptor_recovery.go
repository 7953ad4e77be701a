package grpc

import (
	"context"
	"runtime/debug"

	"github.com/MKhiriev/go-translator/internal/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// withRecovery turns a panic in a method handler into codes.Internal so one
// bad call cannot take the server down.
func (h *Handler) withRecovery(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp any, err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.FromContext(ctx).Error().
				Str("method", info.FullMethod).
				Interface("panic", r).
				Bytes("stack", debug.Stack()).
				Msg("recovered from panic in gRPC handler")

			resp = nil
			err = status.Error(codes.Internal, "internal error")
		}
	}()

	return handler(ctx, req)
}
