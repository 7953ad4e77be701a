package grpc

import (
	"context"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

// TraceIDMetadataKey is the metadata key carrying the per-call trace id in
// both directions.
const TraceIDMetadataKey = "x-trace-id"

// withTraceID takes the caller's trace id from incoming metadata or generates
// one, echoes it in the response header and stores a tagged child logger in
// the call context.
func (h *Handler) withTraceID(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	var traceID string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(TraceIDMetadataKey); len(values) > 0 && values[0] != "" {
			traceID = values[0]
		}
	}
	if traceID == "" {
		traceID = newTraceID()
	}

	l := h.logger.WithTraceID(traceID)
	ctx = l.WithContext(ctx)

	// fails only outside a real server transport, e.g. when called directly in tests
	_ = grpc.SetHeader(ctx, metadata.Pairs(TraceIDMetadataKey, traceID))

	return handler(ctx, req)
}

func newTraceID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
