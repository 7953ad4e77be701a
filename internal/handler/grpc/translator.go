package grpc

import (
	"context"

	"github.com/MKhiriev/go-translator/internal/logger"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// GetTranslation resolves the request's input word. A missing word and a word
// with no dictionary entry are both reported as codes.InvalidArgument.
func (h *Handler) GetTranslation(ctx context.Context, in *wrapperspb.StringValue) (*wrapperspb.StringValue, error) {
	word := in.GetValue()

	translated, err := h.services.TranslatorService.Translate(ctx, word)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("input_word", word).Msg("translation failed")
		return nil, statusFromError(err)
	}

	return wrapperspb.String(translated), nil
}

// Shutdown asks the server to end its lifetime. It always succeeds; repeated
// calls are no-ops.
func (h *Handler) Shutdown(ctx context.Context, _ *emptypb.Empty) (*emptypb.Empty, error) {
	h.services.ShutdownService.RequestShutdown(ctx)
	return &emptypb.Empty{}, nil
}
