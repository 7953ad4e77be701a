package service

import (
	"context"

	"github.com/MKhiriev/go-translator/internal/logger"
)

type shutdownService struct {
	requester ShutdownRequester

	logger *logger.Logger
}

// NewShutdownService returns a [ShutdownService] that raises requester.
func NewShutdownService(requester ShutdownRequester, logger *logger.Logger) ShutdownService {
	return &shutdownService{
		requester: requester,
		logger:    logger,
	}
}

func (s *shutdownService) RequestShutdown(ctx context.Context) bool {
	raised := s.requester.Raise()
	if raised {
		logger.FromContextOr(ctx, s.logger).Info().Msg("shutdown requested")
	} else {
		logger.FromContextOr(ctx, s.logger).Debug().Msg("shutdown already requested")
	}

	return raised
}
