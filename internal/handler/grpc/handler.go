package grpc

import (
	translatorv1 "github.com/MKhiriev/go-translator/api/translator/v1"
	"github.com/MKhiriev/go-translator/internal/logger"
	"github.com/MKhiriev/go-translator/internal/service"
)

// Handler is the root gRPC transport handler.
//
// It stores references to the service layer and structured logger so that
// gRPC method handlers can delegate business logic and emit consistent logs.
// A handler instance is created once at startup and shared by the gRPC server.
type Handler struct {
	translatorv1.UnimplementedTranslatorServer

	// services provides access to all application business operations.
	services *service.Services

	// logger is used for call-scoped and diagnostic log output.
	logger *logger.Logger

	// metrics is optional; nil disables call metrics.
	metrics *Metrics
}

// NewHandler constructs a [Handler] with the provided service container and
// logger, and returns the initialized instance.
//
// Parameters:
//   - services: application service layer used by gRPC method handlers.
//   - logger: structured logger used for transport diagnostics.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}

// WithMetrics makes the handler record call metrics into m and returns the
// handler. It must be called before the handler is registered on a server.
func (h *Handler) WithMetrics(m *Metrics) *Handler {
	h.metrics = m
	return h
}

var _ translatorv1.TranslatorServer = (*Handler)(nil)
