package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/MKhiriev/go-translator/internal/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsPath is the route the metrics server answers on.
const MetricsPath = "/metrics"

// MetricsServer exposes a Prometheus registry over plain HTTP. It runs next
// to the gRPC server and is stopped after it.
type MetricsServer struct {
	server   *http.Server
	listener net.Listener

	logger *logger.Logger
}

// NewMetricsServer returns an unbound metrics server for gatherer.
func NewMetricsServer(gatherer prometheus.Gatherer, logger *logger.Logger) *MetricsServer {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Method(http.MethodGet, MetricsPath, promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	return &MetricsServer{
		server: &http.Server{
			Handler:           router,
			ReadHeaderTimeout: 5 * time.Second,
		},
		logger: logger,
	}
}

// Listen binds address and returns the bound address. It must be called
// before RunServer.
func (h *MetricsServer) Listen(address string) (net.Addr, error) {
	lis, err := net.Listen("tcp", address)
	if err != nil {
		return nil, err
	}

	h.listener = lis
	return lis.Addr(), nil
}

// RunServer serves until Shutdown is called.
func (h *MetricsServer) RunServer() {
	if err := h.server.Serve(h.listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		h.logger.Error().Err(err).Msg("metrics server Serve")
	}
}

// Shutdown closes the listener and waits for open scrapes until ctx is done.
func (h *MetricsServer) Shutdown(ctx context.Context) error {
	return h.server.Shutdown(ctx)
}
