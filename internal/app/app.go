package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/MKhiriev/go-translator/internal/config"
	myGRPC "github.com/MKhiriev/go-translator/internal/handler/grpc"
	"github.com/MKhiriev/go-translator/internal/logger"
	"github.com/MKhiriev/go-translator/internal/notify"
	"github.com/MKhiriev/go-translator/internal/server"
	"github.com/MKhiriev/go-translator/internal/service"
	"github.com/MKhiriev/go-translator/internal/store"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"
)

// metricsShutdownTimeout bounds how long open scrapes may delay exit.
const metricsShutdownTimeout = time.Second

// App is a fully wired translator server that has not been started yet.
type App struct {
	controller server.Lifecycle
	opts       server.Options
	logger     *logger.Logger

	metrics        *server.MetricsServer
	metricsAddress string

	mu          sync.Mutex
	addr        net.Addr
	metricsAddr net.Addr
}

// New loads the dictionary named by cfg and wires the server around it.
func New(cfg *config.StructuredConfig, log *logger.Logger) (*App, error) {
	dictionary, err := newDictionary(cfg.Dictionary)
	if err != nil {
		return nil, err
	}
	log.Info().Int("entries", dictionary.Len()).Msg("dictionary loaded")

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	shutdown := notify.New()
	services := service.NewServices(dictionary, shutdown, log)
	handler := myGRPC.NewHandler(services, log).WithMetrics(myGRPC.NewMetrics(registry))

	return &App{
		controller:     server.NewController(handler, shutdown, log),
		opts:           cfg.Server.Options(),
		logger:         log,
		metrics:        server.NewMetricsServer(registry, log),
		metricsAddress: cfg.Server.MetricsAddress,
	}, nil
}

// Run is shorthand for New followed by [App.Run].
func Run(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) error {
	a, err := New(cfg, log)
	if err != nil {
		return err
	}
	return a.Run(ctx)
}

// Run starts the server, waits for a shutdown request, ctx cancellation or the
// configured max lifetime, then stops it within the grace period.
//
// Errors from Start are returned wrapped and mean the server never ran. A Stop
// error ([server.ErrTeardown]) is returned as-is; the server is gone in that
// case too. Calls cut off at the end of the grace period are not an error.
//
// When a metrics address is configured, the /metrics endpoint is bound before
// the gRPC server and shut down after it.
func (a *App) Run(ctx context.Context) error {
	if a.metricsAddress != "" {
		metricsAddr, err := a.metrics.Listen(a.metricsAddress)
		if err != nil {
			return fmt.Errorf("error starting metrics server: %w", err)
		}
		go a.metrics.RunServer()
		defer a.stopMetrics()

		a.mu.Lock()
		a.metricsAddr = metricsAddr
		a.mu.Unlock()

		a.logger.Info().Str("address", metricsAddr.String()).Msg("metrics server started")
	}

	addr, err := a.controller.Start(a.opts)
	if err != nil {
		return fmt.Errorf("error starting server: %w", err)
	}

	a.mu.Lock()
	a.addr = addr
	a.mu.Unlock()

	awaited := make(chan struct{})

	var g errgroup.Group
	g.Go(func() error {
		select {
		case <-ctx.Done():
			if a.controller.RequestShutdown() {
				a.logger.Info().Msg("shutdown requested by host")
			}
		case <-awaited:
		}
		return nil
	})

	a.controller.Await(a.opts.MaxLifetime)
	close(awaited)
	_ = g.Wait()

	return a.controller.Stop(a.opts.GracePeriod)
}

// Addr returns the address the server is bound to, or nil before it started.
func (a *App) Addr() net.Addr {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.addr
}

// MetricsAddr returns the address of the metrics endpoint, or nil when it is
// disabled or not started.
func (a *App) MetricsAddr() net.Addr {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.metricsAddr
}

func (a *App) stopMetrics() {
	ctx, cancel := context.WithTimeout(context.Background(), metricsShutdownTimeout)
	defer cancel()

	if err := a.metrics.Shutdown(ctx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		a.logger.Warn().Err(err).Msg("metrics server shutdown")
	}
}

func newDictionary(cfg config.Dictionary) (store.Dictionary, error) {
	if cfg.FilePath == "" {
		return store.NewDefaultDictionary(), nil
	}

	dictionary, err := store.LoadDictionaryFile(cfg.FilePath)
	if err != nil {
		return nil, fmt.Errorf("error loading dictionary: %w", err)
	}
	return dictionary, nil
}
