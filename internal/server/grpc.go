package server

import (
	"errors"
	"fmt"
	"net"
	"time"

	translatorv1 "github.com/MKhiriev/go-translator/api/translator/v1"
	myGRPC "github.com/MKhiriev/go-translator/internal/handler/grpc"
	"github.com/MKhiriev/go-translator/internal/logger"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// grpcServer is the live server handle owned by a Controller.
type grpcServer struct {
	server          *grpc.Server
	health          *health.Server
	gRPCNetListener net.Listener

	serveErr chan error
	served   chan struct{}

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, opts Options, logger *logger.Logger) *grpcServer {
	// No channel security: neither side is authenticated and traffic is not
	// encrypted. Not suitable for untrusted networks.
	server := grpc.NewServer(
		grpc.Creds(insecure.NewCredentials()),
		grpc.ChainUnaryInterceptor(handler.UnaryInterceptors()...),
	)

	translatorv1.RegisterTranslatorServer(server, handler)

	healthServer := health.NewServer()
	healthServer.SetServingStatus(translatorv1.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(server, healthServer)

	if opts.EnableReflection {
		reflection.Register(server)
	}

	return &grpcServer{
		server:   server,
		health:   healthServer,
		serveErr: make(chan error, 1),
		served:   make(chan struct{}),
		logger:   logger,
	}
}

// listen binds address. It must be called before RunServer.
func (g *grpcServer) listen(address string) (net.Addr, error) {
	lis, err := net.Listen("tcp", address)
	if err != nil {
		return nil, err
	}

	g.gRPCNetListener = lis
	return lis.Addr(), nil
}

// RunServer serves until the server is stopped. A serve failure is kept for
// Shutdown to report.
func (g *grpcServer) RunServer() {
	defer close(g.served)

	if err := g.server.Serve(g.gRPCNetListener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		g.logger.Error().Err(err).Msg("gRPC server Serve")
		g.serveErr <- err
	}
}

// Shutdown stops accepting calls, gives in-flight calls up to gracePeriod to
// finish and then terminates whatever is left. Terminating calls at the
// deadline is not an error; only a failed serve loop is reported.
func (g *grpcServer) Shutdown(gracePeriod time.Duration) error {
	g.health.Shutdown()

	if gracePeriod <= 0 {
		g.server.Stop()
	} else {
		g.gracefulStop(gracePeriod)
	}

	<-g.served

	select {
	case serveErr := <-g.serveErr:
		return fmt.Errorf("%w: %w", ErrTeardown, serveErr)
	default:
		return nil
	}
}

// gracefulStop drains for up to gracePeriod, then force-stops.
func (g *grpcServer) gracefulStop(gracePeriod time.Duration) {
	done := make(chan struct{})
	go func() {
		g.server.GracefulStop()
		close(done)
	}()

	timer := time.NewTimer(gracePeriod)
	defer timer.Stop()

	select {
	case <-done:
	case <-timer.C:
		g.logger.Warn().Dur("grace_period", gracePeriod).Msg("gRPC graceful stop timed out, terminating outstanding calls")
		g.server.Stop()
		<-done
	}
}
