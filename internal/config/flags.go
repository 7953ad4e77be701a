package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int

	set bool
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a/-grpc-address grpc server address in format [host]:[port]
//	-max-lifetime how long the server runs without a shutdown request (e.g., "30s", "10m")
//	-grace-period how long in-flight calls may finish on shutdown (e.g., "500ms")
//	-reflection register gRPC server reflection
//	-metrics-address prometheus metrics address in format [host]:[port]
//	-dictionary dictionary file path (YAML or JSON)
//	-log-level log level (e.g., "debug", "info")
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var grpcServerAddress, metricsAddress NetAddress
	var maxLifetime time.Duration
	var gracePeriod time.Duration
	var enableReflection bool
	var dictionaryPath string
	var logLevel string
	var jsonConfigPath string

	flag.Var(&grpcServerAddress, "a", "Net grpc server address host:port")
	flag.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port (alias)")
	flag.DurationVar(&maxLifetime, "max-lifetime", 0, "Server max lifetime (e.g., 30s, 10m)")
	flag.DurationVar(&gracePeriod, "grace-period", 0, "Shutdown grace period (e.g., 500ms, 2s)")
	flag.BoolVar(&enableReflection, "reflection", false, "Register gRPC server reflection")
	flag.Var(&metricsAddress, "metrics-address", "Prometheus metrics address host:port")
	flag.StringVar(&dictionaryPath, "dictionary", "", "Dictionary file path")
	flag.StringVar(&logLevel, "log-level", "", "Log level")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	// only an explicitly passed -grace-period counts, so 0 can override the default
	var shutdownGracePeriod *time.Duration
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "grace-period" {
			shutdownGracePeriod = &gracePeriod
		}
	})

	return &StructuredConfig{
		App: App{
			LogLevel: logLevel,
		},
		Server: Server{
			GRPCAddress:         grpcServerAddress.String(),
			MaxLifetime:         maxLifetime,
			ShutdownGracePeriod: shutdownGracePeriod,
			EnableReflection:    enableReflection,
			MetricsAddress:      metricsAddress.String(),
		},
		Dictionary: Dictionary{
			FilePath: dictionaryPath,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// An address that was never set yields an empty string.
func (a *NetAddress) String() string {
	if !a.set && a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses the input string of form host:port and populates the NetAddress.
// An empty host listens on all interfaces and port 0 asks the kernel for a
// free port. Hosts other than "localhost" must be IP literals.
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return err
	}

	if port < 0 || port > 65535 {
		return errors.New("port number must be in range 0-65535")
	}

	if host != "" && host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	a.set = true
	return nil
}
