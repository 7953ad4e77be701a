package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-translator/internal/app"
	"github.com/MKhiriev/go-translator/internal/config"
	"github.com/MKhiriev/go-translator/internal/logger"
	"github.com/MKhiriev/go-translator/internal/server"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("translator-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if cfg.App.LogLevel != "" {
		if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
			log.Fatal().Err(err).Msg("error setting log level")
		}
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = app.Run(ctx, cfg, log)
	switch {
	case err == nil:
	case errors.Is(err, server.ErrTeardown):
		log.Warn().Err(err).Msg("server stopped with errors")
	default:
		log.Error().Err(err).Msg("server failed to start")
		stop()
		os.Exit(1)
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
