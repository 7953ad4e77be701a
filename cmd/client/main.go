package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	translatorv1 "github.com/MKhiriev/go-translator/api/translator/v1"
	"github.com/MKhiriev/go-translator/internal/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	var address, word string
	var shutdown bool
	var timeout time.Duration

	flag.StringVar(&address, "a", "localhost:50051", "Translator server address host:port")
	flag.StringVar(&word, "word", "", "Word to translate")
	flag.BoolVar(&shutdown, "shutdown", false, "Ask the server to shut down")
	flag.DurationVar(&timeout, "timeout", 5*time.Second, "Call timeout")
	flag.Parse()

	printBuildInfo()

	log := logger.NewLogger("translator-client")

	conn, err := grpc.NewClient(address, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		log.Fatal().Err(err).Msg("error creating gRPC client")
	}
	defer conn.Close()

	client := translatorv1.NewTranslatorClient(conn)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if shutdown {
		if _, err = client.Shutdown(ctx, &emptypb.Empty{}); err != nil {
			log.Error().Err(err).Msg("shutdown call failed")
			os.Exit(1)
		}
		fmt.Println("shutdown requested")
		return
	}

	resp, err := client.GetTranslation(ctx, wrapperspb.String(word))
	if err != nil {
		log.Error().Str("code", status.Code(err).String()).Msg(status.Convert(err).Message())
		os.Exit(1)
	}

	fmt.Println(resp.GetValue())
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

	fmt.Fprintf(os.Stderr, "Build version: %s\n", buildVersion)
	fmt.Fprintf(os.Stderr, "Build date: %s\n", buildDate)
	fmt.Fprintf(os.Stderr, "Build commit: %s\n", buildCommit)
}
