package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-webapp-locator/internal/adapter"
	"github.com/MKhiriev/go-webapp-locator/internal/config"
	"github.com/MKhiriev/go-webapp-locator/internal/locator"
	"github.com/MKhiriev/go-webapp-locator/internal/logger"
	"github.com/atotto/clipboard"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("webapp-locator")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = log.SetLevel(cfg.Log.Level); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	serverInfoAdapter := adapter.NewHTTPServerInfoAdapter(cfg.Locator.ProbeTimeout, log)
	loc := locator.New(cfg.Locator, serverInfoAdapter, log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverURL, err := run(ctx, loc, cfg.Output, os.Stdout)
	if err != nil {
		log.Fatal().Err(err).Msg("error writing result")
	}

	if cfg.Output.Copy && serverURL != "" {
		if err = clipboard.WriteAll(serverURL); err != nil {
			log.Warn().Err(err).Msg("could not copy server url to clipboard")
		} else {
			log.Info().Str("server_url", serverURL).Msg("server url copied to clipboard")
		}
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

	fmt.Fprintf(os.Stderr, "Build version: %s\n", buildVersion)
	fmt.Fprintf(os.Stderr, "Build date: %s\n", buildDate)
	fmt.Fprintf(os.Stderr, "Build commit: %s\n", buildCommit)
}
