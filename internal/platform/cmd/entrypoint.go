// Package cmd holds the startup plumbing shared by portfolio commands.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/nrdn26/portfolio/internal/platform/config"
	"github.com/nrdn26/portfolio/internal/platform/otel"
	"github.com/nrdn26/portfolio/internal/platform/timeouts"
)

// Command identifiers used for telemetry resources and log prefixes.
const (
	ServiceSite            = "site"
	ServiceExport          = "export"
	ServiceCatalogImporter = "catalog-importer"
)

// ParseConfig loads environment defaults into cfg.
func ParseConfig[T any](cfg *T) error {
	if cfg == nil {
		return errors.New("config target is required")
	}
	return config.ParseEnv(cfg)
}

// ParseArgs parses command-line flags.
func ParseArgs(fs *flag.FlagSet, args []string) error {
	if fs == nil {
		return errors.New("flag parser is required")
	}
	if args == nil {
		args = []string{}
	}
	return fs.Parse(args)
}

// RunWithTelemetry configures tracing from the environment and executes run.
func RunWithTelemetry(ctx context.Context, service string, run func(context.Context) error) error {
	service = strings.TrimSpace(service)
	if service == "" {
		return fmt.Errorf("service name is required")
	}
	if run == nil {
		return fmt.Errorf("run function is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	var otelCfg otel.Config
	if err := config.ParseEnv(&otelCfg); err != nil {
		return err
	}
	shutdown, err := otel.Setup(ctx, "portfolio-"+service, otelCfg)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.TelemetryShutdown)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			log.Printf("%s otel shutdown: %v", service, err)
		}
	}()
	return run(ctx)
}
