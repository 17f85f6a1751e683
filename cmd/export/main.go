// Package main renders the portfolio into a static directory.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	exportcmd "github.com/nrdn26/portfolio/internal/cmd/export"
	"github.com/nrdn26/portfolio/internal/platform/config"
)

func main() {
	cfg, err := exportcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("Error: %v", err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := exportcmd.Run(ctx, cfg, os.Stdout); err != nil {
		config.Exitf("Error: %v", err)
	}
}
