package main

import (
	"context"
	"flag"
	"os"

	catalogimporter "github.com/nrdn26/portfolio/internal/cmd/catalogimporter"
	"github.com/nrdn26/portfolio/internal/platform/config"
)

func main() {
	cfg, err := catalogimporter.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("Error: %v", err)
	}

	if err := catalogimporter.Run(context.Background(), cfg, os.Stdout); err != nil {
		config.Exitf("Error: %v", err)
	}
}
