// Package export parses static export flags and writes the site to disk.
package export

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"strings"

	sitecmd "github.com/nrdn26/portfolio/internal/cmd/site"
	entrypoint "github.com/nrdn26/portfolio/internal/platform/cmd"
	"github.com/nrdn26/portfolio/internal/platform/timeouts"
	sitesvc "github.com/nrdn26/portfolio/internal/services/site"
	siteexport "github.com/nrdn26/portfolio/internal/services/site/export"
)

// Config holds export command configuration.
type Config struct {
	OutputDir   string `env:"PORTFOLIO_EXPORT_DIR" envDefault:"dist"`
	Concurrency int    `env:"PORTFOLIO_EXPORT_CONCURRENCY" envDefault:"4"`
	// Strict fails the run when the link audit finds broken internal links.
	Strict  bool `env:"PORTFOLIO_EXPORT_STRICT"`
	Content sitecmd.ContentConfig
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.OutputDir, "out", cfg.OutputDir, "Output directory")
	fs.IntVar(&cfg.Concurrency, "concurrency", cfg.Concurrency, "Maximum parallel page renders")
	fs.BoolVar(&cfg.Strict, "strict", cfg.Strict, "Fail when internal links are broken")
	cfg.Content.BindFlags(fs)
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	if strings.TrimSpace(cfg.OutputDir) == "" {
		return Config{}, errors.New("out is required")
	}
	return cfg, nil
}

// ErrBrokenLinks is returned in strict mode when the audit finds problems.
var ErrBrokenLinks = errors.New("broken internal links")

// Run renders the site into cfg.OutputDir and prints a summary to out.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceExport, func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, timeouts.ExportRender)
		defer cancel()

		content, err := sitecmd.LoadContent(ctx, cfg.Content)
		if err != nil {
			return err
		}
		handler, err := sitesvc.NewHandler(sitesvc.Config{
			Catalog:   content.Catalog,
			Profile:   content.Profile,
			Theme:     content.Theme,
			PublicDir: content.PublicDir,
			Logger:    log.New(io.Discard, "", 0),
		})
		if err != nil {
			return fmt.Errorf("compose site handler: %w", err)
		}

		report, err := siteexport.Run(ctx, siteexport.Config{
			OutputDir:   cfg.OutputDir,
			Handler:     handler,
			Catalog:     content.Catalog,
			PublicDir:   content.PublicDir,
			Concurrency: cfg.Concurrency,
		})
		if err != nil {
			return fmt.Errorf("export site: %w", err)
		}

		if _, err := fmt.Fprintf(out, "exported %d file(s) into %s\n", len(report.Files), cfg.OutputDir); err != nil {
			return err
		}
		for _, broken := range report.BrokenLinks {
			if _, err := fmt.Fprintf(out, "broken link %s\n", broken); err != nil {
				return err
			}
		}
		if cfg.Strict && len(report.BrokenLinks) > 0 {
			return fmt.Errorf("%w: %d found", ErrBrokenLinks, len(report.BrokenLinks))
		}
		return nil
	})
}
