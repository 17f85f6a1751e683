// Package catalogimporter validates a YAML project catalog and writes it into
// a SQLite snapshot.
package catalogimporter

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	entrypoint "github.com/nrdn26/portfolio/internal/platform/cmd"
	"github.com/nrdn26/portfolio/internal/services/site/catalog"
	"github.com/nrdn26/portfolio/internal/services/site/storage"
	storagesqlite "github.com/nrdn26/portfolio/internal/services/site/storage/sqlite"
)

// Config holds configuration for the catalog importer.
type Config struct {
	CatalogPath string `env:"PORTFOLIO_CATALOG_PATH"`
	DBPath      string `env:"PORTFOLIO_CATALOG_DB"`
	DryRun      bool
}

// ParseConfig parses environment and CLI flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	cfg := Config{DBPath: filepath.Join("data", "catalog.db")}
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.CatalogPath, "catalog", cfg.CatalogPath, "YAML project catalog path (empty imports the embedded catalog)")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "catalog database path")
	fs.BoolVar(&cfg.DryRun, "dry-run", false, "validate without writing to the database")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	if !cfg.DryRun && strings.TrimSpace(cfg.DBPath) == "" {
		return Config{}, errors.New("db-path is required")
	}
	return cfg, nil
}

// Run validates the catalog and, unless DryRun is set, replaces the stored
// snapshot.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if out == nil {
		out = io.Discard
	}

	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceCatalogImporter, func(ctx context.Context) error {
		cat, source, err := readCatalog(cfg.CatalogPath)
		if err != nil {
			return err
		}
		if cfg.DryRun {
			_, err = fmt.Fprintf(out, "validated %d project(s) from %s\n", cat.Len(), source)
			return err
		}

		store, err := storagesqlite.Open(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("open catalog store: %w", err)
		}
		defer store.Close()
		if err := Import(ctx, store, cat); err != nil {
			return err
		}
		_, err = fmt.Fprintf(out, "imported %d project(s) from %s into %s\n", cat.Len(), source, cfg.DBPath)
		return err
	})
}

// Import replaces the snapshot in store with cat.
func Import(ctx context.Context, store storage.ProjectStore, cat *catalog.Catalog) error {
	if store == nil {
		return errors.New("project store is required")
	}
	if cat == nil {
		return errors.New("catalog is required")
	}
	if err := store.ReplaceProjects(ctx, cat.All()); err != nil {
		return fmt.Errorf("replace projects: %w", err)
	}
	return nil
}

func readCatalog(path string) (*catalog.Catalog, string, error) {
	if path = strings.TrimSpace(path); path != "" {
		cat, err := catalog.LoadFile(path)
		return cat, path, err
	}
	cat, err := catalog.Default()
	if err != nil {
		return nil, "", fmt.Errorf("load embedded catalog: %w", err)
	}
	return cat, "embedded catalog", nil
}
