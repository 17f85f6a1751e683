// Package site parses site service flags and launches the service.
package site

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	entrypoint "github.com/nrdn26/portfolio/internal/platform/cmd"
	sitesvc "github.com/nrdn26/portfolio/internal/services/site"
	"github.com/nrdn26/portfolio/internal/services/site/catalog"
	"github.com/nrdn26/portfolio/internal/services/site/profile"
	"github.com/nrdn26/portfolio/internal/services/site/storage"
	storagesqlite "github.com/nrdn26/portfolio/internal/services/site/storage/sqlite"
	"github.com/nrdn26/portfolio/internal/services/site/theme"
)

// Config holds site command configuration.
type Config struct {
	HTTPAddr string `env:"PORTFOLIO_SITE_HTTP_ADDR" envDefault:"localhost:8080"`
	Content  ContentConfig
}

// ContentConfig selects where catalog and profile data come from. Empty
// paths fall back to the embedded defaults.
type ContentConfig struct {
	CatalogPath string `env:"PORTFOLIO_CATALOG_PATH"`
	// DBPath reads the catalog from a snapshot written by catalog-importer
	// and takes precedence over CatalogPath.
	DBPath      string `env:"PORTFOLIO_CATALOG_DB"`
	ProfilePath string `env:"PORTFOLIO_PROFILE_PATH"`
	PublicDir   string `env:"PORTFOLIO_PUBLIC_DIR" envDefault:"public"`
	ThemeMode   string `env:"PORTFOLIO_THEME_DEFAULT" envDefault:"system"`
}

// BindFlags registers content flags on fs with cfg's current values as
// defaults.
func (cfg *ContentConfig) BindFlags(fs *flag.FlagSet) {
	fs.StringVar(&cfg.CatalogPath, "catalog", cfg.CatalogPath, "YAML project catalog path (empty uses the embedded catalog)")
	fs.StringVar(&cfg.DBPath, "catalog-db", cfg.DBPath, "SQLite catalog snapshot path (overrides -catalog)")
	fs.StringVar(&cfg.ProfilePath, "profile", cfg.ProfilePath, "YAML profile path (empty uses the embedded profile)")
	fs.StringVar(&cfg.PublicDir, "public-dir", cfg.PublicDir, "Directory with avatar, card background, and resume")
	fs.StringVar(&cfg.ThemeMode, "theme", cfg.ThemeMode, "Default theme: light, dark, or system")
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	cfg.Content.BindFlags(fs)
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Content is the loaded, validated site content.
type Content struct {
	Catalog *catalog.Catalog
	Profile *profile.Profile
	Theme   theme.Config
	// PublicDir is empty when the configured directory does not exist.
	PublicDir string
}

// LoadContent reads catalog, profile, and theme settings.
func LoadContent(ctx context.Context, cfg ContentConfig) (Content, error) {
	mode, err := theme.ParseMode(cfg.ThemeMode)
	if err != nil {
		return Content{}, err
	}
	themeCfg := theme.DefaultConfig()
	themeCfg.Default = mode

	cat, err := loadCatalog(ctx, cfg)
	if err != nil {
		return Content{}, err
	}

	var p *profile.Profile
	if path := strings.TrimSpace(cfg.ProfilePath); path != "" {
		p, err = profile.LoadFile(path)
	} else {
		p, err = profile.Default()
	}
	if err != nil {
		return Content{}, fmt.Errorf("load profile: %w", err)
	}

	publicDir := strings.TrimSpace(cfg.PublicDir)
	if publicDir != "" {
		if info, err := os.Stat(publicDir); err != nil || !info.IsDir() {
			log.Printf("public dir unavailable path=%s; asset paths will 404", publicDir)
			publicDir = ""
		}
	}

	return Content{Catalog: cat, Profile: p, Theme: themeCfg, PublicDir: publicDir}, nil
}

// ErrEmptySnapshot is returned when the catalog database holds no projects.
var ErrEmptySnapshot = errors.New("catalog snapshot is empty; run catalog-importer first")

func loadCatalog(ctx context.Context, cfg ContentConfig) (*catalog.Catalog, error) {
	if dbPath := strings.TrimSpace(cfg.DBPath); dbPath != "" {
		// Opening a missing path would create and migrate an empty database.
		if _, err := os.Stat(dbPath); err != nil {
			return nil, fmt.Errorf("catalog snapshot %s: %w", dbPath, err)
		}
		store, err := storagesqlite.Open(dbPath)
		if err != nil {
			return nil, fmt.Errorf("open catalog store: %w", err)
		}
		defer store.Close()
		cat, err := storage.LoadCatalog(ctx, store)
		if err != nil {
			return nil, fmt.Errorf("load catalog snapshot: %w", err)
		}
		if cat.Len() == 0 {
			return nil, fmt.Errorf("catalog snapshot %s: %w", dbPath, ErrEmptySnapshot)
		}
		return cat, nil
	}
	if path := strings.TrimSpace(cfg.CatalogPath); path != "" {
		return catalog.LoadFile(path)
	}
	cat, err := catalog.Default()
	if err != nil {
		return nil, fmt.Errorf("load embedded catalog: %w", err)
	}
	return cat, nil
}

// Run starts the site HTTP service.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceSite, func(ctx context.Context) error {
		content, err := LoadContent(ctx, cfg.Content)
		if err != nil {
			return err
		}
		server, err := sitesvc.NewServer(ctx, sitesvc.Config{
			HTTPAddr:  cfg.HTTPAddr,
			Catalog:   content.Catalog,
			Profile:   content.Profile,
			Theme:     content.Theme,
			PublicDir: content.PublicDir,
		})
		if err != nil {
			return fmt.Errorf("init site server: %w", err)
		}
		defer server.Close()

		log.Printf("site listening addr=%s projects=%d", server.Addr(), content.Catalog.Len())
		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve site: %w", err)
		}
		return nil
	})
}
