package site

import (
	"context"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/nrdn26/portfolio/internal/services/site/catalog"
	storagesqlite "github.com/nrdn26/portfolio/internal/services/site/storage/sqlite"
	"github.com/nrdn26/portfolio/internal/services/site/theme"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("site", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "localhost:8080" {
		t.Fatalf("HTTPAddr = %q, want %q", cfg.HTTPAddr, "localhost:8080")
	}
	if cfg.Content.PublicDir != "public" {
		t.Fatalf("PublicDir = %q, want %q", cfg.Content.PublicDir, "public")
	}
	if cfg.Content.ThemeMode != "system" {
		t.Fatalf("ThemeMode = %q, want %q", cfg.Content.ThemeMode, "system")
	}
	if cfg.Content.CatalogPath != "" || cfg.Content.DBPath != "" {
		t.Fatalf("catalog sources = %+v, want embedded default", cfg.Content)
	}
}

func TestParseConfigReadsEnv(t *testing.T) {
	t.Setenv("PORTFOLIO_SITE_HTTP_ADDR", "0.0.0.0:9000")
	t.Setenv("PORTFOLIO_CATALOG_PATH", "/srv/projects.yaml")

	fs := flag.NewFlagSet("site", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "0.0.0.0:9000" {
		t.Fatalf("HTTPAddr = %q, want %q", cfg.HTTPAddr, "0.0.0.0:9000")
	}
	if cfg.Content.CatalogPath != "/srv/projects.yaml" {
		t.Fatalf("CatalogPath = %q, want %q", cfg.Content.CatalogPath, "/srv/projects.yaml")
	}
}

func TestParseConfigFlagsOverrideEnv(t *testing.T) {
	t.Setenv("PORTFOLIO_SITE_HTTP_ADDR", "0.0.0.0:9000")

	fs := flag.NewFlagSet("site", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-http-addr", "127.0.0.1:9001", "-theme", "dark", "-catalog-db", "catalog.db"})
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "127.0.0.1:9001" {
		t.Fatalf("HTTPAddr = %q, want %q", cfg.HTTPAddr, "127.0.0.1:9001")
	}
	if cfg.Content.ThemeMode != "dark" {
		t.Fatalf("ThemeMode = %q, want %q", cfg.Content.ThemeMode, "dark")
	}
	if cfg.Content.DBPath != "catalog.db" {
		t.Fatalf("DBPath = %q, want %q", cfg.Content.DBPath, "catalog.db")
	}
}

func TestLoadContentDefaults(t *testing.T) {
	t.Parallel()

	content, err := LoadContent(context.Background(), ContentConfig{PublicDir: filepath.Join(t.TempDir(), "missing")})
	if err != nil {
		t.Fatalf("LoadContent() error = %v", err)
	}
	if content.Catalog.Len() == 0 {
		t.Fatalf("embedded catalog is empty")
	}
	if content.Profile == nil {
		t.Fatalf("profile is nil")
	}
	if content.PublicDir != "" {
		t.Fatalf("PublicDir = %q, want empty for missing dir", content.PublicDir)
	}
	if content.Theme.Default != theme.ModeSystem {
		t.Fatalf("Theme.Default = %q, want %q", content.Theme.Default, theme.ModeSystem)
	}
}

func TestLoadContentFromCatalogFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "projects.yaml")
	yaml := "projects:\n  - id: 7\n    title: Solo\n    status: planned\n    github_url: \"#\"\n    live_url: \"#\"\n"
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
	publicDir := t.TempDir()
	content, err := LoadContent(context.Background(), ContentConfig{CatalogPath: path, PublicDir: publicDir, ThemeMode: "light"})
	if err != nil {
		t.Fatalf("LoadContent() error = %v", err)
	}
	if got := content.Catalog.Len(); got != 1 {
		t.Fatalf("Len() = %d, want %d", got, 1)
	}
	if content.PublicDir != publicDir {
		t.Fatalf("PublicDir = %q, want %q", content.PublicDir, publicDir)
	}
	if content.Theme.Default != theme.ModeLight {
		t.Fatalf("Theme.Default = %q, want %q", content.Theme.Default, theme.ModeLight)
	}
}

func TestLoadContentPrefersSnapshot(t *testing.T) {
	t.Parallel()

	dbPath := filepath.Join(t.TempDir(), "catalog.db")
	store, err := storagesqlite.Open(dbPath)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	if err := store.ReplaceProjects(context.Background(), []catalog.Project{
		{ID: 11, Title: "Snap", Status: catalog.StatusCompleted},
		{ID: 12, Title: "Shot", Status: catalog.StatusInProgress},
	}); err != nil {
		t.Fatalf("replace projects: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close store: %v", err)
	}

	content, err := LoadContent(context.Background(), ContentConfig{DBPath: dbPath, CatalogPath: "ignored.yaml"})
	if err != nil {
		t.Fatalf("LoadContent() error = %v", err)
	}
	if got := content.Catalog.Len(); got != 2 {
		t.Fatalf("Len() = %d, want %d", got, 2)
	}
	if _, err := content.Catalog.ByID(11); err != nil {
		t.Fatalf("ByID(11) error = %v", err)
	}
}

func TestLoadContentRejectsBadInputs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  ContentConfig
	}{
		{name: "theme", cfg: ContentConfig{ThemeMode: "sepia"}},
		{name: "catalog", cfg: ContentConfig{CatalogPath: filepath.Join(t.TempDir(), "missing.yaml")}},
		{name: "profile", cfg: ContentConfig{ProfilePath: filepath.Join(t.TempDir(), "missing.yaml")}},
		{name: "catalog db", cfg: ContentConfig{DBPath: filepath.Join(t.TempDir(), "missing.db")}},
	}
	for _, tc := range tests {
		if _, err := LoadContent(context.Background(), tc.cfg); err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
	}
}

func TestLoadContentMissingSnapshotIsNotCreated(t *testing.T) {
	t.Parallel()

	dbPath := filepath.Join(t.TempDir(), "missing.db")
	if _, err := LoadContent(context.Background(), ContentConfig{DBPath: dbPath}); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("LoadContent() error = %v, want %v", err, os.ErrNotExist)
	}
	if _, err := os.Stat(dbPath); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("missing snapshot was created: %v", err)
	}
}

func TestLoadContentRejectsEmptySnapshot(t *testing.T) {
	t.Parallel()

	dbPath := filepath.Join(t.TempDir(), "catalog.db")
	store, err := storagesqlite.Open(dbPath)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close store: %v", err)
	}

	if _, err := LoadContent(context.Background(), ContentConfig{DBPath: dbPath}); !errors.Is(err, ErrEmptySnapshot) {
		t.Fatalf("LoadContent() error = %v, want %v", err, ErrEmptySnapshot)
	}
}
