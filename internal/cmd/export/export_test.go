package export

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	sitecmd "github.com/nrdn26/portfolio/internal/cmd/site"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.OutputDir != "dist" {
		t.Fatalf("OutputDir = %q, want %q", cfg.OutputDir, "dist")
	}
	if cfg.Concurrency != 4 {
		t.Fatalf("Concurrency = %d, want %d", cfg.Concurrency, 4)
	}
	if cfg.Strict {
		t.Fatalf("Strict = %t, want false", cfg.Strict)
	}
}

func TestParseConfigOverrides(t *testing.T) {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-out", "site", "-strict", "-concurrency", "8", "-public-dir", "assets"})
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.OutputDir != "site" || !cfg.Strict || cfg.Concurrency != 8 {
		t.Fatalf("cfg = %+v, want out=site strict concurrency=8", cfg)
	}
	if cfg.Content.PublicDir != "assets" {
		t.Fatalf("PublicDir = %q, want %q", cfg.Content.PublicDir, "assets")
	}
}

func TestParseConfigRejectsEmptyOut(t *testing.T) {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	if _, err := ParseConfig(fs, []string{"-out", " "}); err == nil {
		t.Fatalf("expected empty out error")
	}
}

func TestRunWritesSite(t *testing.T) {
	t.Parallel()

	out := filepath.Join(t.TempDir(), "dist")
	var buf bytes.Buffer
	err := Run(context.Background(), Config{
		OutputDir: out,
		Content:   sitecmd.ContentConfig{PublicDir: ""},
	}, &buf)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(out, "index.html")); err != nil {
		t.Fatalf("stat index.html: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "exported ") {
		t.Fatalf("output = %q, want summary line", buf.String())
	}
	if !strings.Contains(buf.String(), "broken link index.html -> /resume.pdf") {
		t.Fatalf("output = %q, want missing resume reported", buf.String())
	}
}

func TestRunStrictFailsOnBrokenLinks(t *testing.T) {
	t.Parallel()

	err := Run(context.Background(), Config{
		OutputDir: filepath.Join(t.TempDir(), "dist"),
		Strict:    true,
	}, nil)
	if !errors.Is(err, ErrBrokenLinks) {
		t.Fatalf("Run() error = %v, want %v", err, ErrBrokenLinks)
	}
}
