// Package export renders the site into a directory of static files.
package export

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/nrdn26/portfolio/internal/services/site/catalog"
	"github.com/nrdn26/portfolio/internal/services/site/routepath"
	sitestatic "github.com/nrdn26/portfolio/internal/services/site/static"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"
)

const tracerName = "github.com/nrdn26/portfolio/internal/services/site/export"

// DefaultConcurrency bounds parallel page renders when Config leaves it unset.
const DefaultConcurrency = 4

// Config defines export inputs.
type Config struct {
	OutputDir string
	// Handler is the fully composed site handler.
	Handler http.Handler
	Catalog *catalog.Catalog
	// PublicDir is copied verbatim into OutputDir when set.
	PublicDir   string
	Concurrency int
}

// Report summarizes one export run.
type Report struct {
	// Files lists written files relative to OutputDir, sorted.
	Files       []string
	BrokenLinks []BrokenLink
}

// BrokenLink is an internal reference that does not resolve to an exported
// file or fragment.
type BrokenLink struct {
	// Page is the exported file that carries the link.
	Page string
	Href string
}

func (b BrokenLink) String() string {
	return b.Page + " -> " + b.Href
}

// page maps one request path to its output file.
type page struct {
	Path       string
	File       string
	WantStatus int
}

// pagesFor returns the documents rendered for c in a stable order.
func pagesFor(c *catalog.Catalog) []page {
	pages := []page{
		{Path: routepath.Root, File: "index.html", WantStatus: http.StatusOK},
		{Path: routepath.ProjectsPrefix, File: "projects/index.html", WantStatus: http.StatusOK},
	}
	for _, p := range c.All() {
		id := strconv.Itoa(p.ID)
		pages = append(pages,
			page{Path: routepath.Project(p.ID), File: "projects/" + id + "/index.html", WantStatus: http.StatusOK},
			page{Path: routepath.APIProject(p.ID), File: "api/projects/" + id + ".json", WantStatus: http.StatusOK},
		)
	}
	pages = append(pages,
		page{Path: routepath.APIProjects, File: "api/projects.json", WantStatus: http.StatusOK},
		page{Path: routepath.APIStats, File: "api/stats.json", WantStatus: http.StatusOK},
		page{Path: routepath.NotFoundPage, File: "404.html", WantStatus: http.StatusNotFound},
	)
	return pages
}

// Run renders every page, copies assets, and audits internal links.
func Run(ctx context.Context, cfg Config) (Report, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	outDir := strings.TrimSpace(cfg.OutputDir)
	if outDir == "" {
		return Report{}, errors.New("output directory is required")
	}
	if cfg.Handler == nil {
		return Report{}, errors.New("site handler is required")
	}
	if cfg.Catalog == nil {
		return Report{}, errors.New("catalog is required")
	}
	limit := cfg.Concurrency
	if limit <= 0 {
		limit = DefaultConcurrency
	}

	ctx, span := otel.Tracer(tracerName).Start(ctx, "export.Run")
	defer span.End()
	fail := func(err error) (Report, error) {
		span.RecordError(err)
		span.SetStatus(codes.Error, "export failed")
		return Report{}, err
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fail(fmt.Errorf("create output dir: %w", err))
	}

	pages := pagesFor(cfg.Catalog)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for _, p := range pages {
		g.Go(func() error {
			return renderPage(gctx, cfg.Handler, outDir, p)
		})
	}
	if err := g.Wait(); err != nil {
		return fail(err)
	}

	files := make([]string, 0, len(pages))
	for _, p := range pages {
		files = append(files, p.File)
	}

	staticFiles, err := copyFS(ctx, sitestatic.FS, filepath.Join(outDir, strings.Trim(routepath.StaticPrefix, "/")))
	if err != nil {
		return fail(fmt.Errorf("copy static assets: %w", err))
	}
	for _, f := range staticFiles {
		files = append(files, path.Join(strings.Trim(routepath.StaticPrefix, "/"), f))
	}

	if dir := strings.TrimSpace(cfg.PublicDir); dir != "" {
		publicFiles, err := copyFS(ctx, os.DirFS(dir), outDir)
		if err != nil {
			return fail(fmt.Errorf("copy public dir: %w", err))
		}
		files = append(files, publicFiles...)
	}
	slices.Sort(files)
	files = slices.Compact(files)

	broken, err := AuditLinks(outDir)
	if err != nil {
		return fail(fmt.Errorf("audit links: %w", err))
	}

	span.SetAttributes(
		attribute.Int("export.files", len(files)),
		attribute.Int("export.broken_links", len(broken)),
	)
	return Report{Files: files, BrokenLinks: broken}, nil
}

func renderPage(ctx context.Context, handler http.Handler, outDir string, p page) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	req := httptest.NewRequest(http.MethodGet, p.Path, nil).WithContext(ctx)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != p.WantStatus {
		return fmt.Errorf("render %s: status %d, want %d", p.Path, rec.Code, p.WantStatus)
	}
	return writeFile(filepath.Join(outDir, filepath.FromSlash(p.File)), rec.Body.Bytes())
}

func writeFile(name string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(name), 0o755); err != nil {
		return fmt.Errorf("create dir for %s: %w", name, err)
	}
	if err := os.WriteFile(name, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}

// copyFS writes every regular file in src under dst and returns their
// slash-separated relative paths.
func copyFS(ctx context.Context, src fs.FS, dst string) ([]string, error) {
	var copied []string
	err := fs.WalkDir(src, ".", func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}
		data, err := fs.ReadFile(src, name)
		if err != nil {
			return err
		}
		if err := writeFile(filepath.Join(dst, filepath.FromSlash(name)), data); err != nil {
			return err
		}
		copied = append(copied, name)
		return nil
	})
	return copied, err
}
