// Package site hosts the portfolio web service.
package site

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/nrdn26/portfolio/internal/platform/timeouts"
	siteapp "github.com/nrdn26/portfolio/internal/services/site/app"
	"github.com/nrdn26/portfolio/internal/services/site/catalog"
	"github.com/nrdn26/portfolio/internal/services/site/module"
	"github.com/nrdn26/portfolio/internal/services/site/modules"
	"github.com/nrdn26/portfolio/internal/services/site/platform/httpx"
	"github.com/nrdn26/portfolio/internal/services/site/platform/observability"
	"github.com/nrdn26/portfolio/internal/services/site/profile"
	"github.com/nrdn26/portfolio/internal/services/site/routepath"
	sitestatic "github.com/nrdn26/portfolio/internal/services/site/static"
	"github.com/nrdn26/portfolio/internal/services/site/theme"
)

// Config defines startup inputs for the site service.
type Config struct {
	HTTPAddr string
	Catalog  *catalog.Catalog
	Profile  *profile.Profile
	Theme    theme.Config
	// PublicDir holds the avatar, card background, and resume. Empty
	// disables those paths.
	PublicDir string
	Now       func() time.Time
	Logger    *log.Logger
}

// Server hosts the site HTTP surface and lifecycle.
type Server struct {
	httpAddr   string
	httpServer *http.Server
}

// NewHandler builds the root handler from the default module registry.
func NewHandler(cfg Config) (http.Handler, error) {
	if cfg.Catalog == nil {
		return nil, errors.New("catalog is required")
	}
	if cfg.Profile == nil {
		return nil, errors.New("profile is required")
	}
	deps := module.Dependencies{
		Catalog: cfg.Catalog,
		Profile: cfg.Profile,
		Theme:   cfg.Theme,
		Now:     cfg.Now,
	}
	h, err := siteapp.Composer{}.Compose(siteapp.ComposeInput{
		Dependencies: deps,
		Modules:      modules.DefaultModules(),
	})
	if err != nil {
		return nil, err
	}

	rootMux := http.NewServeMux()
	rootMux.Handle(routepath.StaticPrefix, http.StripPrefix(routepath.StaticPrefix, http.FileServer(http.FS(sitestatic.FS))))
	if dir := strings.TrimSpace(cfg.PublicDir); dir != "" {
		public := http.FileServer(http.Dir(dir))
		rootMux.Handle(routepath.AssetsPrefix, public)
		rootMux.Handle(http.MethodGet+" "+routepath.Resume, public)
	}
	rootMux.Handle(routepath.Root, h)

	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	return httpx.Chain(rootMux,
		httpx.RecoverPanic(),
		httpx.RequestID(),
		observability.Trace(),
		observability.RequestLogger(logger),
	), nil
}

// NewServer validates config and constructs a site server.
func NewServer(_ context.Context, cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	handler, err := NewHandler(cfg)
	if err != nil {
		return nil, fmt.Errorf("compose site handler: %w", err)
	}
	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
	}, nil
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	if s == nil {
		return ""
	}
	return s.httpAddr
}

// ListenAndServe serves HTTP traffic until context cancellation or server stop.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("site server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown site http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve site http: %w", err)
	}
}

// Close closes open server resources.
func (s *Server) Close() {
	if s == nil || s.httpServer == nil {
		return
	}
	_ = s.httpServer.Close()
}
