// Package home serves the single-page landing document.
package home

import (
	"fmt"
	"net/http"

	"github.com/nrdn26/portfolio/internal/services/site/module"
	"github.com/nrdn26/portfolio/internal/services/site/routepath"
)

// Module provides the landing page and the site-wide not-found fallback.
type Module struct{}

// New returns a home module.
func New() Module { return Module{} }

// ID returns a stable module identifier.
func (Module) ID() string { return "home" }

// Mount wires landing route handlers.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	if deps.Catalog == nil {
		return module.Mount{}, fmt.Errorf("catalog is required")
	}
	if deps.Profile == nil {
		return module.Mount{}, fmt.Errorf("profile is required")
	}
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(deps))
	return module.Mount{Prefix: routepath.Root, Handler: mux}, nil
}
