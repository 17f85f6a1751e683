// Package projects serves the full project index and per-project pages.
package projects

import (
	"fmt"
	"net/http"

	"github.com/nrdn26/portfolio/internal/services/site/module"
	"github.com/nrdn26/portfolio/internal/services/site/routepath"
)

// Module provides project index and detail routes.
type Module struct{}

// New returns a projects module.
func New() Module { return Module{} }

// ID returns a stable module identifier.
func (Module) ID() string { return "projects" }

// Mount wires project route handlers.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	if deps.Catalog == nil {
		return module.Mount{}, fmt.Errorf("catalog is required")
	}
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(newService(deps.Catalog), deps))
	return module.Mount{Prefix: routepath.ProjectsPrefix, Handler: mux}, nil
}
