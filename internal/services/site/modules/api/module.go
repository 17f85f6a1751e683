// Package api serves the read-only JSON view of the project catalog.
package api

import (
	"fmt"

	"github.com/nrdn26/portfolio/internal/services/site/module"
	"github.com/nrdn26/portfolio/internal/services/site/routepath"
)

// Module provides JSON catalog routes.
type Module struct{}

// New returns an api module.
func New() Module { return Module{} }

// ID returns a stable module identifier.
func (Module) ID() string { return "api" }

// Mount wires JSON route handlers.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	if deps.Catalog == nil {
		return module.Mount{}, fmt.Errorf("catalog is required")
	}
	return module.Mount{Prefix: routepath.APIPrefix, Handler: newRouter(newHandlers(newService(deps.Catalog)))}, nil
}
