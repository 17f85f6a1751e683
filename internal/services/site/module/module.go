// Package module defines the contract between the site composer and its
// route modules.
package module

import (
	"net/http"
	"time"

	"github.com/nrdn26/portfolio/internal/services/site/catalog"
	"github.com/nrdn26/portfolio/internal/services/site/profile"
	"github.com/nrdn26/portfolio/internal/services/site/theme"
)

// Dependencies carries shared read-only state for all modules.
type Dependencies struct {
	Catalog *catalog.Catalog
	Profile *profile.Profile
	Theme   theme.Config
	// Now supplies the clock for the footer copyright year.
	Now func() time.Time
}

// Year returns the current calendar year from Now, falling back to the
// wall clock.
func (d Dependencies) Year() int {
	if d.Now != nil {
		return d.Now().Year()
	}
	return time.Now().Year()
}

// Mount describes a module's routing prefix and handler.
type Mount struct {
	Prefix  string
	Handler http.Handler
}

// Module is a self-contained route group.
type Module interface {
	ID() string
	Mount(Dependencies) (Mount, error)
}
