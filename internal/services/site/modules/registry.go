// Package modules lists the site's route modules.
package modules

import (
	"github.com/nrdn26/portfolio/internal/services/site/module"
	"github.com/nrdn26/portfolio/internal/services/site/modules/api"
	"github.com/nrdn26/portfolio/internal/services/site/modules/home"
	"github.com/nrdn26/portfolio/internal/services/site/modules/projects"
)

// DefaultModules returns the modules mounted by the site service.
func DefaultModules() []module.Module {
	return []module.Module{
		home.New(),
		projects.New(),
		api.New(),
	}
}
