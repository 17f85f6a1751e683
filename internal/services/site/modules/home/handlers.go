package home

import (
	"log"
	"net/http"

	"github.com/a-h/templ"
	"github.com/nrdn26/portfolio/internal/services/site/module"
	"github.com/nrdn26/portfolio/internal/services/site/platform/pagerender"
	"github.com/nrdn26/portfolio/internal/services/site/platform/weberror"
	"github.com/nrdn26/portfolio/internal/services/site/templates"
)

type handlers struct {
	deps module.Dependencies
}

func newHandlers(deps module.Dependencies) handlers {
	return handlers{deps: deps}
}

func (h handlers) handleLanding(w http.ResponseWriter, r *http.Request) {
	cat := h.deps.Catalog
	view := templates.LandingView{
		Profile:  h.deps.Profile,
		Projects: cat.Take(templates.LandingLimit),
		Counts:   cat.Counts(),
		Total:    cat.Len(),
	}
	err := pagerender.WritePage(w, r, h.deps, pagerender.Page{
		Landing: true,
		Fragment: func(loc templates.Localizer) templ.Component {
			view.Loc = loc
			return templates.Landing(view)
		},
	})
	if err != nil {
		log.Printf("render landing page: %v", err)
	}
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteNotFound(w, r, h.deps)
}
