package projects

import (
	"log"
	"net/http"

	"github.com/a-h/templ"
	"github.com/nrdn26/portfolio/internal/services/site/module"
	"github.com/nrdn26/portfolio/internal/services/site/platform/pagerender"
	"github.com/nrdn26/portfolio/internal/services/site/platform/weberror"
	"github.com/nrdn26/portfolio/internal/services/site/routepath"
	"github.com/nrdn26/portfolio/internal/services/site/templates"
)

type handlers struct {
	svc  service
	deps module.Dependencies
}

func newHandlers(svc service, deps module.Dependencies) handlers {
	return handlers{svc: svc, deps: deps}
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.index(r.URL.Query().Get(routepath.StatusParam))
	if err != nil {
		weberror.WriteError(w, r, h.deps, err)
		return
	}
	view := templates.IndexView{
		Projects: result.Projects,
		Counts:   result.Counts,
		Status:   result.Status,
		Backdrop: h.backdrop(),
	}
	err = pagerender.WritePage(w, r, h.deps, pagerender.Page{
		Title: "All Projects",
		Fragment: func(loc templates.Localizer) templ.Component {
			view.Loc = loc
			return templates.ProjectIndex(view)
		},
	})
	if err != nil {
		log.Printf("render project index: %v", err)
	}
}

func (h handlers) handleDetail(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.detail(r.PathValue("projectID"))
	if err != nil {
		weberror.WriteError(w, r, h.deps, err)
		return
	}
	err = pagerender.WritePage(w, r, h.deps, pagerender.Page{
		Title:       result.Project.Title,
		Description: result.Project.Description,
		Fragment: func(loc templates.Localizer) templ.Component {
			return templates.ProjectDetail(templates.DetailView{
				Loc:      loc,
				Project:  result.Project,
				LongHTML: result.LongHTML,
			})
		},
	})
	if err != nil {
		log.Printf("render project %d: %v", result.Project.ID, err)
	}
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteNotFound(w, r, h.deps)
}

func (h handlers) backdrop() string {
	if h.deps.Profile == nil {
		return ""
	}
	return h.deps.Profile.Assets.CardBackground
}
