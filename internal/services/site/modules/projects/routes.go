package projects

import (
	"net/http"

	"github.com/nrdn26/portfolio/internal/services/site/platform/httpx"
	"github.com/nrdn26/portfolio/internal/services/site/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	allow := http.MethodGet + ", " + http.MethodHead
	mux.HandleFunc(http.MethodGet+" "+routepath.ProjectsPrefix+"{$}", h.handleIndex)
	mux.HandleFunc(routepath.ProjectsPrefix+"{$}", httpx.MethodNotAllowed(allow))
	mux.HandleFunc(http.MethodGet+" "+routepath.ProjectPattern, h.handleDetail)
	mux.HandleFunc(http.MethodGet+" "+routepath.ProjectPattern+"/{$}", h.handleDetail)
	mux.HandleFunc(routepath.ProjectPattern, httpx.MethodNotAllowed(allow))
	mux.HandleFunc(routepath.ProjectsPrefix, h.handleNotFound)
}
