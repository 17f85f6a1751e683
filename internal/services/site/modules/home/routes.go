package home

import (
	"net/http"

	"github.com/nrdn26/portfolio/internal/services/site/platform/httpx"
	"github.com/nrdn26/portfolio/internal/services/site/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Root+"{$}", h.handleLanding)
	mux.HandleFunc(routepath.Root+"{$}", httpx.MethodNotAllowed(http.MethodGet+", "+http.MethodHead))
	mux.HandleFunc(http.MethodGet+" "+routepath.NotFoundPage, h.handleNotFound)
	mux.HandleFunc(routepath.Root, h.handleNotFound)
}
