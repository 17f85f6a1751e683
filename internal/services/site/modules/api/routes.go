package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	apperrors "github.com/nrdn26/portfolio/internal/platform/errors"
	"github.com/nrdn26/portfolio/internal/services/site/platform/httpx"
)

// projectIDParam names the chi URL parameter for project routes.
const projectIDParam = "projectID"

func newRouter(h handlers) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.GetHead)
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		_ = httpx.WriteJSONError(w, apperrors.New(apperrors.CodeNotFound, "route not found"))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Allow", http.MethodGet+", "+http.MethodHead)
		_ = httpx.WriteJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": http.StatusText(http.StatusMethodNotAllowed)})
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/projects", h.listProjects)
		r.Get("/projects/stats", h.projectStats)
		r.Get("/projects/{"+projectIDParam+"}", h.getProject)
		r.Get("/health", h.health)
	})
	return r
}
