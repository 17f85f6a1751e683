package api

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/nrdn26/portfolio/internal/services/site/platform/httpx"
	"github.com/nrdn26/portfolio/internal/services/site/routepath"
)

type handlers struct {
	svc service
}

func newHandlers(svc service) handlers {
	return handlers{svc: svc}
}

// listProjects handles GET /api/projects.
func (h handlers) listProjects(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	q, err := parseListQuery(query.Get(routepath.StatusParam), query.Get("featured"), query.Get("limit"))
	if err != nil {
		respondError(w, err)
		return
	}
	projects, err := h.svc.list(q)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, projects)
}

// getProject handles GET /api/projects/{projectID}.
func (h handlers) getProject(w http.ResponseWriter, r *http.Request) {
	project, err := h.svc.project(chi.URLParam(r, projectIDParam))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, project)
}

// projectStats handles GET /api/projects/stats.
func (h handlers) projectStats(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, h.svc.stats())
}

// health handles GET /api/health.
func (h handlers) health(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, h.svc.health())
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	if err := httpx.WriteJSON(w, status, payload); err != nil {
		log.Printf("write json response: %v", err)
	}
}

func respondError(w http.ResponseWriter, err error) {
	if writeErr := httpx.WriteJSONError(w, err); writeErr != nil {
		log.Printf("write json error: %v", writeErr)
	}
}
