package api

import (
	"fmt"
	"strconv"
	"strings"

	apperrors "github.com/nrdn26/portfolio/internal/platform/errors"
	"github.com/nrdn26/portfolio/internal/services/site/catalog"
)

type service struct {
	catalog *catalog.Catalog
}

func newService(c *catalog.Catalog) service {
	return service{catalog: c}
}

// listQuery holds parsed list filters. Zero values disable a filter.
type listQuery struct {
	Status   catalog.Status
	Featured bool
	Limit    int
	HasLimit bool
}

func parseListQuery(status, featured, limit string) (listQuery, error) {
	var q listQuery
	if strings.TrimSpace(status) != "" {
		parsed, err := catalog.ParseStatus(status)
		if err != nil {
			return listQuery{}, apperrors.Wrap(apperrors.CodeInvalidStatus, err.Error(), err)
		}
		q.Status = parsed
	}
	if raw := strings.TrimSpace(featured); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return listQuery{}, apperrors.New(apperrors.CodeInvalidFeatured, fmt.Sprintf("featured must be a boolean, got %q", featured))
		}
		q.Featured = parsed
	}
	if raw := strings.TrimSpace(limit); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return listQuery{}, apperrors.New(apperrors.CodeInvalidLimit, fmt.Sprintf("limit must be a non-negative integer, got %q", limit))
		}
		q.Limit = parsed
		q.HasLimit = true
	}
	return q, nil
}

// list applies status, then featured, then limit. Each stage is a catalog
// view over the previous stage's result.
func (s service) list(q listQuery) ([]catalog.Project, error) {
	view := s.catalog
	if q.Status != "" {
		next, err := catalog.New(view.FilterByStatus(q.Status))
		if err != nil {
			return nil, err
		}
		view = next
	}
	if q.Featured {
		next, err := catalog.New(view.FilterByFeatured())
		if err != nil {
			return nil, err
		}
		view = next
	}
	if q.HasLimit {
		return view.Take(q.Limit), nil
	}
	return view.All(), nil
}

func (s service) project(rawID string) (catalog.Project, error) {
	id, err := strconv.Atoi(strings.TrimSpace(rawID))
	if err != nil {
		return catalog.Project{}, apperrors.New(apperrors.CodeInvalidProjectID, fmt.Sprintf("project id must be an integer, got %q", rawID))
	}
	project, err := s.catalog.ByID(id)
	if err != nil {
		return catalog.Project{}, apperrors.Wrap(apperrors.CodeProjectNotFound, "Project not found", err)
	}
	return project, nil
}

// statsResponse flattens per-status counts with the catalog total.
type statsResponse struct {
	catalog.Counts
	Total int `json:"total"`
}

func (s service) stats() statsResponse {
	counts := s.catalog.Counts()
	return statsResponse{Counts: counts, Total: counts.Total()}
}

type healthResponse struct {
	Status   string `json:"status"`
	Projects int    `json:"projects"`
}

func (s service) health() healthResponse {
	return healthResponse{Status: "ok", Projects: s.catalog.Len()}
}
