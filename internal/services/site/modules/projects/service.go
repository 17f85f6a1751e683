package projects

import (
	"fmt"
	"html/template"
	"strconv"
	"strings"

	apperrors "github.com/nrdn26/portfolio/internal/platform/errors"
	"github.com/nrdn26/portfolio/internal/platform/markdown"
	"github.com/nrdn26/portfolio/internal/services/site/catalog"
)

type service struct {
	catalog  *catalog.Catalog
	markdown *markdown.Renderer
}

func newService(c *catalog.Catalog) service {
	return service{catalog: c, markdown: markdown.New()}
}

type indexResult struct {
	Projects []catalog.Project
	Counts   catalog.Counts
	Status   catalog.Status
}

// index returns the catalog filtered by rawStatus; empty means every project.
func (s service) index(rawStatus string) (indexResult, error) {
	result := indexResult{Counts: s.catalog.Counts()}
	if strings.TrimSpace(rawStatus) == "" {
		result.Projects = s.catalog.All()
		return result, nil
	}
	status, err := catalog.ParseStatus(rawStatus)
	if err != nil {
		return indexResult{}, apperrors.Wrap(apperrors.CodeInvalidStatus, err.Error(), err)
	}
	result.Status = status
	result.Projects = s.catalog.FilterByStatus(status)
	return result, nil
}

type detailResult struct {
	Project  catalog.Project
	LongHTML template.HTML
}

func (s service) detail(rawID string) (detailResult, error) {
	id, err := strconv.Atoi(strings.TrimSpace(rawID))
	if err != nil || id <= 0 {
		return detailResult{}, apperrors.New(apperrors.CodeProjectNotFound, fmt.Sprintf("project %q not found", rawID))
	}
	project, err := s.catalog.ByID(id)
	if err != nil {
		return detailResult{}, apperrors.Wrap(apperrors.CodeProjectNotFound, fmt.Sprintf("project %d not found", id), err)
	}
	result := detailResult{Project: project}
	if project.HasLongDescription() {
		rendered, err := s.markdown.Render(project.LongDescription)
		if err != nil {
			return detailResult{}, apperrors.Wrap(apperrors.CodeRenderFailed, "render long description", err)
		}
		result.LongHTML = template.HTML(rendered)
	}
	return result, nil
}
