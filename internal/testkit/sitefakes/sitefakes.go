// Package sitefakes provides catalog fixtures and in-memory store fakes for
// site tests.
package sitefakes

import (
	"context"
	"fmt"
	"slices"
	"sort"

	"github.com/nrdn26/portfolio/internal/services/site/catalog"
	"github.com/nrdn26/portfolio/internal/services/site/storage"
)

// Projects returns n projects with ids 1..n. Statuses rotate through
// completed, in-progress, planned; odd ids are featured and carry real links,
// even ids use the unavailable-link sentinel.
func Projects(n int) []catalog.Project {
	statuses := catalog.Statuses()
	out := make([]catalog.Project, 0, max(n, 0))
	for i := 1; i <= n; i++ {
		p := catalog.Project{
			ID:          i,
			Title:       fmt.Sprintf("Project %d", i),
			Description: fmt.Sprintf("Description %d", i),
			Tags:        []string{"Go", fmt.Sprintf("tag-%d", i)},
			GitHubURL:   catalog.UnavailableLink,
			LiveURL:     catalog.UnavailableLink,
			Featured:    i%2 == 1,
			Status:      statuses[(i-1)%len(statuses)],
		}
		if i%2 == 1 {
			p.GitHubURL = fmt.Sprintf("https://github.com/example/project-%d", i)
			p.LiveURL = fmt.Sprintf("https://example.com/project-%d", i)
			p.LongDescription = fmt.Sprintf("## Project %d\n\nBuilt with **Go**.", i)
		}
		out = append(out, p)
	}
	return out
}

// Catalog builds a validated catalog of n generated projects.
func Catalog(n int) (*catalog.Catalog, error) {
	return catalog.New(Projects(n))
}

// ProjectStore is an in-memory ProjectStore fake.
type ProjectStore struct {
	Projects map[int]catalog.Project
	// ReplaceErr, when set, is returned by ReplaceProjects.
	ReplaceErr error
	Replaced   int
}

// NewProjectStore constructs a ProjectStore fake with initialized state.
func NewProjectStore() *ProjectStore {
	return &ProjectStore{Projects: make(map[int]catalog.Project)}
}

func (s *ProjectStore) ReplaceProjects(_ context.Context, projects []catalog.Project) error {
	if s.ReplaceErr != nil {
		return s.ReplaceErr
	}
	next := make(map[int]catalog.Project, len(projects))
	for _, p := range projects {
		if _, ok := next[p.ID]; ok {
			return fmt.Errorf("project %d: %w", p.ID, storage.ErrAlreadyExists)
		}
		p.Tags = slices.Clone(p.Tags)
		next[p.ID] = p
	}
	s.Projects = next
	s.Replaced++
	return nil
}

func (s *ProjectStore) ListProjects(_ context.Context) ([]catalog.Project, error) {
	out := make([]catalog.Project, 0, len(s.Projects))
	for _, p := range s.Projects {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *ProjectStore) GetProject(_ context.Context, id int) (catalog.Project, error) {
	p, ok := s.Projects[id]
	if !ok {
		return catalog.Project{}, storage.ErrNotFound
	}
	return p, nil
}

var _ storage.ProjectStore = (*ProjectStore)(nil)
