package catalog

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound indicates a requested project id is not in the catalog.
	ErrNotFound = errors.New("project not found")
	// ErrInvalidStatus indicates a status outside the known set.
	ErrInvalidStatus = errors.New("invalid project status")
	// ErrDuplicateID indicates two projects share an id.
	ErrDuplicateID = errors.New("duplicate project id")
	// ErrInvalidID indicates a project id that is not a positive integer.
	ErrInvalidID = errors.New("invalid project id")
)

// Counts holds the number of projects per status.
type Counts struct {
	Completed  int `json:"completed"`
	InProgress int `json:"inProgress"`
	Planned    int `json:"planned"`
}

// Total returns the sum of all partitions.
func (c Counts) Total() int {
	return c.Completed + c.InProgress + c.Planned
}

// For returns the count for status.
func (c Counts) For(status Status) int {
	switch status {
	case StatusCompleted:
		return c.Completed
	case StatusInProgress:
		return c.InProgress
	case StatusPlanned:
		return c.Planned
	default:
		return 0
	}
}

// Catalog is an immutable, ordered project list.
type Catalog struct {
	projects []Project
	byID     map[int]int
}

// New validates projects and builds a catalog preserving their order.
func New(projects []Project) (*Catalog, error) {
	c := &Catalog{
		projects: make([]Project, 0, len(projects)),
		byID:     make(map[int]int, len(projects)),
	}
	for i, p := range projects {
		if strings.TrimSpace(p.Title) == "" {
			return nil, fmt.Errorf("project %d (position %d): title is required", p.ID, i)
		}
		if !p.Status.Valid() {
			return nil, fmt.Errorf("project %d: %w: %q", p.ID, ErrInvalidStatus, p.Status)
		}
		if p.ID <= 0 {
			return nil, fmt.Errorf("project %q: %w: %d", p.Title, ErrInvalidID, p.ID)
		}
		if _, ok := c.byID[p.ID]; ok {
			return nil, fmt.Errorf("project %d: %w", p.ID, ErrDuplicateID)
		}
		c.byID[p.ID] = len(c.projects)
		c.projects = append(c.projects, p.clone())
	}
	return c, nil
}

// Len returns the number of projects.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.projects)
}

// All returns every project in catalog order.
func (c *Catalog) All() []Project {
	if c == nil {
		return []Project{}
	}
	return cloneProjects(c.projects)
}

// FilterByStatus returns projects whose status equals status, in catalog order.
func (c *Catalog) FilterByStatus(status Status) []Project {
	return c.filter(func(p Project) bool { return p.Status == status })
}

// FilterByFeatured returns featured projects in catalog order.
func (c *Catalog) FilterByFeatured() []Project {
	return c.filter(func(p Project) bool { return p.Featured })
}

// Take returns the first n projects. n larger than the catalog yields every
// project; n <= 0 yields none.
func (c *Catalog) Take(n int) []Project {
	if c == nil || n <= 0 {
		return []Project{}
	}
	n = min(n, len(c.projects))
	return cloneProjects(c.projects[:n])
}

// Counts returns how many projects sit in each status.
func (c *Catalog) Counts() Counts {
	var counts Counts
	if c == nil {
		return counts
	}
	for _, p := range c.projects {
		switch p.Status {
		case StatusCompleted:
			counts.Completed++
		case StatusInProgress:
			counts.InProgress++
		case StatusPlanned:
			counts.Planned++
		}
	}
	return counts
}

// ByID returns the project with id.
func (c *Catalog) ByID(id int) (Project, error) {
	if c == nil {
		return Project{}, ErrNotFound
	}
	idx, ok := c.byID[id]
	if !ok {
		return Project{}, fmt.Errorf("project %d: %w", id, ErrNotFound)
	}
	return c.projects[idx].clone(), nil
}

func (c *Catalog) filter(keep func(Project) bool) []Project {
	out := []Project{}
	if c == nil {
		return out
	}
	for _, p := range c.projects {
		if keep(p) {
			out = append(out, p.clone())
		}
	}
	return out
}
