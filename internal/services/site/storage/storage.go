// Package storage defines persistence contracts for catalog snapshots.
package storage

import (
	"context"
	"errors"

	"github.com/nrdn26/portfolio/internal/services/site/catalog"
)

var (
	// ErrNotFound indicates a requested project record is missing.
	ErrNotFound = errors.New("record not found")
	// ErrAlreadyExists indicates a snapshot carries the same project id twice.
	ErrAlreadyExists = errors.New("record already exists")
)

// ProjectStore persists the project catalog as one replaceable snapshot.
type ProjectStore interface {
	// ReplaceProjects swaps the stored catalog for projects atomically.
	ReplaceProjects(ctx context.Context, projects []catalog.Project) error
	// ListProjects returns every stored project in id order.
	ListProjects(ctx context.Context) ([]catalog.Project, error)
	GetProject(ctx context.Context, id int) (catalog.Project, error)
}

// LoadCatalog reads the stored snapshot and validates it as a catalog.
func LoadCatalog(ctx context.Context, store ProjectStore) (*catalog.Catalog, error) {
	if store == nil {
		return nil, errors.New("project store is required")
	}
	projects, err := store.ListProjects(ctx)
	if err != nil {
		return nil, err
	}
	return catalog.New(projects)
}
