// Package sqlite provides a SQLite-backed catalog snapshot store.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	sqlitemigrate "github.com/nrdn26/portfolio/internal/platform/storage/sqlitemigrate"
	"github.com/nrdn26/portfolio/internal/services/site/catalog"
	"github.com/nrdn26/portfolio/internal/services/site/storage"
	"github.com/nrdn26/portfolio/internal/services/site/storage/sqlite/migrations"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

// Store persists catalog snapshots in SQLite.
type Store struct {
	sqlDB *sql.DB
	now   func() time.Time
}

// Open opens a SQLite catalog store and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL&_pragma=foreign_keys(ON)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.Apply(context.Background(), sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB, now: time.Now}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// ReplaceProjects deletes the stored snapshot and writes projects in one
// transaction.
func (s *Store) ReplaceProjects(ctx context.Context, projects []catalog.Project) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin replace projects: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM project_tags`); err != nil {
		return fmt.Errorf("clear project tags: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM projects`); err != nil {
		return fmt.Errorf("clear projects: %w", err)
	}

	updatedAt := s.now().UTC().UnixMilli()
	for _, p := range projects {
		title := strings.TrimSpace(p.Title)
		if title == "" {
			return fmt.Errorf("project %d: title is required", p.ID)
		}
		_, err := tx.ExecContext(
			ctx,
			`INSERT INTO projects (
			   id, title, description, long_description,
			   github_url, live_url, image_url,
			   featured, status, updated_at
			 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			p.ID,
			title,
			p.Description,
			p.LongDescription,
			p.GitHubURL,
			p.LiveURL,
			p.ImageURL,
			boolToInt(p.Featured),
			string(p.Status),
			updatedAt,
		)
		if err != nil {
			if isProjectUniqueViolation(err) {
				return fmt.Errorf("project %d: %w", p.ID, storage.ErrAlreadyExists)
			}
			return fmt.Errorf("insert project %d: %w", p.ID, err)
		}
		for position, tag := range p.Tags {
			if _, err := tx.ExecContext(
				ctx,
				`INSERT INTO project_tags (project_id, position, tag) VALUES (?, ?, ?)`,
				p.ID, position, tag,
			); err != nil {
				return fmt.Errorf("insert project %d tag %d: %w", p.ID, position, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace projects: %w", err)
	}
	return nil
}

// ListProjects returns every stored project in id order.
func (s *Store) ListProjects(ctx context.Context) ([]catalog.Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT id, title, description, long_description,
		        github_url, live_url, image_url, featured, status
		   FROM projects
		  ORDER BY id ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	projects := make([]catalog.Project, 0)
	index := make(map[int]int)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		index[p.ID] = len(projects)
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate projects: %w", err)
	}

	tagRows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT project_id, tag FROM project_tags ORDER BY project_id ASC, position ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list project tags: %w", err)
	}
	defer tagRows.Close()
	for tagRows.Next() {
		var projectID int
		var tag string
		if err := tagRows.Scan(&projectID, &tag); err != nil {
			return nil, fmt.Errorf("scan project tag: %w", err)
		}
		if i, ok := index[projectID]; ok {
			projects[i].Tags = append(projects[i].Tags, tag)
		}
	}
	if err := tagRows.Err(); err != nil {
		return nil, fmt.Errorf("iterate project tags: %w", err)
	}
	return projects, nil
}

// GetProject returns one project by id.
func (s *Store) GetProject(ctx context.Context, id int) (catalog.Project, error) {
	if err := ctx.Err(); err != nil {
		return catalog.Project{}, err
	}
	if s == nil || s.sqlDB == nil {
		return catalog.Project{}, fmt.Errorf("storage is not configured")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT id, title, description, long_description,
		        github_url, live_url, image_url, featured, status
		   FROM projects
		  WHERE id = ?`,
		id,
	)
	p, err := scanProject(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return catalog.Project{}, storage.ErrNotFound
		}
		return catalog.Project{}, fmt.Errorf("get project: %w", err)
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT tag FROM project_tags WHERE project_id = ? ORDER BY position ASC`,
		id,
	)
	if err != nil {
		return catalog.Project{}, fmt.Errorf("get project tags: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var tag string
		if err := rows.Scan(&tag); err != nil {
			return catalog.Project{}, fmt.Errorf("scan project tag: %w", err)
		}
		p.Tags = append(p.Tags, tag)
	}
	if err := rows.Err(); err != nil {
		return catalog.Project{}, fmt.Errorf("iterate project tags: %w", err)
	}
	return p, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(row rowScanner) (catalog.Project, error) {
	var p catalog.Project
	var featured int
	var status string
	if err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Description,
		&p.LongDescription,
		&p.GitHubURL,
		&p.LiveURL,
		&p.ImageURL,
		&featured,
		&status,
	); err != nil {
		return catalog.Project{}, err
	}
	p.Featured = featured != 0
	p.Status = catalog.Status(status)
	return p, nil
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}

func isProjectUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	message := strings.ToLower(err.Error())
	return strings.Contains(message, "unique constraint failed") &&
		strings.Contains(message, "projects.id")
}

var _ storage.ProjectStore = (*Store)(nil)
