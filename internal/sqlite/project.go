package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rpggio/punchclock/internal/domain/project"
	"github.com/rpggio/punchclock/internal/repository"
)

// ProjectRepository implements repository.ProjectRepository for SQLite
type ProjectRepository struct {
	db DBTX
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db DBTX) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Create creates a new project and assigns its surrogate ID
func (r *ProjectRepository) Create(ctx context.Context, proj *project.Project) error {
	query := `
		INSERT INTO projects (name, created_at)
		VALUES (?, ?)
	`

	result, err := r.db.ExecContext(ctx, query, proj.Name, formatTime(proj.CreatedAt))
	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrConflict
		}
		return fmt.Errorf("failed to create project: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read project id: %w", err)
	}
	proj.ID = id

	return nil
}

// GetByName retrieves a project by its unique name
func (r *ProjectRepository) GetByName(ctx context.Context, name string) (*project.Project, error) {
	query := `
		SELECT id, name, created_at
		FROM projects
		WHERE name = ?
	`

	var proj project.Project
	var createdAt string
	err := r.db.QueryRowContext(ctx, query, name).Scan(&proj.ID, &proj.Name, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	if proj.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}

	return &proj, nil
}

// List returns all projects with dashboard summary information. Running
// reflects whether the project currently has an open session.
func (r *ProjectRepository) List(ctx context.Context) ([]project.Summary, error) {
	query := `
		SELECT
			p.id,
			p.name,
			p.created_at,
			COUNT(s.id) AS session_count,
			COUNT(CASE WHEN s.end_at IS NULL THEN s.id END) AS open_count
		FROM projects p
		LEFT JOIN sessions s ON s.project_name = p.name
		GROUP BY p.id, p.name, p.created_at
		ORDER BY p.created_at DESC, p.id DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var summaries []project.Summary
	for rows.Next() {
		var summary project.Summary
		var createdAt string
		var openCount int
		err := rows.Scan(&summary.ID, &summary.Name, &createdAt, &summary.SessionCount, &openCount)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project summary: %w", err)
		}
		if summary.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, err
		}
		summary.Running = openCount > 0
		summaries = append(summaries, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating project rows: %w", err)
	}

	return summaries, nil
}

// Delete removes a project; the schema cascades the delete to its sessions
func (r *ProjectRepository) Delete(ctx context.Context, name string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}
