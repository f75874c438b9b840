package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/nwittstock/folio/internal/domain/project"
	"github.com/nwittstock/folio/internal/domain/task"
	"github.com/nwittstock/folio/internal/repository"
)

// ProjectRepository implements project.Repository for SQLite
type ProjectRepository struct {
	db *DB
}

var _ project.Repository = (*ProjectRepository)(nil)

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Add creates a new project
func (r *ProjectRepository) Add(ctx context.Context, proj *project.Project) error {
	technologies, err := json.Marshal(proj.Technologies)
	if err != nil {
		return fmt.Errorf("failed to encode technologies: %w", err)
	}
	tags, err := json.Marshal(proj.Tags)
	if err != nil {
		return fmt.Errorf("failed to encode tags: %w", err)
	}

	query := `
		INSERT INTO projects (id, title, description, status, technologies, tags, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = r.db.ExecContext(ctx, query,
		proj.ID,
		proj.Title,
		proj.Description,
		proj.Status,
		string(technologies),
		string(tags),
		proj.CreatedAt,
		proj.UpdatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrConflict
		}
		return fmt.Errorf("failed to create project: %w", err)
	}

	return nil
}

// Get retrieves a project by ID, with its tasks attached in board order
func (r *ProjectRepository) Get(ctx context.Context, id string) (*project.Project, error) {
	query := `
		SELECT id, title, description, status, technologies, tags, created_at, updated_at
		FROM projects
		WHERE id = ?
	`

	proj, err := scanProject(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	tasks, err := r.tasksForProjects(ctx, id)
	if err != nil {
		return nil, err
	}
	proj.Tasks = tasks[id]
	if proj.Tasks == nil {
		proj.Tasks = []task.Task{}
	}

	return proj, nil
}

// List returns all projects with their tasks, newest project first
func (r *ProjectRepository) List(ctx context.Context) ([]project.Project, error) {
	query := `
		SELECT id, title, description, status, technologies, tags, created_at, updated_at
		FROM projects
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var projects []project.Project
	for rows.Next() {
		proj, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, *proj)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating project rows: %w", err)
	}

	tasks, err := r.tasksForProjects(ctx)
	if err != nil {
		return nil, err
	}
	for i := range projects {
		projects[i].Tasks = tasks[projects[i].ID]
		if projects[i].Tasks == nil {
			projects[i].Tasks = []task.Task{}
		}
	}

	return projects, nil
}

// Update applies a partial update and returns the updated project
func (r *ProjectRepository) Update(ctx context.Context, id string, patch project.Patch) (*project.Project, error) {
	sets := []string{"updated_at = ?"}
	args := []any{time.Now().UTC()}

	if patch.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *patch.Title)
	}
	if patch.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, *patch.Description)
	}
	if patch.Status != nil {
		sets = append(sets, "status = ?")
		args = append(args, *patch.Status)
	}
	if patch.Technologies != nil {
		technologies, err := json.Marshal(*patch.Technologies)
		if err != nil {
			return nil, fmt.Errorf("failed to encode technologies: %w", err)
		}
		sets = append(sets, "technologies = ?")
		args = append(args, string(technologies))
	}
	if patch.Tags != nil {
		tags, err := json.Marshal(*patch.Tags)
		if err != nil {
			return nil, fmt.Errorf("failed to encode tags: %w", err)
		}
		sets = append(sets, "tags = ?")
		args = append(args, string(tags))
	}

	query := "UPDATE projects SET " + strings.Join(sets, ", ") + " WHERE id = ?"
	args = append(args, id)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, repository.ErrConflict
		}
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return nil, repository.ErrNotFound
	}

	return r.Get(ctx, id)
}

// Delete removes a project; owned tasks go with it via the FK cascade
func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
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

// ExistsByTitle reports whether any project uses the given title
func (r *ProjectRepository) ExistsByTitle(ctx context.Context, title string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM projects WHERE title = ?)`, title).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check title: %w", err)
	}
	return exists, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(row rowScanner) (*project.Project, error) {
	var proj project.Project
	var technologies, tags string
	err := row.Scan(
		&proj.ID,
		&proj.Title,
		&proj.Description,
		&proj.Status,
		&technologies,
		&tags,
		&proj.CreatedAt,
		&proj.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(technologies), &proj.Technologies); err != nil {
		return nil, fmt.Errorf("failed to decode technologies: %w", err)
	}
	if err := json.Unmarshal([]byte(tags), &proj.Tags); err != nil {
		return nil, fmt.Errorf("failed to decode tags: %w", err)
	}
	return &proj, nil
}

// tasksForProjects loads tasks grouped by project, sorted into board order.
// With no ids it loads tasks for every project.
func (r *ProjectRepository) tasksForProjects(ctx context.Context, ids ...string) (map[string][]task.Task, error) {
	query := `
		SELECT id, project_id, title, description, status, column_id, position, created_at, updated_at
		FROM tasks
	`
	var args []any
	if len(ids) > 0 {
		placeholders := make([]string, len(ids))
		for i, id := range ids {
			placeholders[i] = "?"
			args = append(args, id)
		}
		query += " WHERE project_id IN (" + strings.Join(placeholders, ", ") + ")"
	}
	query += " ORDER BY project_id, column_id, position"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tasks: %w", err)
	}
	defer rows.Close()

	tasks := make(map[string][]task.Task)
	for rows.Next() {
		var t task.Task
		err := rows.Scan(
			&t.ID,
			&t.ProjectID,
			&t.Title,
			&t.Description,
			&t.Status,
			&t.ColumnID,
			&t.Order,
			&t.CreatedAt,
			&t.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks[t.ProjectID] = append(tasks[t.ProjectID], t)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating task rows: %w", err)
	}

	return tasks, nil
}
