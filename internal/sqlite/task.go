package sqlite

import (
	"context"
	"fmt"

	"github.com/nwittstock/folio/internal/domain/task"
	"github.com/nwittstock/folio/internal/repository"
)

// TaskRepository implements task.Repository for SQLite
type TaskRepository struct {
	db *DB
}

var _ task.Repository = (*TaskRepository)(nil)

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// FetchForProject returns every task in the project, in no guaranteed order
func (r *TaskRepository) FetchForProject(ctx context.Context, projectID string) ([]task.Task, error) {
	query := `
		SELECT id, project_id, title, description, status, column_id, position, created_at, updated_at
		FROM tasks
		WHERE project_id = ?
	`

	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tasks: %w", err)
	}
	defer rows.Close()

	var tasks []task.Task
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
		tasks = append(tasks, t)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating task rows: %w", err)
	}

	return tasks, nil
}

// SaveColumns replaces the stored state of every column present in cols,
// inside a single transaction so the write is atomic per call.
func (r *TaskRepository) SaveColumns(ctx context.Context, projectID string, cols task.Columns) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// Clear every column before inserting anything: a task moving between two
	// columns in the same call must not collide with its old row.
	for columnID := range cols {
		_, err := tx.ExecContext(ctx,
			`DELETE FROM tasks WHERE project_id = ? AND column_id = ?`,
			projectID, columnID)
		if err != nil {
			return fmt.Errorf("failed to clear column %s: %w", columnID, err)
		}
	}

	for columnID, items := range cols {
		for _, t := range items {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO tasks (id, project_id, title, description, status, column_id, position, created_at, updated_at)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
			`,
				t.ID,
				projectID,
				t.Title,
				t.Description,
				t.Status,
				columnID,
				t.Order,
				t.CreatedAt,
				t.UpdatedAt,
			)
			if err != nil {
				if isForeignKeyViolation(err) {
					return repository.ErrForeignKeyViolation
				}
				return fmt.Errorf("failed to save task %s: %w", t.ID, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
