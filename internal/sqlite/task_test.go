package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nwittstock/folio/internal/domain/task"
	"github.com/nwittstock/folio/internal/repository"
)

func insertTestProject(t *testing.T, db *DB, id, title string) {
	t.Helper()
	_, err := db.Exec(`INSERT INTO projects (id, title, status) VALUES (?, ?, ?)`, id, title, "idea")
	require.NoError(t, err)
}

func testTask(id, projectID, column string, position int) task.Task {
	now := time.Now().UTC().Truncate(time.Second)
	return task.Task{
		ID:        id,
		ProjectID: projectID,
		Title:     "Task " + id,
		Status:    task.StatusForColumn(column),
		ColumnID:  column,
		Order:     position,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestTaskRepository_SaveAndFetch(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	insertTestProject(t, db, "p1", "Project One")

	repo := NewTaskRepository(db)

	cols := task.Columns{
		task.ColumnIdeas: {
			testTask("t1", "p1", task.ColumnIdeas, 0),
			testTask("t2", "p1", task.ColumnIdeas, 1),
		},
		task.ColumnCompleted: {
			testTask("t3", "p1", task.ColumnCompleted, 0),
		},
	}
	require.NoError(t, repo.SaveColumns(ctx, "p1", cols))

	tasks, err := repo.FetchForProject(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, tasks, 3)

	bucketed := task.Bucket(tasks)
	require.Len(t, bucketed[task.ColumnIdeas], 2)
	require.Equal(t, "t1", bucketed[task.ColumnIdeas][0].ID)
	require.Equal(t, "t2", bucketed[task.ColumnIdeas][1].ID)
	require.Len(t, bucketed[task.ColumnCompleted], 1)
}

func TestTaskRepository_SaveColumnsReplaces(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	insertTestProject(t, db, "p1", "Project One")

	repo := NewTaskRepository(db)

	require.NoError(t, repo.SaveColumns(ctx, "p1", task.Columns{
		task.ColumnIdeas: {
			testTask("t1", "p1", task.ColumnIdeas, 0),
			testTask("t2", "p1", task.ColumnIdeas, 1),
		},
	}))

	// Write back the column with t1 removed and t2 first.
	require.NoError(t, repo.SaveColumns(ctx, "p1", task.Columns{
		task.ColumnIdeas: {
			testTask("t2", "p1", task.ColumnIdeas, 0),
		},
	}))

	tasks, err := repo.FetchForProject(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	require.Equal(t, "t2", tasks[0].ID)
	require.Equal(t, 0, tasks[0].Order)
}

func TestTaskRepository_SaveColumnsScopedToProject(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	insertTestProject(t, db, "p1", "Project One")
	insertTestProject(t, db, "p2", "Project Two")

	repo := NewTaskRepository(db)

	require.NoError(t, repo.SaveColumns(ctx, "p1", task.Columns{
		task.ColumnIdeas: {testTask("t1", "p1", task.ColumnIdeas, 0)},
	}))
	require.NoError(t, repo.SaveColumns(ctx, "p2", task.Columns{
		task.ColumnIdeas: {testTask("t2", "p2", task.ColumnIdeas, 0)},
	}))

	// Clearing p2's ideas column leaves p1 untouched.
	require.NoError(t, repo.SaveColumns(ctx, "p2", task.Columns{
		task.ColumnIdeas: {},
	}))

	tasks, err := repo.FetchForProject(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, tasks, 1)

	tasks, err = repo.FetchForProject(ctx, "p2")
	require.NoError(t, err)
	require.Empty(t, tasks)
}

func TestTaskRepository_SaveColumnsRelocatesAcrossColumns(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	insertTestProject(t, db, "p1", "Project One")

	repo := NewTaskRepository(db)

	moved := testTask("t1", "p1", task.ColumnIdeas, 0)
	require.NoError(t, repo.SaveColumns(ctx, "p1", task.Columns{
		task.ColumnIdeas: {moved},
	}))

	// Shuttle the task between the two columns; each call carries both column
	// keys, so the write must clear the old row before inserting the new one
	// no matter which column is processed first.
	for i := 0; i < 20; i++ {
		from, to := task.ColumnIdeas, task.ColumnCompleted
		if i%2 == 1 {
			from, to = to, from
		}
		moved.ColumnID = to
		moved.Status = task.StatusForColumn(to)
		require.NoError(t, repo.SaveColumns(ctx, "p1", task.Columns{
			from: {},
			to:   {moved},
		}))

		tasks, err := repo.FetchForProject(ctx, "p1")
		require.NoError(t, err)
		require.Len(t, tasks, 1)
		require.Equal(t, "t1", tasks[0].ID)
		require.Equal(t, to, tasks[0].ColumnID)
	}
}

func TestTaskRepository_SaveColumnsUnknownProject(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()

	repo := NewTaskRepository(db)

	err := repo.SaveColumns(ctx, "ghost", task.Columns{
		task.ColumnIdeas: {testTask("t1", "ghost", task.ColumnIdeas, 0)},
	})
	require.ErrorIs(t, err, repository.ErrForeignKeyViolation)
}

func TestTaskRepository_FetchEmptyProject(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	insertTestProject(t, db, "p1", "Project One")

	repo := NewTaskRepository(db)

	tasks, err := repo.FetchForProject(ctx, "p1")
	require.NoError(t, err)
	require.Empty(t, tasks)
}
