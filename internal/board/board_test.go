package board_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/nwittstock/folio/internal/board"
	"github.com/nwittstock/folio/internal/domain/project"
	"github.com/nwittstock/folio/internal/domain/task"
	"github.com/nwittstock/folio/internal/repository/mocks"
)

func newTestBoard(taskRepo *mocks.TaskRepository, projectRepo *mocks.ProjectRepository) *board.Board {
	return board.New(
		task.NewService(taskRepo, nil),
		project.NewService(projectRepo, nil),
	)
}

func TestBoard_ProjectFlow(t *testing.T) {
	ctx := context.Background()

	projectRepo := &mocks.ProjectRepository{}
	projectRepo.On("ExistsByTitle", ctx, "Folio").Return(false, nil)
	projectRepo.On("Add", ctx, mock.Anything).Return(nil)
	projectRepo.On("List", ctx).Return([]project.Project{{ID: "p1", Title: "Folio"}}, nil)

	b := newTestBoard(&mocks.TaskRepository{}, projectRepo)

	proj, err := b.CreateProject(ctx, project.CreateRequest{Title: "Folio"})
	require.NoError(t, err)
	require.Equal(t, "Folio", proj.Title)

	projects, err := b.Projects(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 1)
}

func TestBoard_TaskFlow(t *testing.T) {
	ctx := context.Background()

	taskRepo := &mocks.TaskRepository{}
	taskRepo.On("FetchForProject", ctx, "p1").Return([]task.Task{}, nil)
	taskRepo.On("SaveColumns", ctx, "p1", mock.Anything).Return(nil)

	b := newTestBoard(taskRepo, &mocks.ProjectRepository{})

	created, err := b.AddTask(ctx, "p1", task.AddRequest{ColumnID: task.ColumnIdeas, Title: "first"})
	require.NoError(t, err)
	require.Equal(t, task.StatusTodo, created.Status)
	require.Equal(t, 0, created.Order)

	err = b.MoveTask(ctx, "p1", task.MoveRequest{FromColumn: task.ColumnIdeas, ToColumn: "backlog"})
	require.ErrorIs(t, err, task.ErrUnknownColumn)
}
