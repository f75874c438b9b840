package project_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/nwittstock/folio/internal/domain/project"
	"github.com/nwittstock/folio/internal/repository"
	"github.com/nwittstock/folio/internal/repository/mocks"
)

func TestProjectService_CreateDefaultsStatus(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ProjectRepository{}
	repo.On("ExistsByTitle", ctx, "Portfolio Site").Return(false, nil)
	repo.On("Add", ctx, mock.Anything).Return(nil)

	svc := project.NewService(repo, nil)
	proj, err := svc.Create(ctx, project.CreateRequest{Title: "  Portfolio Site  "})
	require.NoError(t, err)

	require.NotEmpty(t, proj.ID)
	require.Equal(t, "Portfolio Site", proj.Title)
	require.Equal(t, project.StatusIdea, proj.Status)
	require.NotNil(t, proj.Technologies)
	require.NotNil(t, proj.Tags)
	require.NotNil(t, proj.Tasks)
	require.False(t, proj.CreatedAt.IsZero())
}

func TestProjectService_CreateValidation(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.ProjectRepository{}
	svc := project.NewService(repo, nil)

	_, err := svc.Create(ctx, project.CreateRequest{Title: "   "})
	require.ErrorIs(t, err, project.ErrTitleRequired)

	_, err = svc.Create(ctx, project.CreateRequest{Title: "x", Status: "shipped"})
	require.ErrorIs(t, err, project.ErrInvalidStatus)

	repo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestProjectService_CreateDuplicateTitle(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ProjectRepository{}
	repo.On("ExistsByTitle", ctx, "Taken").Return(true, nil)

	svc := project.NewService(repo, nil)
	_, err := svc.Create(ctx, project.CreateRequest{Title: "Taken"})
	require.ErrorIs(t, err, project.ErrDuplicateTitle)
}

func TestProjectService_CreateConflictOnInsert(t *testing.T) {
	ctx := context.Background()

	// The existence check raced a concurrent insert.
	repo := &mocks.ProjectRepository{}
	repo.On("ExistsByTitle", ctx, "Racy").Return(false, nil)
	repo.On("Add", ctx, mock.Anything).Return(repository.ErrConflict)

	svc := project.NewService(repo, nil)
	_, err := svc.Create(ctx, project.CreateRequest{Title: "Racy"})
	require.ErrorIs(t, err, project.ErrDuplicateTitle)
}

func TestProjectService_UpdateRenameChecksUniqueness(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ProjectRepository{}
	repo.On("Get", ctx, "p1").Return(&project.Project{ID: "p1", Title: "Old"}, nil)
	repo.On("ExistsByTitle", ctx, "New").Return(true, nil)

	title := "New"
	svc := project.NewService(repo, nil)
	_, err := svc.Update(ctx, "p1", project.Patch{Title: &title})
	require.ErrorIs(t, err, project.ErrDuplicateTitle)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestProjectService_UpdateSameTitleSkipsCheck(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ProjectRepository{}
	repo.On("Get", ctx, "p1").Return(&project.Project{ID: "p1", Title: "Same"}, nil)
	repo.On("Update", ctx, "p1", mock.Anything).Return(&project.Project{ID: "p1", Title: "Same"}, nil)

	title := "Same"
	svc := project.NewService(repo, nil)
	_, err := svc.Update(ctx, "p1", project.Patch{Title: &title})
	require.NoError(t, err)
	repo.AssertNotCalled(t, "ExistsByTitle", mock.Anything, mock.Anything)
}

func TestProjectService_UpdateNotFound(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ProjectRepository{}
	repo.On("Get", ctx, "missing").Return(nil, repository.ErrNotFound)

	desc := "x"
	svc := project.NewService(repo, nil)
	_, err := svc.Update(ctx, "missing", project.Patch{Description: &desc})
	require.ErrorIs(t, err, project.ErrProjectNotFound)
}

func TestProjectService_MoveValidatesStatus(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.ProjectRepository{}

	svc := project.NewService(repo, nil)
	_, err := svc.Move(ctx, "p1", "shipped")
	require.ErrorIs(t, err, project.ErrInvalidStatus)
	repo.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestProjectService_Move(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ProjectRepository{}
	repo.On("Get", ctx, "p1").Return(&project.Project{ID: "p1", Title: "X", Status: project.StatusIdea}, nil)
	repo.On("Update", ctx, "p1", mock.MatchedBy(func(p project.Patch) bool {
		return p.Status != nil && *p.Status == project.StatusCompleted
	})).Return(&project.Project{ID: "p1", Title: "X", Status: project.StatusCompleted}, nil)

	svc := project.NewService(repo, nil)
	proj, err := svc.Move(ctx, "p1", project.StatusCompleted)
	require.NoError(t, err)
	require.Equal(t, project.StatusCompleted, proj.Status)
}

func TestProjectService_DeleteNotFound(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ProjectRepository{}
	repo.On("Delete", ctx, "missing").Return(repository.ErrNotFound)

	svc := project.NewService(repo, nil)
	err := svc.Delete(ctx, "missing")
	require.ErrorIs(t, err, project.ErrProjectNotFound)
}
