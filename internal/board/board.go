// Package board composes the task and project services behind the single
// call surface used by route handlers and UI state stores.
package board

import (
	"context"

	"github.com/nwittstock/folio/internal/domain/project"
	"github.com/nwittstock/folio/internal/domain/task"
)

// Board delegates to the task and project services. It contains no logic of
// its own; it exists so callers depend on one thing instead of two.
type Board struct {
	tasks    *task.Service
	projects *project.Service
}

// New creates a board facade over the given services.
func New(tasks *task.Service, projects *project.Service) *Board {
	return &Board{tasks: tasks, projects: projects}
}

func (b *Board) CreateProject(ctx context.Context, req project.CreateRequest) (*project.Project, error) {
	return b.projects.Create(ctx, req)
}

func (b *Board) Projects(ctx context.Context) ([]project.Project, error) {
	return b.projects.List(ctx)
}

func (b *Board) UpdateProject(ctx context.Context, id string, patch project.Patch) (*project.Project, error) {
	return b.projects.Update(ctx, id, patch)
}

func (b *Board) MoveProject(ctx context.Context, id string, to project.Status) (*project.Project, error) {
	return b.projects.Move(ctx, id, to)
}

func (b *Board) DeleteProject(ctx context.Context, id string) error {
	return b.projects.Delete(ctx, id)
}

func (b *Board) AddTask(ctx context.Context, projectID string, req task.AddRequest) (*task.Task, error) {
	return b.tasks.Add(ctx, projectID, req)
}

func (b *Board) MoveTask(ctx context.Context, projectID string, req task.MoveRequest) error {
	return b.tasks.Move(ctx, projectID, req)
}

func (b *Board) UpdateTask(ctx context.Context, projectID, id string, req task.UpdateRequest) (*task.Task, error) {
	return b.tasks.Update(ctx, projectID, id, req)
}

func (b *Board) DeleteTask(ctx context.Context, projectID, id, columnID string) error {
	return b.tasks.Delete(ctx, projectID, id, columnID)
}

func (b *Board) ReorderColumn(ctx context.Context, projectID, columnID string, orderedIDs []string) error {
	return b.tasks.Reorder(ctx, projectID, columnID, orderedIDs)
}
