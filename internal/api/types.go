package api

import (
	"context"

	"github.com/nwittstock/folio/internal/domain/project"
	"github.com/nwittstock/folio/internal/domain/task"
)

// Board is the call surface handlers delegate to.
type Board interface {
	CreateProject(ctx context.Context, req project.CreateRequest) (*project.Project, error)
	Projects(ctx context.Context) ([]project.Project, error)
	UpdateProject(ctx context.Context, id string, patch project.Patch) (*project.Project, error)
	MoveProject(ctx context.Context, id string, to project.Status) (*project.Project, error)
	DeleteProject(ctx context.Context, id string) error
	AddTask(ctx context.Context, projectID string, req task.AddRequest) (*task.Task, error)
	MoveTask(ctx context.Context, projectID string, req task.MoveRequest) error
	UpdateTask(ctx context.Context, projectID, id string, req task.UpdateRequest) (*task.Task, error)
	DeleteTask(ctx context.Context, projectID, id, columnID string) error
	ReorderColumn(ctx context.Context, projectID, columnID string, orderedIDs []string) error
}

type projectsResponse struct {
	Projects []project.Project `json:"projects"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type createProjectRequest struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Status       string   `json:"status"`
	Technologies []string `json:"technologies"`
	Tags         []string `json:"tags"`
}

type updateProjectRequest struct {
	Title        *string   `json:"title"`
	Description  *string   `json:"description"`
	Status       *string   `json:"status"`
	Technologies *[]string `json:"technologies"`
	Tags         *[]string `json:"tags"`
}

type moveProjectRequest struct {
	Status string `json:"status"`
}

type addTaskRequest struct {
	ColumnID    string `json:"column_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type moveTaskRequest struct {
	FromColumn string `json:"from_column"`
	ToColumn   string `json:"to_column"`
	FromIndex  int    `json:"from_index"`
	ToIndex    int    `json:"to_index"`
}

type updateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

type reorderColumnRequest struct {
	IDs []string `json:"ids"`
}

func (r updateProjectRequest) patch() project.Patch {
	p := project.Patch{
		Title:        r.Title,
		Description:  r.Description,
		Technologies: r.Technologies,
		Tags:         r.Tags,
	}
	if r.Status != nil {
		status := project.Status(*r.Status)
		p.Status = &status
	}
	return p
}
