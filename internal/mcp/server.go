// Package mcp exposes the portfolio board to editor agents over the Model
// Context Protocol. Every tool is a thin wrapper over the board facade.
package mcp

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/nwittstock/folio/internal/domain/project"
	"github.com/nwittstock/folio/internal/domain/task"
)

const serverInstructions = `Manage a portfolio site's project board.

Projects are portfolio entries with a lifecycle status (idea, planning,
in-progress, completed, on-hold). Each project owns a task board with three
columns: ideas, in-progress, completed. A task's status (todo, in-progress,
done) follows the column it sits in; move tasks between columns instead of
setting status directly. Positions within a column are zero-based.`

// Board defines the facade operations exposed as MCP tools.
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

// NewServer creates and configures an MCP server with all board tools.
func NewServer(b Board) *sdkmcp.Server {
	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "folio-board",
		Version: "0.1.0",
	}, &sdkmcp.ServerOptions{
		Instructions: serverInstructions,
	})

	registerTools(server, b)

	return server
}
