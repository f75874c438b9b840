package mcp

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/nwittstock/folio/internal/domain/project"
	"github.com/nwittstock/folio/internal/domain/task"
)

type listProjectsArgs struct{}

type createProjectArgs struct {
	Title        string   `json:"title"`
	Description  string   `json:"description,omitempty"`
	Status       string   `json:"status,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
	Tags         []string `json:"tags,omitempty"`
}

type updateProjectArgs struct {
	ID           string    `json:"id"`
	Title        *string   `json:"title,omitempty"`
	Description  *string   `json:"description,omitempty"`
	Status       *string   `json:"status,omitempty"`
	Technologies *[]string `json:"technologies,omitempty"`
	Tags         *[]string `json:"tags,omitempty"`
}

type moveProjectArgs struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type deleteProjectArgs struct {
	ID string `json:"id"`
}

type addTaskArgs struct {
	ProjectID   string `json:"project_id"`
	Column      string `json:"column"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

type moveTaskArgs struct {
	ProjectID  string `json:"project_id"`
	FromColumn string `json:"from_column"`
	ToColumn   string `json:"to_column"`
	FromIndex  int    `json:"from_index"`
	ToIndex    int    `json:"to_index"`
}

type updateTaskArgs struct {
	ProjectID   string  `json:"project_id"`
	TaskID      string  `json:"task_id"`
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
}

type deleteTaskArgs struct {
	ProjectID string `json:"project_id"`
	TaskID    string `json:"task_id"`
	Column    string `json:"column,omitempty"`
}

type reorderColumnArgs struct {
	ProjectID string   `json:"project_id"`
	Column    string   `json:"column"`
	TaskIDs   []string `json:"task_ids"`
}

type projectListResult struct {
	Projects []project.Project `json:"projects"`
}

type projectResult struct {
	Project project.Project `json:"project"`
}

type taskResult struct {
	Task task.Task `json:"task"`
}

type okResult struct {
	OK bool `json:"ok"`
}

func registerTools(server *sdkmcp.Server, b Board) {
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_projects",
		Description: "List all portfolio projects with their board tasks",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, _ listProjectsArgs) (*sdkmcp.CallToolResult, projectListResult, error) {
		projects, err := b.Projects(ctx)
		if err != nil {
			return nil, projectListResult{}, err
		}
		return nil, projectListResult{Projects: projects}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "create_project",
		Description: "Create a portfolio project (status defaults to idea)",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, args createProjectArgs) (*sdkmcp.CallToolResult, projectResult, error) {
		proj, err := b.CreateProject(ctx, project.CreateRequest{
			Title:        args.Title,
			Description:  args.Description,
			Status:       project.Status(args.Status),
			Technologies: args.Technologies,
			Tags:         args.Tags,
		})
		if err != nil {
			return nil, projectResult{}, err
		}
		return nil, projectResult{Project: *proj}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "update_project",
		Description: "Update fields of a project; omitted fields are left unchanged",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, args updateProjectArgs) (*sdkmcp.CallToolResult, projectResult, error) {
		patch := project.Patch{
			Title:        args.Title,
			Description:  args.Description,
			Technologies: args.Technologies,
			Tags:         args.Tags,
		}
		if args.Status != nil {
			status := project.Status(*args.Status)
			patch.Status = &status
		}
		proj, err := b.UpdateProject(ctx, args.ID, patch)
		if err != nil {
			return nil, projectResult{}, err
		}
		return nil, projectResult{Project: *proj}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "move_project",
		Description: "Move a project to another lifecycle status bucket",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, args moveProjectArgs) (*sdkmcp.CallToolResult, projectResult, error) {
		proj, err := b.MoveProject(ctx, args.ID, project.Status(args.Status))
		if err != nil {
			return nil, projectResult{}, err
		}
		return nil, projectResult{Project: *proj}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "delete_project",
		Description: "Delete a project and every task it owns",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, args deleteProjectArgs) (*sdkmcp.CallToolResult, okResult, error) {
		if err := b.DeleteProject(ctx, args.ID); err != nil {
			return nil, okResult{}, err
		}
		return nil, okResult{OK: true}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "add_task",
		Description: "Add a task to the end of a board column (ideas, in-progress, completed)",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, args addTaskArgs) (*sdkmcp.CallToolResult, taskResult, error) {
		created, err := b.AddTask(ctx, args.ProjectID, task.AddRequest{
			ColumnID:    args.Column,
			Title:       args.Title,
			Description: args.Description,
		})
		if err != nil {
			return nil, taskResult{}, err
		}
		return nil, taskResult{Task: *created}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "move_task",
		Description: "Move a task between columns or within a column by zero-based position",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, args moveTaskArgs) (*sdkmcp.CallToolResult, okResult, error) {
		err := b.MoveTask(ctx, args.ProjectID, task.MoveRequest{
			FromColumn: args.FromColumn,
			ToColumn:   args.ToColumn,
			FromIndex:  args.FromIndex,
			ToIndex:    args.ToIndex,
		})
		if err != nil {
			return nil, okResult{}, err
		}
		return nil, okResult{OK: true}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "update_task",
		Description: "Update a task's title or description; omitted fields are left unchanged",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, args updateTaskArgs) (*sdkmcp.CallToolResult, taskResult, error) {
		updated, err := b.UpdateTask(ctx, args.ProjectID, args.TaskID, task.UpdateRequest{
			Title:       args.Title,
			Description: args.Description,
		})
		if err != nil {
			return nil, taskResult{}, err
		}
		return nil, taskResult{Task: *updated}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "delete_task",
		Description: "Delete a task; the remaining tasks in its column are renumbered",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, args deleteTaskArgs) (*sdkmcp.CallToolResult, okResult, error) {
		if err := b.DeleteTask(ctx, args.ProjectID, args.TaskID, args.Column); err != nil {
			return nil, okResult{}, err
		}
		return nil, okResult{OK: true}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "reorder_column",
		Description: "Rewrite a column's task order to match the given id sequence",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, args reorderColumnArgs) (*sdkmcp.CallToolResult, okResult, error) {
		if err := b.ReorderColumn(ctx, args.ProjectID, args.Column, args.TaskIDs); err != nil {
			return nil, okResult{}, err
		}
		return nil, okResult{OK: true}, nil
	})
}
