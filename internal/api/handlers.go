package api

import (
	"io"
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/nwittstock/folio/internal/domain/project"
	"github.com/nwittstock/folio/internal/domain/task"
)

const requestBodyMaxSize = 1 << 20

// Register wires up all API routes on the provided Echo instance.
func Register(e *echo.Echo, b Board, logger logrus.FieldLogger) {
	e.GET("/healthz", healthz())

	g := e.Group("/api")
	g.GET("/projects", listProjects(b, logger))
	g.POST("/projects", createProject(b, logger))
	g.PATCH("/projects/:id", updateProject(b, logger))
	g.DELETE("/projects/:id", deleteProject(b, logger))
	g.POST("/projects/:id/move", moveProject(b, logger))
	g.POST("/projects/:id/tasks", addTask(b, logger))
	g.POST("/projects/:id/tasks/move", moveTask(b, logger))
	g.PATCH("/projects/:id/tasks/:taskID", updateTask(b, logger))
	g.DELETE("/projects/:id/tasks/:taskID", deleteTask(b, logger))
	g.PUT("/projects/:id/columns/:columnID/order", reorderColumn(b, logger))
}

func healthz() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}
}

func listProjects(b Board, logger logrus.FieldLogger) echo.HandlerFunc {
	return func(c echo.Context) error {
		projects, err := b.Projects(c.Request().Context())
		if err != nil {
			return writeDomainError(c, logger, err)
		}
		return c.JSON(http.StatusOK, projectsResponse{Projects: projects})
	}
}

func createProject(b Board, logger logrus.FieldLogger) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req createProjectRequest
		if err := decodeBody(c, &req); err != nil {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid body"})
		}
		proj, err := b.CreateProject(c.Request().Context(), project.CreateRequest{
			Title:        req.Title,
			Description:  req.Description,
			Status:       project.Status(req.Status),
			Technologies: req.Technologies,
			Tags:         req.Tags,
		})
		if err != nil {
			return writeDomainError(c, logger, err)
		}
		return c.JSON(http.StatusCreated, proj)
	}
}

func updateProject(b Board, logger logrus.FieldLogger) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req updateProjectRequest
		if err := decodeBody(c, &req); err != nil {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid body"})
		}
		proj, err := b.UpdateProject(c.Request().Context(), c.Param("id"), req.patch())
		if err != nil {
			return writeDomainError(c, logger, err)
		}
		return c.JSON(http.StatusOK, proj)
	}
}

func deleteProject(b Board, logger logrus.FieldLogger) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := b.DeleteProject(c.Request().Context(), c.Param("id")); err != nil {
			return writeDomainError(c, logger, err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}

func moveProject(b Board, logger logrus.FieldLogger) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req moveProjectRequest
		if err := decodeBody(c, &req); err != nil {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid body"})
		}
		proj, err := b.MoveProject(c.Request().Context(), c.Param("id"), project.Status(req.Status))
		if err != nil {
			return writeDomainError(c, logger, err)
		}
		return c.JSON(http.StatusOK, proj)
	}
}

func addTask(b Board, logger logrus.FieldLogger) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req addTaskRequest
		if err := decodeBody(c, &req); err != nil {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid body"})
		}
		created, err := b.AddTask(c.Request().Context(), c.Param("id"), task.AddRequest{
			ColumnID:    req.ColumnID,
			Title:       req.Title,
			Description: req.Description,
		})
		if err != nil {
			return writeDomainError(c, logger, err)
		}
		return c.JSON(http.StatusCreated, created)
	}
}

func moveTask(b Board, logger logrus.FieldLogger) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req moveTaskRequest
		if err := decodeBody(c, &req); err != nil {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid body"})
		}
		err := b.MoveTask(c.Request().Context(), c.Param("id"), task.MoveRequest{
			FromColumn: req.FromColumn,
			ToColumn:   req.ToColumn,
			FromIndex:  req.FromIndex,
			ToIndex:    req.ToIndex,
		})
		if err != nil {
			return writeDomainError(c, logger, err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}

func updateTask(b Board, logger logrus.FieldLogger) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req updateTaskRequest
		if err := decodeBody(c, &req); err != nil {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid body"})
		}
		updated, err := b.UpdateTask(c.Request().Context(), c.Param("id"), c.Param("taskID"), task.UpdateRequest{
			Title:       req.Title,
			Description: req.Description,
		})
		if err != nil {
			return writeDomainError(c, logger, err)
		}
		return c.JSON(http.StatusOK, updated)
	}
}

func deleteTask(b Board, logger logrus.FieldLogger) echo.HandlerFunc {
	return func(c echo.Context) error {
		err := b.DeleteTask(c.Request().Context(), c.Param("id"), c.Param("taskID"), c.QueryParam("column"))
		if err != nil {
			return writeDomainError(c, logger, err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}

func reorderColumn(b Board, logger logrus.FieldLogger) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req reorderColumnRequest
		if err := decodeBody(c, &req); err != nil {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid body"})
		}
		err := b.ReorderColumn(c.Request().Context(), c.Param("id"), c.Param("columnID"), req.IDs)
		if err != nil {
			return writeDomainError(c, logger, err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}

func decodeBody(c echo.Context, v any) error {
	lr := io.LimitReader(c.Request().Body, requestBodyMaxSize)
	dec := sonic.ConfigStd.NewDecoder(lr)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
