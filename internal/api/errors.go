package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/nwittstock/folio/internal/domain/project"
	"github.com/nwittstock/folio/internal/domain/task"
)

// writeDomainError maps engine errors onto HTTP statuses: validation and
// stale-view errors are 400s, missing entities 404s, uniqueness violations
// 409s. Anything else is a repository failure, logged and reported as 500.
func writeDomainError(c echo.Context, logger logrus.FieldLogger, err error) error {
	switch {
	case errors.Is(err, task.ErrTitleRequired),
		errors.Is(err, task.ErrUnknownColumn),
		errors.Is(err, task.ErrIndexOutOfRange),
		errors.Is(err, project.ErrTitleRequired),
		errors.Is(err, project.ErrInvalidStatus):
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, task.ErrTaskNotFound),
		errors.Is(err, project.ErrProjectNotFound):
		return c.JSON(http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, project.ErrDuplicateTitle):
		return c.JSON(http.StatusConflict, errorResponse{Error: err.Error()})
	default:
		logger.WithError(err).Error("request failed")
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}
