package http

import (
	"errors"
	"net/http"

	"ai-todo-backend/internal/task"
	pkgErrors "ai-todo-backend/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
// Unknown errors become a 500.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, task.ErrTaskNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "Task not found")
	case errors.Is(err, task.ErrInvalidStatus):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "status must be one of all, pending, completed")
	case errors.Is(err, task.ErrInvalidPriority):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "priority must be one of Low, Medium, High")
	case errors.Is(err, task.ErrEmptyTitle):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "title must not be empty")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
