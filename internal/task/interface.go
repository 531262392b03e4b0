package task

import (
	"context"

	"ai-todo-backend/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Create appends a new task to the user's list with defaults applied.
	Create(ctx context.Context, userID string, input CreateInput) (model.Task, error)

	// List returns the user's tasks filtered by status (all, pending, completed).
	List(ctx context.Context, userID string, status Status) ([]model.Task, error)

	// ToggleComplete flips the completed flag. Returns ErrTaskNotFound when absent.
	ToggleComplete(ctx context.Context, userID string, id int64) (model.Task, error)

	// Delete removes a task. Deleting a missing id is not an error.
	Delete(ctx context.Context, userID string, id int64) error
}
