package usecase

import (
	"context"

	"ai-todo-backend/internal/model"
	"ai-todo-backend/internal/task"
	repo "ai-todo-backend/internal/task/repository"
)

// List returns the user's tasks in insertion order, filtered by status.
func (uc *implUseCase) List(ctx context.Context, userID string, status task.Status) ([]model.Task, error) {
	opt := repo.ListTasksOptions{UserID: userID}

	switch status {
	case "", task.StatusAll:
	case task.StatusPending:
		opt.Completed = boolPtr(false)
	case task.StatusCompleted:
		opt.Completed = boolPtr(true)
	default:
		return nil, task.ErrInvalidStatus
	}

	tasks, err := uc.repo.ListTasks(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListTasks: %v", err)
		return nil, err
	}
	return tasks, nil
}

func boolPtr(b bool) *bool { return &b }
