package usecase

import (
	"context"
	"strings"

	"ai-todo-backend/internal/model"
	"ai-todo-backend/internal/task"
	repo "ai-todo-backend/internal/task/repository"
)

// Create stores a new task for the user with defaults applied.
func (uc *implUseCase) Create(ctx context.Context, userID string, input task.CreateInput) (model.Task, error) {
	if strings.TrimSpace(input.Title) == "" {
		return model.Task{}, task.ErrEmptyTitle
	}
	if input.Priority != "" && !model.IsValidPriority(input.Priority) {
		return model.Task{}, task.ErrInvalidPriority
	}

	t, err := uc.repo.CreateTask(ctx, repo.CreateTaskOptions{
		UserID: userID,
		Task:   input.ToTask(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateTask: %v", err)
		return model.Task{}, err
	}

	uc.record("create")
	return t, nil
}
