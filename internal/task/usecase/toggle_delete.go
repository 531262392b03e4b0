package usecase

import (
	"context"

	"ai-todo-backend/internal/model"
	"ai-todo-backend/internal/task"
	repo "ai-todo-backend/internal/task/repository"
)

// ToggleComplete flips the completed flag. Returns ErrTaskNotFound when not found.
func (uc *implUseCase) ToggleComplete(ctx context.Context, userID string, id int64) (model.Task, error) {
	t, err := uc.repo.ToggleTask(ctx, repo.ToggleTaskOptions{UserID: userID, ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ToggleComplete ToggleTask: %v", err)
		return model.Task{}, err
	}
	if t.ID == 0 {
		return model.Task{}, task.ErrTaskNotFound
	}

	uc.record("toggle")
	return t, nil
}

// Delete removes a task by id. A missing id is a no-op.
func (uc *implUseCase) Delete(ctx context.Context, userID string, id int64) error {
	if err := uc.repo.DeleteTask(ctx, repo.DeleteTaskOptions{UserID: userID, ID: id}); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteTask: %v", err)
		return err
	}

	uc.record("delete")
	return nil
}
