package memory

import (
	"context"

	"ai-todo-backend/internal/model"
	repo "ai-todo-backend/internal/task/repository"
)

// CreateTask appends a task to the user's list and assigns the next id.
func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	if err := ctx.Err(); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTask"), err)
		return model.Task{}, repo.ErrFailedToInsert
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[opt.UserID]
	if !ok {
		u = &userTasks{}
		r.users[opt.UserID] = u
	}

	u.lastID++
	t := opt.Task
	t.ID = u.lastID
	u.tasks = append(u.tasks, t)

	return t, nil
}

// ListTasks returns a copy of the user's tasks in insertion order.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, error) {
	if err := ctx.Err(); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []model.Task{}
	u, ok := r.users[opt.UserID]
	if !ok {
		return out, nil
	}

	for _, t := range u.tasks {
		if opt.Completed != nil && t.Completed != *opt.Completed {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

// ToggleTask flips the completed flag and returns the updated task.
// Returns zero-value Task when not found.
func (r *implRepository) ToggleTask(ctx context.Context, opt repo.ToggleTaskOptions) (model.Task, error) {
	if err := ctx.Err(); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ToggleTask"), err)
		return model.Task{}, repo.ErrFailedToUpdate
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[opt.UserID]
	if !ok {
		return model.Task{}, nil
	}

	for i := range u.tasks {
		if u.tasks[i].ID == opt.ID {
			u.tasks[i].Completed = !u.tasks[i].Completed
			return u.tasks[i], nil
		}
	}
	return model.Task{}, nil
}

// DeleteTask removes the task with the given id. Missing ids are a no-op.
func (r *implRepository) DeleteTask(ctx context.Context, opt repo.DeleteTaskOptions) error {
	if err := ctx.Err(); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteTask"), err)
		return repo.ErrFailedToDelete
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[opt.UserID]
	if !ok {
		return nil
	}

	kept := u.tasks[:0]
	for _, t := range u.tasks {
		if t.ID != opt.ID {
			kept = append(kept, t)
		}
	}
	u.tasks = kept
	return nil
}
