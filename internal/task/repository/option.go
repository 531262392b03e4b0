package repository

import "ai-todo-backend/internal/model"

// CreateTaskOptions holds the parameters for appending a task to a user's list.
// The id is assigned by the store.
type CreateTaskOptions struct {
	UserID string
	Task   model.Task
}

// ListTasksOptions holds filter parameters for listing a user's tasks.
// A nil Completed returns every task.
type ListTasksOptions struct {
	UserID    string
	Completed *bool
}

// ToggleTaskOptions identifies the task whose completed flag is flipped.
type ToggleTaskOptions struct {
	UserID string
	ID     int64
}

// DeleteTaskOptions identifies the task to remove.
type DeleteTaskOptions struct {
	UserID string
	ID     int64
}
