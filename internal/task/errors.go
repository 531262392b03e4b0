package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrTaskNotFound    = errors.New("task not found")
	ErrInvalidStatus   = errors.New("invalid status filter")
	ErrEmptyTitle      = errors.New("task title is empty")
	ErrInvalidPriority = errors.New("invalid priority")
)
