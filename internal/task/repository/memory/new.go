package memory

import (
	"fmt"
	"sync"

	"ai-todo-backend/internal/model"
	"ai-todo-backend/internal/task/repository"
	"ai-todo-backend/pkg/log"
)

// userTasks is one user's ordered task list plus the last id handed out.
// lastID only grows, so ids are never reused after a delete.
type userTasks struct {
	tasks  []model.Task
	lastID int64
}

type implRepository struct {
	mu    sync.RWMutex
	users map[string]*userTasks
	l     log.Logger
}

// New creates a new in-memory Repository. State lives for the process lifetime.
func New(l log.Logger) repository.Repository {
	return &implRepository{
		users: make(map[string]*userTasks),
		l:     l,
	}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("task/repository/memory.%s", method)
}
