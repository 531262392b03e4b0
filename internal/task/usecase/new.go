package usecase

import (
	"ai-todo-backend/internal/task/repository"
	"ai-todo-backend/pkg/log"
	"ai-todo-backend/pkg/metrics"
)

// implUseCase is the private implementation of task.UseCase.
type implUseCase struct {
	repo    repository.Repository
	l       log.Logger
	metrics *metrics.Metrics
}

// New creates a new task UseCase implementation.
func New(repo repository.Repository, l log.Logger, m *metrics.Metrics) *implUseCase {
	return &implUseCase{
		repo:    repo,
		l:       l,
		metrics: m,
	}
}

func (uc *implUseCase) record(op string) {
	if uc.metrics != nil {
		uc.metrics.RecordTaskMutation(op)
	}
}
