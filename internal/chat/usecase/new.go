package usecase

import (
	"ai-todo-backend/internal/chat/gateway"
	"ai-todo-backend/internal/chat/intent"
	"ai-todo-backend/pkg/log"
	"ai-todo-backend/pkg/metrics"
)

// Config controls how upstream failures are shown to the user.
type Config struct {
	// ExposeUpstreamErrors echoes the failure reason instead of a generic apology.
	ExposeUpstreamErrors bool
}

// implUseCase is the private implementation of chat.UseCase.
type implUseCase struct {
	l          log.Logger
	classifier *intent.Classifier
	gateway    gateway.Gateway
	cfg        Config
	metrics    *metrics.Metrics
}

// New creates a new chat UseCase implementation.
func New(l log.Logger, classifier *intent.Classifier, gw gateway.Gateway, cfg Config, m *metrics.Metrics) *implUseCase {
	return &implUseCase{
		l:          l,
		classifier: classifier,
		gateway:    gw,
		cfg:        cfg,
		metrics:    m,
	}
}
