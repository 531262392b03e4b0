package gateway

import (
	"context"

	"ai-todo-backend/pkg/llmprovider"
	"ai-todo-backend/pkg/log"
	"ai-todo-backend/pkg/metrics"
)

// Generator is the LLM backend. *llmprovider.Manager satisfies it.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// Gateway turns a chat message into a reply from the hosted LLM.
// It never returns a Go error; failures come back as Reply.Err.
type Gateway interface {
	Reply(ctx context.Context, input Input) Reply
}

type implGateway struct {
	l       log.Logger
	llm     Generator
	cfg     Config
	limiter *rateLimiter
	metrics *metrics.Metrics
}

// New creates a new Gateway. Zero generation parameters take the defaults.
func New(l log.Logger, llm Generator, cfg Config, m *metrics.Metrics) Gateway {
	if cfg.Temperature == 0 {
		cfg.Temperature = DefaultTemperature
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = DefaultMaxTokens
	}
	return &implGateway{
		l:       l,
		llm:     llm,
		cfg:     cfg,
		limiter: newRateLimiter(cfg.RateLimitPerMin),
		metrics: m,
	}
}
