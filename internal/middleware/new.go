package middleware

import (
	"ai-todo-backend/pkg/log"
	"ai-todo-backend/pkg/metrics"
)

type Middleware struct {
	l              log.Logger
	metrics        *metrics.Metrics
	allowedOrigins []string
}

// New creates the shared gin middleware set. An empty allowedOrigins means any origin.
func New(l log.Logger, m *metrics.Metrics, allowedOrigins []string) Middleware {
	return Middleware{
		l:              l,
		metrics:        m,
		allowedOrigins: allowedOrigins,
	}
}
