package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	globalMetrics *Metrics
	metricsOnce   sync.Once
)

// Metrics holds the Prometheus collectors for the service.
type Metrics struct {
	// HTTP surface
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Chat
	ChatActionsTotal *prometheus.CounterVec
	LLMRequestsTotal *prometheus.CounterVec

	// Task store
	TaskMutationsTotal *prometheus.CounterVec
}

// New creates and registers the collectors once per process.
// Later calls return the same instance so tests and main can share it
// without a "duplicate metrics collector registration" panic.
//
// Metrics:
//   - todo_http_requests_total{method,route,status}
//   - todo_http_request_duration_seconds{method,route}
//   - todo_chat_actions_total{action}
//   - todo_llm_requests_total{outcome}
//   - todo_tasks_mutations_total{op}
func New() *Metrics {
	metricsOnce.Do(func() {
		globalMetrics = &Metrics{
			HTTPRequestsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "todo_http_requests_total",
					Help: "Total number of HTTP requests handled",
				},
				[]string{"method", "route", "status"},
			),

			HTTPRequestDuration: promauto.NewHistogramVec(
				prometheus.HistogramOpts{
					Name:    "todo_http_request_duration_seconds",
					Help:    "Duration of HTTP requests in seconds",
					Buckets: prometheus.ExponentialBuckets(0.001, 2, 16), // 1ms to ~32s
				},
				[]string{"method", "route"},
			),

			ChatActionsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "todo_chat_actions_total",
					Help: "Total number of chat actions inferred from messages",
				},
				[]string{"action"}, // "none" when nothing was inferred
			),

			LLMRequestsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "todo_llm_requests_total",
					Help: "Total number of LLM gateway calls by outcome",
				},
				[]string{"outcome"}, // "ok", "error", "rate_limited"
			),

			TaskMutationsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "todo_tasks_mutations_total",
					Help: "Total number of task store mutations",
				},
				[]string{"op"}, // "create", "toggle", "delete"
			),
		}
	})

	return globalMetrics
}

// ObserveHTTP records one finished HTTP request.
func (m *Metrics) ObserveHTTP(method, route, status string, durationSeconds float64) {
	m.HTTPRequestsTotal.WithLabelValues(method, route, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(durationSeconds)
}

// RecordChatAction records the action returned by a chat turn.
func (m *Metrics) RecordChatAction(action string) {
	if action == "" {
		action = "none"
	}
	m.ChatActionsTotal.WithLabelValues(action).Inc()
}

// RecordLLMRequest records a gateway call outcome.
func (m *Metrics) RecordLLMRequest(outcome string) {
	m.LLMRequestsTotal.WithLabelValues(outcome).Inc()
}

// RecordTaskMutation records a create, toggle or delete on the task store.
func (m *Metrics) RecordTaskMutation(op string) {
	m.TaskMutationsTotal.WithLabelValues(op).Inc()
}
