package gateway

import "ai-todo-backend/internal/model"

// Input is one gateway call.
type Input struct {
	Message string
	Tasks   []model.Task

	// ClientKey scopes the rate limit. Empty keys share one bucket.
	ClientKey string
}

// Reply is the outcome of a gateway call: either reply text or the reason
// the upstream could not produce one. Exactly one of Text and Err is set.
type Reply struct {
	Text string
	Err  error
}

// Ok wraps a successful reply.
func Ok(text string) Reply { return Reply{Text: text} }

// UpstreamError wraps a failed call.
func UpstreamError(err error) Reply { return Reply{Err: err} }

// OK reports whether the upstream produced text.
func (r Reply) OK() bool { return r.Err == nil }

// Config holds generation parameters.
type Config struct {
	Temperature     float64
	MaxTokens       int
	RateLimitPerMin int // 0 disables limiting
}
