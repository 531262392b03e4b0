package intent

import "ai-todo-backend/pkg/log"

// Classifier maps a chat message and the caller's tasks to at most one action
// using keyword heuristics. It keeps no state and is safe for concurrent use.
type Classifier struct {
	l log.Logger
}

// New creates a new Classifier.
func New(l log.Logger) *Classifier {
	return &Classifier{l: l}
}
