package intent

import "ai-todo-backend/internal/chat"

// Result is what the classifier inferred from a message.
// A zero Result means no action.
type Result struct {
	Action      chat.Action
	Task        *chat.TaskPayload
	TaskID      *int64
	UpdatedTask *chat.TaskPayload
}

// HasAction reports whether an action was inferred.
func (r Result) HasAction() bool {
	return r.Action != chat.ActionNone
}
