package chat

import "ai-todo-backend/internal/model"

// Action is the task mutation the frontend should apply after a chat turn.
type Action string

const (
	ActionNone     Action = ""
	ActionAdd      Action = "add_task"
	ActionDelete   Action = "delete_task"
	ActionUpdate   Action = "update_task"
	ActionComplete Action = "complete_task"
)

// TaskPayload is a task without its id, used for new and replacement tasks.
type TaskPayload struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Completed   bool           `json:"completed"`
	Priority    model.Priority `json:"priority"`
	Category    string         `json:"category"`
	DueDate     string         `json:"dueDate"`
	Repeat      string         `json:"repeat"`
}

// NewTaskPayload copies t without its id, filling defaults.
func NewTaskPayload(t model.Task) TaskPayload {
	t = t.WithDefaults()
	return TaskPayload{
		Title:       t.Title,
		Description: t.Description,
		Completed:   t.Completed,
		Priority:    t.Priority,
		Category:    t.Category,
		DueDate:     t.DueDate,
		Repeat:      t.Repeat,
	}
}

// ChatInput is one chat turn. Tasks is the caller's current list;
// the server keeps no chat session.
type ChatInput struct {
	Message string
	Tasks   []model.Task

	// ClientKey identifies the caller for rate limiting (usually the client IP).
	ClientKey string
}

// ChatOutput is the merged result of the reply and the classifier.
type ChatOutput struct {
	Response    string
	Action      Action
	Task        *TaskPayload
	TaskID      *int64
	UpdatedTask *TaskPayload
}
