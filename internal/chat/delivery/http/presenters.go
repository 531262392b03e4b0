package http

import (
	"ai-todo-backend/internal/chat"
	"ai-todo-backend/internal/model"
)

// --- Request DTOs ---

// chatReq.Message is a pointer so an empty string is accepted but a missing
// field is not.
type chatReq struct {
	Message *string   `json:"message" binding:"required"`
	Tasks   []taskReq `json:"tasks"`
}

// taskReq mirrors the frontend's task objects. Every field is optional.
type taskReq struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
	Priority    string `json:"priority"`
	Category    string `json:"category"`
	DueDate     string `json:"dueDate"`
	Repeat      string `json:"repeat"`
}

func (r chatReq) toInput(clientKey string) chat.ChatInput {
	tasks := make([]model.Task, len(r.Tasks))
	for i, t := range r.Tasks {
		tasks[i] = model.Task{
			ID:          t.ID,
			Title:       t.Title,
			Description: t.Description,
			Completed:   t.Completed,
			Priority:    model.Priority(t.Priority),
			Category:    t.Category,
			DueDate:     t.DueDate,
			Repeat:      t.Repeat,
		}.WithDefaults()
	}
	return chat.ChatInput{
		Message:   *r.Message,
		Tasks:     tasks,
		ClientKey: clientKey,
	}
}

// --- Response DTOs ---

// chatResp serializes unset optional fields as null.
type chatResp struct {
	Response    string            `json:"response"`
	Action      *string           `json:"action"`
	Task        *chat.TaskPayload `json:"task"`
	TaskID      *int64            `json:"task_id"`
	UpdatedTask *chat.TaskPayload `json:"updated_task"`
}

func (h *handler) newChatResp(out chat.ChatOutput) chatResp {
	resp := chatResp{
		Response:    out.Response,
		Task:        out.Task,
		TaskID:      out.TaskID,
		UpdatedTask: out.UpdatedTask,
	}
	if out.Action != chat.ActionNone {
		action := string(out.Action)
		resp.Action = &action
	}
	return resp
}
