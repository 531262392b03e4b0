package http

import (
	"ai-todo-backend/internal/model"
	"ai-todo-backend/internal/task"
)

// --- Request DTOs ---

type createReq struct {
	UserID      string `json:"-"` // populated from URI param
	Title       string `json:"title"       binding:"required,max=500"`
	Description string `json:"description" binding:"max=2000"`
	Priority    string `json:"priority"    binding:"omitempty,oneof=Low Medium High"`
	Category    string `json:"category"`
	DueDate     string `json:"dueDate"`
	Repeat      string `json:"repeat"`
}

func (r createReq) toInput() task.CreateInput {
	return task.CreateInput{
		Title:       r.Title,
		Description: r.Description,
		Priority:    model.Priority(r.Priority),
		Category:    r.Category,
		DueDate:     r.DueDate,
		Repeat:      r.Repeat,
	}
}

// ---

type listReq struct {
	UserID string `form:"-"`
	Status string `form:"status"`
}

// ---

type taskIDReq struct {
	UserID string
	TaskID int64
}

// --- Response DTOs ---

// The frontend consumes bare task objects, so responses are the model itself.

func (h *handler) newListResp(tasks []model.Task) []model.Task {
	if tasks == nil {
		return []model.Task{}
	}
	return tasks
}

const msgTaskDeleted = "Task deleted"
