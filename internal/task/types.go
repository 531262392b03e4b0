package task

import "ai-todo-backend/internal/model"

// Status filters the task list.
type Status string

const (
	StatusAll       Status = "all"
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

// CreateInput is the input for creating a task. Empty optional fields
// take the model defaults.
type CreateInput struct {
	Title       string
	Description string
	Priority    model.Priority
	Category    string
	DueDate     string
	Repeat      string
}

// ToTask converts the input into a defaulted, not-yet-stored task.
func (in CreateInput) ToTask() model.Task {
	return model.Task{
		Title:       in.Title,
		Description: in.Description,
		Priority:    in.Priority,
		Category:    in.Category,
		DueDate:     in.DueDate,
		Repeat:      in.Repeat,
	}.WithDefaults()
}
