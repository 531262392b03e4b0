package model

// Priority is the urgency of a task.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// Field defaults for tasks that arrive without them.
const (
	DefaultPriority = PriorityMedium
	DefaultCategory = "Personal"
	DefaultRepeat   = "No Repeat"
)

// Task is a to-do item owned by a single user.
type Task struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Completed   bool     `json:"completed"`
	Priority    Priority `json:"priority"`
	Category    string   `json:"category"`
	DueDate     string   `json:"dueDate"`
	Repeat      string   `json:"repeat"`
}

// WithDefaults returns a copy of t with empty priority, category and repeat
// replaced by their defaults.
func (t Task) WithDefaults() Task {
	if t.Priority == "" {
		t.Priority = DefaultPriority
	}
	if t.Category == "" {
		t.Category = DefaultCategory
	}
	if t.Repeat == "" {
		t.Repeat = DefaultRepeat
	}
	return t
}

// IsValidPriority reports whether p is one of Low, Medium or High.
func IsValidPriority(p Priority) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}
