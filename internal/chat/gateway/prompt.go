package gateway

import (
	"fmt"
	"strings"

	"ai-todo-backend/internal/model"
)

// buildSystemPrompt renders the persona prompt with the caller's task titles.
func buildSystemPrompt(tasks []model.Task) string {
	return fmt.Sprintf(systemPromptTemplate, taskLines(tasks))
}

func taskLines(tasks []model.Task) string {
	if len(tasks) == 0 {
		return noTasksLine
	}
	lines := make([]string, len(tasks))
	for i, t := range tasks {
		lines[i] = "- " + t.Title
	}
	return strings.Join(lines, "\n")
}
