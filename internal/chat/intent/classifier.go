package intent

import (
	"context"
	"strings"
	"unicode/utf8"

	"ai-todo-backend/internal/chat"
	"ai-todo-backend/internal/model"
)

// Classify runs the branches in priority order: complete, rename, add, delete.
// Only the first branch whose trigger fires is evaluated, even when it ends
// up finding nothing. It never fails.
func (c *Classifier) Classify(ctx context.Context, message string, tasks []model.Task) Result {
	lower := strings.ToLower(message)

	var (
		res    Result
		branch string
	)
	switch {
	case containsAny(lower, completeTriggers):
		branch = "complete"
		res = classifyComplete(lower, tasks)
	case strings.Contains(lower, renameSeparator) && containsAny(lower, updateTriggers):
		branch = "update"
		res = classifyUpdate(message, lower, tasks)
	case containsAny(lower, addTriggers):
		branch = "add"
		res = classifyAdd(message, lower)
	case containsAny(lower, deleteTriggers):
		branch = "delete"
		res = classifyDelete(lower, tasks)
	default:
		branch = "none"
	}

	if c.l != nil {
		c.l.Debugf(ctx, "%s: branch=%s action=%q", LogPrefixClassify, branch, res.Action)
	}
	return res
}

// classifyComplete picks the pending task with the most title words found in
// the message. Ties go to the earlier task. Zero matches means no action.
func classifyComplete(lower string, tasks []model.Task) Result {
	var (
		best      *model.Task
		bestCount int
	)
	for i := range tasks {
		t := &tasks[i]
		if t.Completed || !isMatchTarget(t) {
			continue
		}

		count := 0
		for _, word := range strings.Fields(strings.ToLower(t.Title)) {
			if strings.Contains(lower, word) {
				count++
			}
		}
		if count > bestCount {
			best, bestCount = t, count
		}
	}

	if best == nil {
		return Result{}
	}

	done := *best
	done.Completed = true
	return Result{
		Action:      chat.ActionComplete,
		TaskID:      idPtr(best.ID),
		UpdatedTask: payloadPtr(done),
	}
}

// classifyUpdate splits on the first " to ". The left side must contain the
// task title; everything on the right becomes the new title.
func classifyUpdate(message, lower string, tasks []model.Task) Result {
	oldPart, newTitle, ok := splitRename(message, lower)
	if !ok {
		return Result{}
	}
	newTitle = cleanTitle(newTitle)
	if newTitle == "" {
		return Result{}
	}

	for i := range tasks {
		t := tasks[i]
		if !isMatchTarget(&t) {
			continue
		}
		if strings.Contains(oldPart, strings.ToLower(t.Title)) {
			renamed := t
			renamed.Title = newTitle
			return Result{
				Action:      chat.ActionUpdate,
				TaskID:      idPtr(t.ID),
				UpdatedTask: payloadPtr(renamed),
			}
		}
	}
	return Result{}
}

// classifyAdd strips the first known lead-in phrase and keeps the rest,
// with original casing, as the new task title.
func classifyAdd(message, lower string) Result {
	candidate := message
	for _, phrase := range addPhrases {
		if idx := strings.Index(lower, phrase); idx >= 0 {
			candidate = sliceFrom(message, lower, idx+len(phrase))
			break
		}
	}

	title := cleanTitle(candidate)
	if utf8.RuneCountInString(title) <= minTitleRunes {
		return Result{}
	}
	if containsAny(strings.ToLower(title), listingWords) {
		return Result{}
	}

	return Result{
		Action: chat.ActionAdd,
		Task:   payloadPtr(model.Task{Title: title}),
	}
}

// classifyDelete picks the first task whose title appears in the message.
func classifyDelete(lower string, tasks []model.Task) Result {
	for i := range tasks {
		t := &tasks[i]
		if !isMatchTarget(t) {
			continue
		}
		if strings.Contains(lower, strings.ToLower(t.Title)) {
			return Result{
				Action: chat.ActionDelete,
				TaskID: idPtr(t.ID),
			}
		}
	}
	return Result{}
}

// isMatchTarget excludes the seed task and blank titles, which would match
// any message as a substring.
func isMatchTarget(t *model.Task) bool {
	title := strings.ToLower(strings.TrimSpace(t.Title))
	return title != "" && title != SentinelTitle
}

// splitRename returns the lowercased text before the first " to " and the
// original-case text after it.
func splitRename(message, lower string) (oldPart, newTitle string, ok bool) {
	idx := strings.Index(lower, renameSeparator)
	if idx < 0 {
		return "", "", false
	}
	return lower[:idx], sliceFrom(message, lower, idx+len(renameSeparator)), true
}

// sliceFrom cuts message at an index found in its lowercased form.
// Lowercasing can change byte lengths for some scripts; when it does, the
// index is not valid for message and the lowercased text is cut instead.
func sliceFrom(message, lower string, idx int) string {
	if len(message) == len(lower) {
		return message[idx:]
	}
	return lower[idx:]
}

func cleanTitle(s string) string {
	return strings.Trim(strings.TrimSpace(s), titleCutset)
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

func idPtr(id int64) *int64 { return &id }

func payloadPtr(t model.Task) *chat.TaskPayload {
	p := chat.NewTaskPayload(t)
	return &p
}
