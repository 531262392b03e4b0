package usecase

import (
	"context"

	"ai-todo-backend/internal/chat"
	"ai-todo-backend/internal/chat/gateway"
	"ai-todo-backend/internal/model"
)

// Chat classifies the message locally and asks the gateway for a reply.
// The two are independent: a failed reply still carries the inferred action.
func (uc *implUseCase) Chat(ctx context.Context, input chat.ChatInput) chat.ChatOutput {
	tasks := normalizeTasks(input.Tasks)

	res := uc.classifier.Classify(ctx, input.Message, tasks)

	reply := uc.gateway.Reply(ctx, gateway.Input{
		Message:   input.Message,
		Tasks:     tasks,
		ClientKey: input.ClientKey,
	})

	out := chat.ChatOutput{
		Response:    uc.replyText(ctx, reply),
		Action:      res.Action,
		Task:        res.Task,
		TaskID:      res.TaskID,
		UpdatedTask: res.UpdatedTask,
	}

	if uc.metrics != nil {
		uc.metrics.RecordChatAction(string(out.Action))
	}
	return out
}

func (uc *implUseCase) replyText(ctx context.Context, reply gateway.Reply) string {
	if reply.OK() {
		return reply.Text
	}

	uc.l.Warnf(ctx, "uc.Chat gateway.Reply: %v", reply.Err)
	if uc.cfg.ExposeUpstreamErrors {
		return upstreamErrorPrefix + reply.Err.Error()
	}
	return apologyText
}

// normalizeTasks fills defaults on caller-supplied tasks.
func normalizeTasks(tasks []model.Task) []model.Task {
	out := make([]model.Task, len(tasks))
	for i, t := range tasks {
		out[i] = t.WithDefaults()
	}
	return out
}
