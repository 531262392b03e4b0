package chat

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Chat produces a reply and at most one inferred task action.
	// It never fails: upstream problems are folded into the reply text.
	Chat(ctx context.Context, input ChatInput) ChatOutput
}
