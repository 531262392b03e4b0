package gateway

import (
	"context"
	"strings"

	"ai-todo-backend/pkg/llmprovider"
)

// Reply sends the system prompt and the user message upstream.
func (g *implGateway) Reply(ctx context.Context, input Input) Reply {
	if err := g.limiter.Allow(input.ClientKey); err != nil {
		g.l.Warnf(ctx, "%s: client=%s: %v", LogPrefixReply, input.ClientKey, err)
		g.record(outcomeRateLimited)
		return UpstreamError(err)
	}

	if g.llm == nil {
		g.record(outcomeError)
		return UpstreamError(llmprovider.ErrNoProvidersConfigured)
	}

	resp, err := g.llm.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: &llmprovider.Message{
			Role:  "system",
			Parts: []llmprovider.Part{{Text: buildSystemPrompt(input.Tasks)}},
		},
		Messages: []llmprovider.Message{
			{Role: "user", Parts: []llmprovider.Part{{Text: input.Message}}},
		},
		Temperature: g.cfg.Temperature,
		MaxTokens:   g.cfg.MaxTokens,
	})
	if err != nil {
		g.l.Errorf(ctx, "%s: %v", LogPrefixReply, err)
		g.record(outcomeError)
		return UpstreamError(err)
	}

	text := ""
	if resp != nil {
		text = strings.TrimSpace(resp.Content.Text())
	}
	if text == "" {
		g.l.Warnf(ctx, "%s: %v", LogPrefixReply, ErrEmptyReply)
		g.record(outcomeError)
		return UpstreamError(ErrEmptyReply)
	}

	g.record(outcomeOK)
	return Ok(text)
}

func (g *implGateway) record(outcome string) {
	if g.metrics != nil {
		g.metrics.RecordLLMRequest(outcome)
	}
}
