package llmprovider

import (
	"context"
	"fmt"

	"ai-todo-backend/pkg/groq"
)

// GroqAdapter adapts pkg/groq to llmprovider.Provider interface
type GroqAdapter struct {
	client groq.IGroq
}

// NewGroqAdapter creates a new Groq adapter
func NewGroqAdapter(client groq.IGroq) *GroqAdapter {
	return &GroqAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *GroqAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	groqReq := &groq.Request{
		Messages:    convertToGroqMessages(req.SystemInstruction, req.Messages),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}

	resp, err := a.client.GenerateContent(ctx, groqReq)
	if err != nil {
		return nil, fmt.Errorf("groq: %w", err)
	}

	return convertFromGroqResponse(resp, a.client.Model()), nil
}

// Name returns the provider name
func (a *GroqAdapter) Name() string {
	return "groq"
}

// Model returns the model name
func (a *GroqAdapter) Model() string {
	return a.client.Model()
}

func convertToGroqMessages(system *Message, msgs []Message) []groq.Message {
	messages := make([]groq.Message, 0, len(msgs)+1)
	if system != nil && system.Text() != "" {
		messages = append(messages, groq.Message{Role: "system", Content: system.Text()})
	}
	for _, msg := range msgs {
		messages = append(messages, groq.Message{Role: msg.Role, Content: msg.Text()})
	}
	return messages
}

func convertFromGroqResponse(resp *groq.Response, model string) *Response {
	out := &Response{
		Content:      Message{Role: "assistant", Parts: []Part{}},
		ProviderName: "groq",
		ModelName:    model,
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}
	if resp.Model != "" {
		out.ModelName = resp.Model
	}
	if len(resp.Choices) > 0 && resp.Choices[0].Message.Content != "" {
		out.Content.Parts = append(out.Content.Parts, Part{Text: resp.Choices[0].Message.Content})
	}
	return out
}
