package groq

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"

	domain "github.com/bryanwahyu/skin-triage/internal/domain/triage"
	"github.com/bryanwahyu/skin-triage/internal/infra/ai/prompt"
)

const (
	baseURL   = "https://api.groq.com/openai/v1"
	maxTokens = 512
)

// Client wraps Groq's OpenAI-compatible chat-completions endpoint for the
// educational summary. The whole client is optional; callers treat a nil
// *Client as the dependency being absent.
type Client struct {
	*openai.Client
	Model string
}

func NewClient(apiKey, model string) *Client {
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = baseURL
	return &Client{Client: openai.NewClientWithConfig(cfg), Model: model}
}

// Summarize returns the model's markdown text unmodified. The markdown shape
// is a prompt contract, not re-validated here.
func (c *Client) Summarize(ctx context.Context, label string) (string, error) {
	resp, err := c.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     c.Model,
		MaxTokens: maxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: prompt.SummarySystemPrompt()},
			{Role: openai.ChatMessageRoleUser, Content: prompt.SummaryUserPrompt(label)},
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrModelCall, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: reply had no choices", domain.ErrModelCall)
	}
	return resp.Choices[0].Message.Content, nil
}
