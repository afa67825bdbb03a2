package openai

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/sashabaranov/go-openai"

	domain "github.com/bryanwahyu/skin-triage/internal/domain/triage"
	"github.com/bryanwahyu/skin-triage/internal/infra/ai/payload"
	"github.com/bryanwahyu/skin-triage/internal/infra/ai/prompt"
)

const maxTokens = 256

// Client talks to an OpenAI-compatible vision endpoint (local llama.cpp,
// vLLM, or api.openai.com itself) selected by base URL.
type Client struct {
	*openai.Client
	Model string
}

func NewClient(baseURL, apiKey, model string) *Client {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &Client{Client: openai.NewClientWithConfig(cfg), Model: model}
}

// Classify sends one multimodal request (instruction + base64 JPEG data URL)
// and normalizes the reply into a Classification. Single attempt, no retry.
func (c *Client) Classify(ctx context.Context, image []byte) (domain.Classification, error) {
	dataURL := fmt.Sprintf("data:image/jpeg;base64,%s", base64.StdEncoding.EncodeToString(image))

	req := openai.ChatCompletionRequest{
		Model:     c.Model,
		MaxTokens: maxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: prompt.ClassifySystemPrompt()},
			{
				Role: openai.ChatMessageRoleUser,
				MultiContent: []openai.ChatMessagePart{
					{Type: openai.ChatMessagePartTypeText, Text: prompt.ClassifyUserPrompt()},
					{Type: openai.ChatMessagePartTypeImageURL, ImageURL: &openai.ChatMessageImageURL{URL: dataURL}},
				},
			},
		},
	}

	resp, err := c.CreateChatCompletion(ctx, req)
	if err != nil {
		return domain.Classification{}, fmt.Errorf("%w: %v", domain.ErrModelCall, err)
	}
	if len(resp.Choices) == 0 {
		return domain.Classification{}, fmt.Errorf("%w: reply had no choices", domain.ErrModelCall)
	}

	obj, err := payload.Extract(messageText(resp.Choices[0].Message))
	if err != nil {
		return domain.Classification{}, err
	}
	return fromPayload(obj), nil
}

// messageText flattens reply content. Some backends return plain text,
// others a list of typed fragments; only text-typed fragments count.
func messageText(msg openai.ChatCompletionMessage) string {
	if msg.Content != "" {
		return msg.Content
	}
	var out string
	for _, part := range msg.MultiContent {
		if part.Type == openai.ChatMessagePartTypeText {
			out += part.Text
		}
	}
	return out
}

// fromPayload maps the parsed reply onto the Classification invariants:
// label always present (sentinel when missing), confidence only when numeric.
func fromPayload(obj map[string]any) domain.Classification {
	out := domain.Classification{Label: string(domain.LabelUnknown)}
	if label, ok := obj["label"].(string); ok && label != "" {
		out.Label = label
	}
	if conf, ok := obj["confidence"].(float64); ok {
		out.Confidence = &conf
	}
	if expl, ok := obj["explanation"].(string); ok {
		out.Explanation = expl
	}
	return out
}
