// Package assistant implements the ChatBackend providers. Each backend
// wraps one external API and normalizes failures to
// service.ErrUpstreamUnavailable so the router can fall back uniformly.
package assistant

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"

	"FinHub/internal/domain/models"
	domservice "FinHub/internal/domain/service"
	"FinHub/internal/service/knowledge"
)

// systemPrompt grounds every backend in the same advisory role.
var systemPrompt = "You are a helpful financial assistant for Indian retail investors. " +
	"Answer briefly and practically. Use the following reference material when relevant:\n\n" +
	knowledge.Base()

// OpenAIBackend answers through the OpenAI chat completion API.
type OpenAIBackend struct {
	client *openai.Client
	model  string
}

// NewOpenAIBackend creates the backend. The key is required; the model
// defaults to gpt-4o-mini.
func NewOpenAIBackend(apiKey, model string) (*OpenAIBackend, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("openai backend: api key required")
	}
	if model == "" {
		model = "gpt-4o-mini"
	}
	return &OpenAIBackend{
		client: openai.NewClient(apiKey),
		model:  model,
	}, nil
}

func (b *OpenAIBackend) Name() string { return "OpenAI" }

// Answer sends the full transcript plus the new question.
func (b *OpenAIBackend) Answer(ctx context.Context, conv *models.Conversation) (string, error) {
	messages := make([]openai.ChatCompletionMessage, 0, len(conv.Messages)+2)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: systemPrompt,
	})
	for _, turn := range conv.Messages {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    turn.Role,
			Content: turn.Content,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: conv.Question,
	})

	resp, err := b.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    b.model,
		Messages: messages,
	})
	if err != nil {
		return "", fmt.Errorf("%w: openai: %v", domservice.ErrUpstreamUnavailable, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: openai: empty response", domservice.ErrUpstreamUnavailable)
	}
	return resp.Choices[0].Message.Content, nil
}
