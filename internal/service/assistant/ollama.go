package assistant

import (
	"context"
	"fmt"
	"time"

	"FinHub/internal/domain/models"
	domservice "FinHub/internal/domain/service"
	apphttp "FinHub/pkg/http"
)

// OllamaBackend answers through a locally running Ollama server's
// /api/chat endpoint.
type OllamaBackend struct {
	client  *apphttp.Client
	baseURL string
	model   string
}

type ollamaMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ollamaChatRequest struct {
	Model    string          `json:"model"`
	Messages []ollamaMessage `json:"messages"`
	Stream   bool            `json:"stream"`
}

type ollamaChatResponse struct {
	Message ollamaMessage `json:"message"`
	Done    bool          `json:"done"`
}

// NewOllamaBackend creates the backend and probes the server once so a
// misconfigured base URL fails at startup, not on the first question.
func NewOllamaBackend(baseURL, model string, timeout time.Duration) (*OllamaBackend, error) {
	if baseURL == "" {
		baseURL = "http://localhost:11434"
	}
	if model == "" {
		model = "llama3"
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	b := &OllamaBackend{
		client:  apphttp.NewClient(apphttp.WithTimeout(timeout)),
		baseURL: baseURL,
		model:   model,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	resp, err := b.client.SendRequest(ctx, &apphttp.RequestOptions{
		Method: apphttp.MethodGet,
		URL:    baseURL + "/api/tags",
	})
	if err != nil {
		return nil, fmt.Errorf("ollama backend: server unreachable at %s: %w", baseURL, err)
	}
	resp.Body.Close()
	return b, nil
}

func (b *OllamaBackend) Name() string { return "Ollama" }

// Answer sends the full transcript plus the new question.
func (b *OllamaBackend) Answer(ctx context.Context, conv *models.Conversation) (string, error) {
	messages := make([]ollamaMessage, 0, len(conv.Messages)+2)
	messages = append(messages, ollamaMessage{Role: models.RoleSystem, Content: systemPrompt})
	for _, turn := range conv.Messages {
		messages = append(messages, ollamaMessage{Role: turn.Role, Content: turn.Content})
	}
	messages = append(messages, ollamaMessage{Role: models.RoleUser, Content: conv.Question})

	var out ollamaChatResponse
	err := b.client.SendAndParse(ctx, &apphttp.RequestOptions{
		Method: apphttp.MethodPost,
		URL:    b.baseURL + "/api/chat",
		Body: ollamaChatRequest{
			Model:    b.model,
			Messages: messages,
			Stream:   false,
		},
	}, &out)
	if err != nil {
		return "", fmt.Errorf("%w: ollama: %v", domservice.ErrUpstreamUnavailable, err)
	}
	if out.Message.Content == "" {
		return "", fmt.Errorf("%w: ollama: empty response", domservice.ErrUpstreamUnavailable)
	}
	return out.Message.Content, nil
}
