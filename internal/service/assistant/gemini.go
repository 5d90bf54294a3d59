package assistant

import (
	"context"
	"fmt"
	"sync"
	"time"

	"google.golang.org/genai"

	"FinHub/internal/domain/models"
	domservice "FinHub/internal/domain/service"
)

// maxChats bounds how many live chat handles the backend keeps.
const maxChats = 500

type geminiChat struct {
	chat   *genai.Chat
	access time.Time
}

// GeminiBackend answers through the Gemini API. Unlike the other
// backends it is stateful: a chat handle per session carries the
// history server-side, so each call sends only the new question.
type GeminiBackend struct {
	client *genai.Client
	model  string

	mu    sync.Mutex
	chats map[string]*geminiChat
}

// NewGeminiBackend creates the backend. The key is required; the model
// defaults to gemini-2.0-flash.
func NewGeminiBackend(ctx context.Context, apiKey, model string) (*GeminiBackend, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini backend: api key required")
	}
	if model == "" {
		model = "gemini-2.0-flash"
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini backend: %w", err)
	}
	return &GeminiBackend{
		client: client,
		model:  model,
		chats:  make(map[string]*geminiChat),
	}, nil
}

func (b *GeminiBackend) Name() string { return "Gemini" }

// Answer sends only the new question through the session's chat handle.
func (b *GeminiBackend) Answer(ctx context.Context, conv *models.Conversation) (string, error) {
	chat, err := b.sessionChat(ctx, conv.SessionID)
	if err != nil {
		return "", fmt.Errorf("%w: gemini: %v", domservice.ErrUpstreamUnavailable, err)
	}

	resp, err := chat.Send(ctx, &genai.Part{Text: conv.Question})
	if err != nil {
		b.drop(conv.SessionID)
		return "", fmt.Errorf("%w: gemini: %v", domservice.ErrUpstreamUnavailable, err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("%w: gemini: empty response", domservice.ErrUpstreamUnavailable)
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}

func (b *GeminiBackend) sessionChat(ctx context.Context, sessionID string) (*genai.Chat, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if entry, ok := b.chats[sessionID]; ok {
		entry.access = time.Now()
		return entry.chat, nil
	}

	if len(b.chats) >= maxChats {
		b.evictLRU()
	}

	cfg := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{genai.NewPartFromText(systemPrompt)},
		},
	}
	chat, err := b.client.Chats.Create(ctx, b.model, cfg, nil)
	if err != nil {
		return nil, err
	}
	b.chats[sessionID] = &geminiChat{chat: chat, access: time.Now()}
	return chat, nil
}

func (b *GeminiBackend) drop(sessionID string) {
	b.mu.Lock()
	delete(b.chats, sessionID)
	b.mu.Unlock()
}

func (b *GeminiBackend) evictLRU() {
	var oldestKey string
	oldestTime := time.Now()
	for key, entry := range b.chats {
		if entry.access.Before(oldestTime) {
			oldestTime = entry.access
			oldestKey = key
		}
	}
	if oldestKey != "" {
		delete(b.chats, oldestKey)
	}
}
