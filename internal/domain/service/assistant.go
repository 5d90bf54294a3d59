package service

import (
	"context"
	"errors"

	"FinHub/internal/domain/models"
)

// ErrUpstreamUnavailable marks a chat backend failure. The assistant
// router absorbs it and falls back to the knowledge base; it is never
// surfaced to the caller.
var ErrUpstreamUnavailable = errors.New("chat backend unavailable")

// ChatBackend is the capability interface over the interchangeable
// external providers. Stateless backends read conv.Messages plus
// conv.Question; a stateful backend may key its own session object on
// conv.SessionID and use only the question.
type ChatBackend interface {
	// Name labels the answer source, e.g. "OpenAI".
	Name() string
	// Answer produces the assistant reply, or fails with an error
	// wrapping ErrUpstreamUnavailable.
	Answer(ctx context.Context, conv *models.Conversation) (string, error)
}
