package knowledge

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnswerTopics(t *testing.T) {
	tests := []struct {
		name     string
		question string
		contains string
	}{
		{"demat", "How do I open a Demat account?", "Demat account is required"},
		{"sip", "Tell me about SIP", "Systematic Investment Plan"},
		{"systematic alias", "what is a systematic plan", "Systematic Investment Plan"},
		{"tax", "How can I save tax?", "Section 80C"},
		{"mutual fund", "are mutual funds safe", "pool money from multiple investors"},
		{"start", "how do I start?", "To start investing"},
		{"risk", "what about risk", "risk management strategies"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, Answer(tt.question), tt.contains)
		})
	}
}

// Earlier rules win when a question hits several topics.
func TestAnswerPriority(t *testing.T) {
	got := Answer("Should I start a SIP for tax saving?")
	assert.Contains(t, got, "Systematic Investment Plan")
	assert.NotContains(t, got, "Section 80C")
}

func TestAnswerCaseInsensitive(t *testing.T) {
	assert.Contains(t, Answer("DEMAT ACCOUNT?"), "Demat account is required")
}

func TestAnswerDefault(t *testing.T) {
	got := Answer("what's the weather like")
	assert.True(t, strings.HasPrefix(got, "Based on the context I have:"))
	assert.Contains(t, got, "certified financial advisor")
}

func TestBaseNonEmpty(t *testing.T) {
	assert.Greater(t, len(Base()), 500)
}

// The label is part of the chat API contract in Answer.Sources.
func TestSourceLabel(t *testing.T) {
	assert.Equal(t, "Financial Knowledge Base", SourceLabel)
}
