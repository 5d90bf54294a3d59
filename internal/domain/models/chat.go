package models

import "time"

// Chat roles as exchanged with the backends.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatTurn is one role-tagged message of a conversation transcript.
type ChatTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Conversation is the per-session state handed to a chat backend.
// Messages holds the transcript accumulated so far (system prompt and
// prior turns); Question is the new user message for this call.
type Conversation struct {
	SessionID string
	Messages  []ChatTurn
	Question  string
}

// Answer is what the assistant returns to the caller: always produced,
// degraded to the knowledge-base fallback on backend failure.
type Answer struct {
	Text      string   `json:"answer"`
	Sources   []string `json:"sources"`
	SessionID string   `json:"session_id"`
}

// ChatRecord is a persisted question/answer pair for a signed-in user.
type ChatRecord struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"-"`
	SessionID string    `json:"session_id"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	CreatedAt time.Time `json:"created_at"`
}

// CalcRecord is a persisted calculator invocation for a signed-in user.
type CalcRecord struct {
	ID             int64     `json:"id"`
	UserID         int64     `json:"-"`
	CalculatorType string    `json:"calculator_type"`
	Inputs         string    `json:"inputs"` // JSON
	Result         string    `json:"result"` // JSON
	CreatedAt      time.Time `json:"created_at"`
}
