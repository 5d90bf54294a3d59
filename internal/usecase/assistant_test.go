package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"FinHub/internal/domain/models"
	domservice "FinHub/internal/domain/service"
	"FinHub/internal/service/knowledge"
	"FinHub/internal/service/session"
	applogger "FinHub/pkg/logger"
)

type fakeBackend struct {
	name    string
	reply   string
	fail    bool
	calls   int
	lastMsg *models.Conversation
}

func (f *fakeBackend) Name() string { return f.name }

func (f *fakeBackend) Answer(_ context.Context, conv *models.Conversation) (string, error) {
	f.calls++
	f.lastMsg = conv
	if f.fail {
		return "", fmt.Errorf("%w: boom", domservice.ErrUpstreamUnavailable)
	}
	return f.reply, nil
}

type fakeHistory struct {
	chats []*models.ChatRecord
	calcs []*models.CalcRecord
}

func (f *fakeHistory) SaveChat(_ context.Context, rec *models.ChatRecord) error {
	f.chats = append(f.chats, rec)
	return nil
}

func (f *fakeHistory) ListChat(_ context.Context, _ int64, _ string, _ int) ([]*models.ChatRecord, error) {
	return f.chats, nil
}

func (f *fakeHistory) SaveCalculation(_ context.Context, rec *models.CalcRecord) error {
	f.calcs = append(f.calcs, rec)
	return nil
}

func (f *fakeHistory) ListCalculations(_ context.Context, _ int64, _ int) ([]*models.CalcRecord, error) {
	return f.calcs, nil
}

type fakeMetrics struct {
	answers map[string]int
}

func (f *fakeMetrics) RecordCalculation(string)          {}
func (f *fakeMetrics) RecordQuoteLookup(string)          {}
func (f *fakeMetrics) RecordLastQuote(string, float64)   {}
func (f *fakeMetrics) RecordLatency(string, float64)     {}
func (f *fakeMetrics) RecordChatAnswer(source string) {
	if f.answers == nil {
		f.answers = make(map[string]int)
	}
	f.answers[source]++
}

func testLogger(t *testing.T) *applogger.Logger {
	t.Helper()
	l, err := applogger.New(&applogger.Config{Level: "error", Format: "json"})
	require.NoError(t, err)
	return l
}

func newAssistant(t *testing.T, backend domservice.ChatBackend) (*AssistantUseCase, *fakeHistory, *fakeMetrics) {
	t.Helper()
	sessions := session.NewMemoryStore(time.Minute, 100)
	t.Cleanup(func() { sessions.Close() })
	history := &fakeHistory{}
	metrics := &fakeMetrics{}
	return NewAssistantUseCase(backend, sessions, history, metrics, testLogger(t)), history, metrics
}

func TestAskUsesBackend(t *testing.T) {
	backend := &fakeBackend{name: "OpenAI", reply: "diversify your portfolio"}
	uc, _, metrics := newAssistant(t, backend)

	ans, err := uc.Ask(context.Background(), 0, "", "what should I do?")
	require.NoError(t, err)
	assert.Equal(t, "diversify your portfolio", ans.Text)
	assert.Equal(t, []string{"OpenAI"}, ans.Sources)
	assert.NotEmpty(t, ans.SessionID)
	assert.Equal(t, 1, metrics.answers["OpenAI"])
}

func TestAskFallsBackOnBackendFailure(t *testing.T) {
	backend := &fakeBackend{name: "OpenAI", fail: true}
	uc, _, metrics := newAssistant(t, backend)

	ans, err := uc.Ask(context.Background(), 0, "", "what is a sip?")
	require.NoError(t, err)
	assert.Contains(t, ans.Text, "Systematic Investment Plan")
	assert.Equal(t, []string{knowledge.SourceLabel}, ans.Sources)
	assert.Equal(t, 1, backend.calls)
	assert.Equal(t, 1, metrics.answers[knowledge.SourceLabel])
}

func TestAskFallbackOnlyWithoutBackend(t *testing.T) {
	uc, _, _ := newAssistant(t, nil)

	ans, err := uc.Ask(context.Background(), 0, "", "tell me about demat accounts")
	require.NoError(t, err)
	assert.Contains(t, ans.Text, "Demat account is required")
	assert.Equal(t, []string{knowledge.SourceLabel}, ans.Sources)
}

func TestAskSessionContinuity(t *testing.T) {
	backend := &fakeBackend{name: "OpenAI", reply: "ok"}
	uc, _, _ := newAssistant(t, backend)
	ctx := context.Background()

	first, err := uc.Ask(ctx, 0, "", "first question")
	require.NoError(t, err)

	second, err := uc.Ask(ctx, 0, first.SessionID, "second question")
	require.NoError(t, err)
	assert.Equal(t, first.SessionID, second.SessionID)

	// second call sees the first exchange as transcript
	require.NotNil(t, backend.lastMsg)
	require.Len(t, backend.lastMsg.Messages, 2)
	assert.Equal(t, models.RoleUser, backend.lastMsg.Messages[0].Role)
	assert.Equal(t, "first question", backend.lastMsg.Messages[0].Content)
	assert.Equal(t, "second question", backend.lastMsg.Question)
}

func TestAskNewSessionsAreIsolated(t *testing.T) {
	backend := &fakeBackend{name: "OpenAI", reply: "ok"}
	uc, _, _ := newAssistant(t, backend)
	ctx := context.Background()

	a, err := uc.Ask(ctx, 0, "", "q")
	require.NoError(t, err)
	b, err := uc.Ask(ctx, 0, "", "q")
	require.NoError(t, err)

	assert.NotEqual(t, a.SessionID, b.SessionID)
	assert.Empty(t, backend.lastMsg.Messages)
}

func TestAskPersistsHistoryForSignedInUsers(t *testing.T) {
	backend := &fakeBackend{name: "OpenAI", reply: "answer"}
	uc, history, _ := newAssistant(t, backend)
	ctx := context.Background()

	_, err := uc.Ask(ctx, 42, "", "question")
	require.NoError(t, err)
	require.Len(t, history.chats, 1)
	assert.Equal(t, int64(42), history.chats[0].UserID)
	assert.Equal(t, "answer", history.chats[0].Answer)

	// anonymous asks are not persisted
	_, err = uc.Ask(ctx, 0, "", "question")
	require.NoError(t, err)
	assert.Len(t, history.chats, 1)
}
