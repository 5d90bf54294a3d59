package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"FinHub/internal/domain/models"
	domrepo "FinHub/internal/domain/repository"
	domservice "FinHub/internal/domain/service"
	"FinHub/internal/service/knowledge"
	applogger "FinHub/pkg/logger"
)

// answerTimeout bounds one backend call so a hung provider cannot
// stall the request; the fallback still answers within it.
const answerTimeout = 90 * time.Second

// AssistantUseCase routes questions to the configured chat backend and
// degrades to the knowledge-base fallback on any backend failure. Ask
// always produces an answer.
type AssistantUseCase struct {
	backend  domservice.ChatBackend // nil means fallback-only
	sessions domrepo.SessionStore
	history  domrepo.HistoryStore
	metrics  domrepo.Metrics
	logger   *applogger.Logger
}

func NewAssistantUseCase(backend domservice.ChatBackend, sessions domrepo.SessionStore, history domrepo.HistoryStore, metrics domrepo.Metrics, logger *applogger.Logger) *AssistantUseCase {
	return &AssistantUseCase{
		backend:  backend,
		sessions: sessions,
		history:  history,
		metrics:  metrics,
		logger:   logger,
	}
}

// Ask answers a question within a session. An empty sessionID starts a
// new session; the id is echoed back so the client can continue it.
// userID 0 means anonymous; signed-in questions are also persisted.
func (uc *AssistantUseCase) Ask(ctx context.Context, userID int64, sessionID, question string) (*models.Answer, error) {
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	transcript, _ := uc.sessions.Get(ctx, sessionID)
	conv := &models.Conversation{
		SessionID: sessionID,
		Messages:  transcript,
		Question:  question,
	}

	text, source := uc.answer(ctx, conv)

	if err := uc.sessions.Append(ctx, sessionID,
		models.ChatTurn{Role: models.RoleUser, Content: question},
		models.ChatTurn{Role: models.RoleAssistant, Content: text},
	); err != nil {
		uc.logger.Warn("session append failed",
			applogger.String("session_id", sessionID), applogger.Error(err))
	}

	if userID > 0 {
		rec := &models.ChatRecord{
			UserID:    userID,
			SessionID: sessionID,
			Question:  question,
			Answer:    text,
		}
		if err := uc.history.SaveChat(ctx, rec); err != nil {
			uc.logger.Warn("save chat history failed",
				applogger.Int64("user_id", userID), applogger.Error(err))
		}
	}

	uc.metrics.RecordChatAnswer(source)
	return &models.Answer{
		Text:      text,
		Sources:   []string{source},
		SessionID: sessionID,
	}, nil
}

// answer tries the configured backend and falls back to the knowledge
// base. Backend failures are logged, never propagated.
func (uc *AssistantUseCase) answer(ctx context.Context, conv *models.Conversation) (text, source string) {
	if uc.backend == nil {
		return knowledge.Answer(conv.Question), knowledge.SourceLabel
	}

	ctx, cancel := context.WithTimeout(ctx, answerTimeout)
	defer cancel()

	start := time.Now()
	text, err := uc.backend.Answer(ctx, conv)
	uc.metrics.RecordLatency("chat_"+uc.backend.Name(), time.Since(start).Seconds())
	if err != nil {
		uc.logger.Warn("chat backend failed, using fallback",
			applogger.String("backend", uc.backend.Name()),
			applogger.String("session_id", conv.SessionID),
			applogger.Error(err))
		return knowledge.Answer(conv.Question), knowledge.SourceLabel
	}
	return text, uc.backend.Name()
}

// History returns the caller's recent chat records, optionally scoped
// to one session.
func (uc *AssistantUseCase) History(ctx context.Context, userID int64, sessionID string, limit int) ([]*models.ChatRecord, error) {
	return uc.history.ListChat(ctx, userID, sessionID, limit)
}
