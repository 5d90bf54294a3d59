package repository

import (
	"context"
	"errors"

	"FinHub/internal/domain/models"
)

// ErrNotFound is returned by stores when an entity does not exist or is
// not visible to the requesting owner.
var ErrNotFound = errors.New("not found")

// ErrDuplicate is returned by stores on unique-identity violation.
var ErrDuplicate = errors.New("duplicate identity")

// UserStore is the credential store boundary: create accounts and look
// them up for verification. Password hashing happens above this layer.
type UserStore interface {
	Create(ctx context.Context, u *models.User) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// HoldingStore persists portfolio holdings, always scoped to one owner.
type HoldingStore interface {
	Create(ctx context.Context, h *models.Holding) (*models.Holding, error)
	ListByUser(ctx context.Context, userID int64) ([]*models.Holding, error)
	GetByID(ctx context.Context, id, userID int64) (*models.Holding, error)
	Update(ctx context.Context, h *models.Holding) error
	Delete(ctx context.Context, id, userID int64) error
}

// WatchlistStore persists watchlist items, always scoped to one owner.
type WatchlistStore interface {
	Create(ctx context.Context, w *models.WatchlistItem) (*models.WatchlistItem, error)
	ListByUser(ctx context.Context, userID int64) ([]*models.WatchlistItem, error)
	Delete(ctx context.Context, id, userID int64) error
}

// HistoryStore persists chat and calculator history for signed-in users.
type HistoryStore interface {
	SaveChat(ctx context.Context, rec *models.ChatRecord) error
	ListChat(ctx context.Context, userID int64, sessionID string, limit int) ([]*models.ChatRecord, error)
	SaveCalculation(ctx context.Context, rec *models.CalcRecord) error
	ListCalculations(ctx context.Context, userID int64, limit int) ([]*models.CalcRecord, error)
}

// QuoteSource supplies current prices. The bundled implementation is a
// jittered mock; a real feed can swap in without touching the valuator.
type QuoteSource interface {
	CurrentPrice(symbol string) float64
	Suggestions() []models.StockSuggestion
}

// SessionStore holds per-session conversation transcripts for the
// assistant router. Implementations bound growth (TTL plus size cap).
type SessionStore interface {
	Get(ctx context.Context, sessionID string) ([]models.ChatTurn, bool)
	Append(ctx context.Context, sessionID string, turns ...models.ChatTurn) error
}

// Metrics records domain-level observations.
type Metrics interface {
	RecordCalculation(calcType string)
	RecordChatAnswer(source string)
	RecordQuoteLookup(kind string)
	RecordLastQuote(symbol string, price float64)
	RecordLatency(op string, seconds float64)
}
