package di

import (
	"context"
	"database/sql"
	"fmt"

	domrepo "FinHub/internal/domain/repository"
	domservice "FinHub/internal/domain/service"
	"FinHub/internal/handler/api"
	mid "FinHub/internal/middleware"
	internalrepo "FinHub/internal/repository"
	"FinHub/internal/service/assistant"
	"FinHub/internal/service/auth"
	"FinHub/internal/service/quotes"
	"FinHub/internal/service/session"
	"FinHub/internal/usecase"
	"FinHub/pkg/config"
	apphttp "FinHub/pkg/http"
	applogger "FinHub/pkg/logger"
	"FinHub/pkg/metrics"
	"FinHub/pkg/server"
)

// ProvideLogger creates the application logger.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	level := "info"
	format := "json"
	if cfg.Debug {
		level = "debug"
		format = "console"
	}
	return applogger.New(&applogger.Config{Level: level, Format: format, Output: "stdout"})
}

// ProvideDatabase opens the SQLite database and applies the schema.
func ProvideDatabase(cfg *config.Config) (*sql.DB, error) {
	db, err := internalrepo.OpenSQLite(cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("sqlite: %w", err)
	}
	return db, nil
}

// ProvideMetrics creates the Prometheus metrics recorder.
func ProvideMetrics() domrepo.Metrics {
	return metrics.New()
}

// ProvideQuoteSource creates the mock quote source.
func ProvideQuoteSource(m domrepo.Metrics) domrepo.QuoteSource {
	return quotes.NewMockSource(m)
}

// ProvideQuoteStreamer creates the WebSocket quote pusher.
func ProvideQuoteStreamer(src domrepo.QuoteSource, cfg *config.Config, l *applogger.Logger) *quotes.Streamer {
	return quotes.NewStreamer(src, cfg.Quotes.StreamInterval, l)
}

// ProvideSessionStore selects the session backend from config.
func ProvideSessionStore(cfg *config.Config) (domrepo.SessionStore, error) {
	switch cfg.Session.Backend {
	case "redis":
		return session.NewRedisStore(session.RedisOptions{
			Addr:     cfg.Session.Redis.Addr,
			Password: cfg.Session.Redis.Password,
			DB:       cfg.Session.Redis.DB,
		}, cfg.Session.TTL)
	default:
		return session.NewMemoryStore(cfg.Session.TTL, cfg.Session.MaxSessions), nil
	}
}

// ProvideChatBackend selects the AI provider from config; nil means
// the assistant runs on the knowledge-base fallback only.
func ProvideChatBackend(cfg *config.Config, l *applogger.Logger) (domservice.ChatBackend, error) {
	switch cfg.AI.Provider {
	case "openai":
		return assistant.NewOpenAIBackend(cfg.AI.OpenAI.APIKey, cfg.AI.OpenAI.Model)
	case "ollama":
		return assistant.NewOllamaBackend(cfg.AI.Ollama.BaseURL, cfg.AI.Ollama.Model, cfg.AI.Timeout)
	case "gemini":
		return assistant.NewGeminiBackend(context.Background(), cfg.AI.Gemini.APIKey, cfg.AI.Gemini.Model)
	default:
		l.Info("no AI provider configured, assistant uses knowledge-base fallback")
		return nil, nil
	}
}

// ProvideAuthService creates the token/password service.
func ProvideAuthService(cfg *config.Config) *auth.Service {
	return auth.NewService(cfg.Auth.Secret, cfg.Auth.TokenTTL)
}

// ProvideAuthMiddleware creates the auth guard.
func ProvideAuthMiddleware(tokens *auth.Service) *mid.Auth {
	return mid.NewAuth(tokens)
}

// Repositories.

func ProvideUserStore(db *sql.DB) domrepo.UserStore {
	return internalrepo.NewUserRepository(db)
}

func ProvideHoldingStore(db *sql.DB) domrepo.HoldingStore {
	return internalrepo.NewHoldingRepository(db)
}

func ProvideWatchlistStore(db *sql.DB) domrepo.WatchlistStore {
	return internalrepo.NewWatchlistRepository(db)
}

func ProvideHistoryStore(db *sql.DB) domrepo.HistoryStore {
	return internalrepo.NewHistoryRepository(db)
}

// Use cases.

func ProvideAuthUseCase(users domrepo.UserStore, authSvc *auth.Service) *usecase.AuthUseCase {
	return usecase.NewAuthUseCase(users, authSvc)
}

func ProvideCalculatorUseCase(history domrepo.HistoryStore, m domrepo.Metrics, l *applogger.Logger) *usecase.CalculatorUseCase {
	return usecase.NewCalculatorUseCase(history, m, l)
}

func ProvidePortfolioUseCase(holdings domrepo.HoldingStore, watchlist domrepo.WatchlistStore, src domrepo.QuoteSource) *usecase.PortfolioUseCase {
	return usecase.NewPortfolioUseCase(holdings, watchlist, src)
}

func ProvideAssistantUseCase(backend domservice.ChatBackend, sessions domrepo.SessionStore, history domrepo.HistoryStore, m domrepo.Metrics, l *applogger.Logger) *usecase.AssistantUseCase {
	return usecase.NewAssistantUseCase(backend, sessions, history, m, l)
}

// ProvideHandlers assembles every HTTP handler for route registration.
func ProvideHandlers(
	l *applogger.Logger,
	guard *mid.Auth,
	authUC *usecase.AuthUseCase,
	calcUC *usecase.CalculatorUseCase,
	portfolioUC *usecase.PortfolioUseCase,
	assistantUC *usecase.AssistantUseCase,
	streamer *quotes.Streamer,
) []apphttp.Handler {
	return []apphttp.Handler{
		api.NewAuthHandler(l, authUC, guard),
		api.NewCalculatorHandler(calcUC, guard),
		api.NewPortfolioHandler(l, portfolioUC, guard),
		api.NewChatHandler(assistantUC, guard),
		api.NewQuotesHandler(l, portfolioUC, streamer),
	}
}

// ProvideApp assembles the application.
func ProvideApp(
	cfg *config.Config,
	l *applogger.Logger,
	db *sql.DB,
	sessions domrepo.SessionStore,
	handlers []apphttp.Handler,
) *server.App {
	return server.New(cfg, l, db, sessions, handlers)
}
