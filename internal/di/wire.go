//go:build wireinject
// +build wireinject

package di

import (
	"FinHub/pkg/config"
	"FinHub/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		ProvideLogger,
		ProvideMetrics,

		// Infrastructure
		ProvideDatabase,
		ProvideSessionStore,
		ProvideQuoteSource,
		ProvideQuoteStreamer,
		ProvideChatBackend,

		// Auth
		ProvideAuthService,
		ProvideAuthMiddleware,

		// Repositories
		ProvideUserStore,
		ProvideHoldingStore,
		ProvideWatchlistStore,
		ProvideHistoryStore,

		// Use cases
		ProvideAuthUseCase,
		ProvideCalculatorUseCase,
		ProvidePortfolioUseCase,
		ProvideAssistantUseCase,

		// HTTP
		ProvideHandlers,
		ProvideApp,
	)
	return &server.App{}, nil
}
