package usecase

import (
	"context"
	"strings"

	"FinHub/internal/domain/models"
	domrepo "FinHub/internal/domain/repository"
	"FinHub/internal/service/valuation"
	apphttp "FinHub/pkg/http"
	"FinHub/pkg/util"
)

// PortfolioUseCase is the holdings, watchlist and valuation logic.
// Every operation is scoped to the owning user.
type PortfolioUseCase struct {
	holdings  domrepo.HoldingStore
	watchlist domrepo.WatchlistStore
	quotes    domrepo.QuoteSource
}

func NewPortfolioUseCase(holdings domrepo.HoldingStore, watchlist domrepo.WatchlistStore, quotes domrepo.QuoteSource) *PortfolioUseCase {
	return &PortfolioUseCase{holdings: holdings, watchlist: watchlist, quotes: quotes}
}

func (uc *PortfolioUseCase) CreateHolding(ctx context.Context, userID int64, req *models.CreateHoldingRequest) (*models.Holding, error) {
	buyDate, ok := util.ParseISODate(req.BuyDate)
	if !ok {
		return nil, apphttp.BadRequestError("buy_date must be an ISO date (YYYY-MM-DD)")
	}
	return uc.holdings.Create(ctx, &models.Holding{
		UserID:      userID,
		Symbol:      strings.ToUpper(req.Symbol),
		CompanyName: req.CompanyName,
		Quantity:    req.Quantity,
		BuyPrice:    req.BuyPrice,
		BuyDate:     buyDate,
		Notes:       req.Notes,
	})
}

func (uc *PortfolioUseCase) UpdateHolding(ctx context.Context, userID, id int64, req *models.UpdateHoldingRequest) (*models.Holding, error) {
	h, err := uc.holdings.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if req.Symbol != nil {
		h.Symbol = strings.ToUpper(*req.Symbol)
	}
	if req.CompanyName != nil {
		h.CompanyName = *req.CompanyName
	}
	if req.Quantity != nil {
		h.Quantity = *req.Quantity
	}
	if req.BuyPrice != nil {
		h.BuyPrice = *req.BuyPrice
	}
	if req.BuyDate != nil {
		buyDate, ok := util.ParseISODate(*req.BuyDate)
		if !ok {
			return nil, apphttp.BadRequestError("buy_date must be an ISO date (YYYY-MM-DD)")
		}
		h.BuyDate = buyDate
	}
	if req.Notes != nil {
		h.Notes = *req.Notes
	}
	if err := uc.holdings.Update(ctx, h); err != nil {
		return nil, err
	}
	return h, nil
}

func (uc *PortfolioUseCase) DeleteHolding(ctx context.Context, userID, id int64) error {
	return uc.holdings.Delete(ctx, id, userID)
}

// ValuedHoldings prices each holding at the current quote.
func (uc *PortfolioUseCase) ValuedHoldings(ctx context.Context, userID int64) ([]models.ValuedHolding, error) {
	holdings, err := uc.holdings.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]models.ValuedHolding, 0, len(holdings))
	for _, h := range holdings {
		out = append(out, valuation.ValueHolding(h, uc.quotes.CurrentPrice(h.Symbol)))
	}
	return out, nil
}

// Summary values the portfolio and aggregates it. Derived fresh on
// every call, never persisted.
func (uc *PortfolioUseCase) Summary(ctx context.Context, userID int64) (*models.PortfolioSummary, error) {
	valued, err := uc.ValuedHoldings(ctx, userID)
	if err != nil {
		return nil, err
	}
	summary := valuation.Summarize(valued)
	return &summary, nil
}

func (uc *PortfolioUseCase) AddWatchlistItem(ctx context.Context, userID int64, req *models.CreateWatchlistItemRequest) (*models.WatchlistItem, error) {
	return uc.watchlist.Create(ctx, &models.WatchlistItem{
		UserID:      userID,
		Symbol:      strings.ToUpper(req.Symbol),
		CompanyName: req.CompanyName,
		TargetPrice: req.TargetPrice,
		Notes:       req.Notes,
	})
}

// Watchlist returns the user's watchlist with current quotes attached.
func (uc *PortfolioUseCase) Watchlist(ctx context.Context, userID int64) ([]models.WatchedQuote, error) {
	items, err := uc.watchlist.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]models.WatchedQuote, 0, len(items))
	for _, w := range items {
		out = append(out, models.WatchedQuote{
			ID:           w.ID,
			Symbol:       w.Symbol,
			CompanyName:  w.CompanyName,
			TargetPrice:  w.TargetPrice,
			CurrentPrice: uc.quotes.CurrentPrice(w.Symbol),
			Notes:        w.Notes,
		})
	}
	return out, nil
}

func (uc *PortfolioUseCase) RemoveWatchlistItem(ctx context.Context, userID, id int64) error {
	return uc.watchlist.Delete(ctx, id, userID)
}

// Quote returns the current price for one symbol.
func (uc *PortfolioUseCase) Quote(symbol string) models.QuoteTick {
	sym := strings.ToUpper(symbol)
	return models.QuoteTick{
		Symbol: sym,
		Price:  uc.quotes.CurrentPrice(sym),
	}
}

// Suggestions returns the reference table for symbol autocomplete.
func (uc *PortfolioUseCase) Suggestions() []models.StockSuggestion {
	return uc.quotes.Suggestions()
}
