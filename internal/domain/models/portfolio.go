package models

import "time"

// Holding is a position owned by exactly one user.
type Holding struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"-"`
	Symbol      string    `json:"symbol"`
	CompanyName string    `json:"company_name"`
	Quantity    float64   `json:"quantity"`
	BuyPrice    float64   `json:"buy_price"`
	BuyDate     time.Time `json:"-"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"-"`
}

// ValuedHolding is a holding priced against the current quote.
type ValuedHolding struct {
	ID              int64   `json:"id"`
	Symbol          string  `json:"symbol"`
	CompanyName     string  `json:"company_name"`
	Quantity        float64 `json:"quantity"`
	BuyPrice        float64 `json:"buy_price"`
	BuyDate         string  `json:"buy_date"` // ISO calendar date
	Notes           string  `json:"notes,omitempty"`
	CurrentPrice    float64 `json:"current_price"`
	CurrentValue    float64 `json:"current_value"`
	InvestedValue   float64 `json:"invested_value"`
	GainLoss        float64 `json:"gain_loss"`
	GainLossPercent float64 `json:"gain_loss_percent"`
}

// WatchlistItem is a monitored symbol owned by exactly one user.
type WatchlistItem struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"-"`
	Symbol      string    `json:"symbol"`
	CompanyName string    `json:"company_name"`
	TargetPrice float64   `json:"target_price,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"-"`
}

// WatchedQuote is a watchlist item with its current quote attached.
type WatchedQuote struct {
	ID           int64   `json:"id"`
	Symbol       string  `json:"symbol"`
	CompanyName  string  `json:"company_name"`
	TargetPrice  float64 `json:"target_price,omitempty"`
	CurrentPrice float64 `json:"current_price"`
	Notes        string  `json:"notes,omitempty"`
}

// PortfolioSummary is derived fresh on every request, never persisted.
type PortfolioSummary struct {
	TotalInvested        float64 `json:"total_invested"`
	CurrentValue         float64 `json:"current_value"`
	TotalGainLoss        float64 `json:"total_gain_loss"`
	TotalGainLossPercent float64 `json:"total_gain_loss_percent"`
	HoldingsCount        int     `json:"holdings_count"`
	TopPerformer         string  `json:"top_performer,omitempty"`
	WorstPerformer       string  `json:"worst_performer,omitempty"`
}

// StockSuggestion is a reference-table row for autocomplete.
type StockSuggestion struct {
	Symbol string  `json:"symbol"`
	Name   string  `json:"name"`
	Price  float64 `json:"price"`
}

// QuoteTick is one frame of the quote stream.
type QuoteTick struct {
	Symbol string  `json:"symbol"`
	Price  float64 `json:"price"`
	Time   int64   `json:"t"` // unix ms
}
