package models

// Requests for portfolio and watchlist HTTP endpoints.
// Buy dates travel as ISO calendar-date strings (YYYY-MM-DD).

type CreateHoldingRequest struct {
	Symbol      string  `json:"symbol" validate:"required,max=20"`
	CompanyName string  `json:"company_name" validate:"required,max=255"`
	Quantity    float64 `json:"quantity" validate:"required,gt=0"`
	BuyPrice    float64 `json:"buy_price" validate:"required,gt=0"`
	BuyDate     string  `json:"buy_date" validate:"required,datetime=2006-01-02"`
	Notes       string  `json:"notes" validate:"max=500"`
}

// UpdateHoldingRequest is a partial update: nil fields are left untouched.
type UpdateHoldingRequest struct {
	Symbol      *string  `json:"symbol,omitempty" validate:"omitempty,max=20"`
	CompanyName *string  `json:"company_name,omitempty" validate:"omitempty,max=255"`
	Quantity    *float64 `json:"quantity,omitempty" validate:"omitempty,gt=0"`
	BuyPrice    *float64 `json:"buy_price,omitempty" validate:"omitempty,gt=0"`
	BuyDate     *string  `json:"buy_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Notes       *string  `json:"notes,omitempty" validate:"omitempty,max=500"`
}

type CreateWatchlistItemRequest struct {
	Symbol      string  `json:"symbol" validate:"required,max=20"`
	CompanyName string  `json:"company_name" validate:"required,max=255"`
	TargetPrice float64 `json:"target_price" validate:"gte=0"`
	Notes       string  `json:"notes" validate:"max=500"`
}
