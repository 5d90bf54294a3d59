package models

// Requests for calculator HTTP endpoints. Defined in domain for consistency and reuse.
// Rates are percentages in [0,100]; the engine converts to fractions internally.

type FutureValueRequest struct {
	Principal        float64 `json:"principal" validate:"required,gt=0"`
	Rate             float64 `json:"rate" validate:"gte=0,lte=100"`
	Time             float64 `json:"time" validate:"required,gt=0"`
	CompoundsPerYear int     `json:"compounds_per_year" default:"12" validate:"gte=1"`
}

type LoanEMIRequest struct {
	Principal    float64 `json:"principal" validate:"required,gt=0"`
	Rate         float64 `json:"rate" validate:"gte=0,lte=100"`
	TenureMonths int     `json:"tenure_months" validate:"required,gt=0"`
}

type SavingsPlanRequest struct {
	InitialSavings     float64 `json:"initial_savings" validate:"gte=0"`
	AnnualContribution float64 `json:"annual_contribution" validate:"gte=0"`
	Rate               float64 `json:"rate" validate:"gte=0,lte=100"`
	Years              int     `json:"years" validate:"required,gt=0"`
}

type MortgageRequest struct {
	HomePrice       float64 `json:"home_price" validate:"required,gt=0"`
	DownPayment     float64 `json:"down_payment" validate:"gte=0"`
	Rate            float64 `json:"rate" validate:"gte=0,lte=100"`
	TenureYears     int     `json:"tenure_years" validate:"required,gt=0"`
	PropertyTaxRate float64 `json:"property_tax_rate" default:"1.0" validate:"gte=0"`
	InsuranceRate   float64 `json:"insurance_rate" default:"0.5" validate:"gte=0"`
}

type InvestmentReturnRequest struct {
	Principal float64 `json:"principal" validate:"required,gt=0"`
	Rate      float64 `json:"rate" validate:"gte=0,lte=100"`
	Years     int     `json:"years" validate:"required,gt=0"`
}

type CalcHistoryRequest struct {
	Limit int `query:"limit" json:"limit" default:"50" validate:"gte=1,lte=200"`
}
