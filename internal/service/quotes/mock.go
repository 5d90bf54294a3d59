package quotes

import (
	"math"
	"math/rand"
	"strings"

	"FinHub/internal/domain/models"
	domrepo "FinHub/internal/domain/repository"
)

// referenceStock is a row of the static quote table.
type referenceStock struct {
	Symbol string
	Name   string
	Price  float64
}

// Static reference table standing in for a real quote feed. Order is
// preserved for autocomplete suggestions.
var referenceStocks = []referenceStock{
	{"RELIANCE", "Reliance Industries Ltd", 2875.50},
	{"TCS", "Tata Consultancy Services Ltd", 4125.80},
	{"INFY", "Infosys Ltd", 1685.25},
	{"HDFCBANK", "HDFC Bank Ltd", 1720.40},
	{"ICICIBANK", "ICICI Bank Ltd", 1245.60},
	{"HINDUNILVR", "Hindustan Unilever Ltd", 2450.30},
	{"ITC", "ITC Ltd", 465.80},
	{"SBIN", "State Bank of India", 785.25},
	{"BHARTIARTL", "Bharti Airtel Ltd", 1580.90},
	{"KOTAKBANK", "Kotak Mahindra Bank Ltd", 1890.45},
	{"LT", "Larsen & Toubro Ltd", 3650.20},
	{"ASIANPAINT", "Asian Paints Ltd", 2890.75},
	{"MARUTI", "Maruti Suzuki India Ltd", 12450.60},
	{"WIPRO", "Wipro Ltd", 485.30},
	{"TATAMOTORS", "Tata Motors Ltd", 985.40},
	{"TATASTEEL", "Tata Steel Ltd", 145.85},
	{"ADANIENT", "Adani Enterprises Ltd", 2850.60},
	{"BAJFINANCE", "Bajaj Finance Ltd", 7250.80},
	{"HCLTECH", "HCL Technologies Ltd", 1685.45},
	{"SUNPHARMA", "Sun Pharmaceutical Industries Ltd", 1725.30},
}

var bySymbol = func() map[string]referenceStock {
	m := make(map[string]referenceStock, len(referenceStocks))
	for _, s := range referenceStocks {
		m[s.Symbol] = s
	}
	return m
}()

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// MockSource implements repository.QuoteSource with jittered prices.
// Deliberately non-deterministic: it simulates live market movement, so
// callers must not assume repeatability between calls.
type MockSource struct {
	metrics domrepo.Metrics
}

// NewMockSource creates the mock quote source.
func NewMockSource(metrics domrepo.Metrics) *MockSource {
	return &MockSource{metrics: metrics}
}

// CurrentPrice returns the reference price with ±2% jitter for known
// symbols (case-insensitive), or a uniform random price in [100, 5000)
// for unknown ones.
func (s *MockSource) CurrentPrice(symbol string) float64 {
	var price float64
	if ref, ok := bySymbol[strings.ToUpper(symbol)]; ok {
		variation := (rand.Float64() - 0.5) * 0.04 // uniform in [-0.02, 0.02)
		price = round2(ref.Price * (1 + variation))
		s.record("known", ref.Symbol, price)
		return price
	}
	price = round2(100 + rand.Float64()*4900)
	s.record("unknown", strings.ToUpper(symbol), price)
	return price
}

// Suggestions returns the reference table in its defined order.
func (s *MockSource) Suggestions() []models.StockSuggestion {
	out := make([]models.StockSuggestion, 0, len(referenceStocks))
	for _, ref := range referenceStocks {
		out = append(out, models.StockSuggestion{
			Symbol: ref.Symbol,
			Name:   ref.Name,
			Price:  ref.Price,
		})
	}
	return out
}

func (s *MockSource) record(kind, symbol string, price float64) {
	if s.metrics == nil {
		return
	}
	s.metrics.RecordQuoteLookup(kind)
	if kind == "known" {
		s.metrics.RecordLastQuote(symbol, price)
	}
}
