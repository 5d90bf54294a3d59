package valuation

import (
	"testing"
	"time"

	"FinHub/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func holding(symbol string, qty, buyPrice float64) *models.Holding {
	return &models.Holding{
		ID:          1,
		Symbol:      symbol,
		CompanyName: symbol + " Ltd",
		Quantity:    qty,
		BuyPrice:    buyPrice,
		BuyDate:     time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
	}
}

func TestValueHolding(t *testing.T) {
	v := ValueHolding(holding("TCS", 10, 4000), 4400)

	assert.Equal(t, 44000.0, v.CurrentValue)
	assert.Equal(t, 40000.0, v.InvestedValue)
	assert.Equal(t, 4000.0, v.GainLoss)
	assert.Equal(t, 10.0, v.GainLossPercent)
	assert.Equal(t, "2024-01-15", v.BuyDate)
}

func TestValueHoldingZeroInvestedGuard(t *testing.T) {
	h := holding("FOO", 10, 4000)
	h.BuyPrice = 0 // degenerate row, percent must not divide by zero
	v := ValueHolding(h, 150)

	assert.Equal(t, 0.0, v.InvestedValue)
	assert.Equal(t, 0.0, v.GainLossPercent)
	assert.Equal(t, 1500.0, v.CurrentValue)
}

func TestSummarizeEmptyPortfolio(t *testing.T) {
	s := Summarize(nil)

	assert.Equal(t, 0.0, s.TotalInvested)
	assert.Equal(t, 0.0, s.CurrentValue)
	assert.Equal(t, 0.0, s.TotalGainLoss)
	assert.Equal(t, 0.0, s.TotalGainLossPercent)
	assert.Equal(t, 0, s.HoldingsCount)
	assert.Empty(t, s.TopPerformer)
	assert.Empty(t, s.WorstPerformer)
}

func TestSummarizePerformersByValueNotOrder(t *testing.T) {
	// Gain percents +10, +50, -5: ranking must be order independent.
	first := ValueHolding(holding("FIRST", 10, 100), 110)
	second := ValueHolding(holding("SECOND", 10, 100), 150)
	third := ValueHolding(holding("THIRD", 10, 100), 95)

	orders := [][]models.ValuedHolding{
		{first, second, third},
		{third, first, second},
		{second, third, first},
	}
	for _, in := range orders {
		s := Summarize(in)
		assert.Equal(t, "SECOND", s.TopPerformer)
		assert.Equal(t, "THIRD", s.WorstPerformer)
		assert.Equal(t, 3, s.HoldingsCount)
	}
}

func TestSummarizeStableTieBreak(t *testing.T) {
	// Equal gain percents: first occurrence in input order wins.
	a := ValueHolding(holding("AAA", 10, 100), 110)
	b := ValueHolding(holding("BBB", 10, 100), 110)
	loser := ValueHolding(holding("LOW", 10, 100), 90)

	s := Summarize([]models.ValuedHolding{a, b, loser})
	assert.Equal(t, "AAA", s.TopPerformer)

	s = Summarize([]models.ValuedHolding{b, a, loser})
	assert.Equal(t, "BBB", s.TopPerformer)
}

func TestSummarizeTotals(t *testing.T) {
	a := ValueHolding(holding("AAA", 5, 200), 250)  // invested 1000 -> 1250
	b := ValueHolding(holding("BBB", 20, 50), 45)   // invested 1000 -> 900
	s := Summarize([]models.ValuedHolding{a, b})

	require.Equal(t, 2000.0, s.TotalInvested)
	require.Equal(t, 2150.0, s.CurrentValue)
	assert.Equal(t, 150.0, s.TotalGainLoss)
	assert.Equal(t, 7.5, s.TotalGainLossPercent)
}
