package valuation

import (
	"math"
	"sort"

	"FinHub/internal/domain/models"
	"FinHub/pkg/util"
)

// Pure portfolio valuation. Quotes come from the caller so the package
// stays deterministic and side-effect free.

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ValueHolding prices a holding against the given quote.
func ValueHolding(h *models.Holding, price float64) models.ValuedHolding {
	currentValue := price * h.Quantity
	investedValue := h.BuyPrice * h.Quantity
	gainLoss := currentValue - investedValue

	var gainLossPercent float64
	if investedValue > 0 {
		gainLossPercent = gainLoss / investedValue * 100
	}

	return models.ValuedHolding{
		ID:              h.ID,
		Symbol:          h.Symbol,
		CompanyName:     h.CompanyName,
		Quantity:        h.Quantity,
		BuyPrice:        h.BuyPrice,
		BuyDate:         util.FormatISODate(h.BuyDate),
		Notes:           h.Notes,
		CurrentPrice:    round2(price),
		CurrentValue:    round2(currentValue),
		InvestedValue:   round2(investedValue),
		GainLoss:        round2(gainLoss),
		GainLossPercent: round2(gainLossPercent),
	}
}

// Summarize aggregates valued holdings into portfolio statistics.
// Top/worst performers are ranked by gain percent using a stable sort,
// so among equal performers the first in input order wins.
func Summarize(holdings []models.ValuedHolding) models.PortfolioSummary {
	if len(holdings) == 0 {
		return models.PortfolioSummary{}
	}

	var totalInvested, currentValue float64
	for _, h := range holdings {
		totalInvested += h.InvestedValue
		currentValue += h.CurrentValue
	}

	totalGainLoss := currentValue - totalInvested
	var totalGainLossPercent float64
	if totalInvested > 0 {
		totalGainLossPercent = totalGainLoss / totalInvested * 100
	}

	ranked := make([]models.ValuedHolding, len(holdings))
	copy(ranked, holdings)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].GainLossPercent > ranked[j].GainLossPercent
	})

	return models.PortfolioSummary{
		TotalInvested:        round2(totalInvested),
		CurrentValue:         round2(currentValue),
		TotalGainLoss:        round2(totalGainLoss),
		TotalGainLossPercent: round2(totalGainLossPercent),
		HoldingsCount:        len(holdings),
		TopPerformer:         ranked[0].Symbol,
		WorstPerformer:       ranked[len(ranked)-1].Symbol,
	}
}
