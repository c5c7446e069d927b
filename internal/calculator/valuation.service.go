package calculator

import (
	"fmt"

	"papertrade/internal/domain"

	"github.com/montanaflynn/stats"
	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// CalculatePortfolioSummary joins holdings with quotes into per-holding and
// aggregate valuation. It is pure: no I/O, no caching, and the output holding
// order matches the input order. Holdings whose symbol is missing from the
// quote map are valued at a zero current price, which understates TotalValue
// instead of failing the summary.
func CalculatePortfolioSummary(holdings []domain.Holding, quotes map[string]domain.Quote) domain.PortfolioSummary {
	totalValue := decimal.Zero
	totalCost := decimal.Zero

	enriched := make([]domain.EnrichedHolding, 0, len(holdings))
	for _, holding := range holdings {
		currentPrice := decimal.Zero
		if quote, ok := quotes[holding.Symbol]; ok {
			currentPrice = quote.Price
		}

		currentValue := currentPrice.Mul(holding.Quantity)
		gainLoss := currentValue.Sub(holding.TotalCost)
		gainLossPercent := decimal.Zero
		if holding.TotalCost.IsPositive() {
			gainLossPercent = gainLoss.Div(holding.TotalCost).Mul(oneHundred)
		}

		totalValue = totalValue.Add(currentValue)
		totalCost = totalCost.Add(holding.TotalCost)

		enriched = append(enriched, domain.EnrichedHolding{
			Holding:         holding,
			CurrentPrice:    currentPrice,
			CurrentValue:    currentValue,
			GainLoss:        gainLoss,
			GainLossPercent: gainLossPercent,
		})
	}

	totalGainLoss := totalValue.Sub(totalCost)
	totalGainLossPercent := decimal.Zero
	if totalCost.IsPositive() {
		totalGainLossPercent = totalGainLoss.Div(totalCost).Mul(oneHundred)
	}

	return domain.PortfolioSummary{
		TotalValue:           totalValue,
		TotalCost:            totalCost,
		TotalGainLoss:        totalGainLoss,
		TotalGainLossPercent: totalGainLossPercent,
		Holdings:             enriched,
	}
}

// CalculatePortfolioStats describes concentration of value across positions.
// A portfolio with no value yields zero stats.
func CalculatePortfolioStats(summary domain.PortfolioSummary) (*domain.PortfolioStats, error) {
	out := &domain.PortfolioStats{
		NumPositions: len(summary.Holdings),
	}
	if len(summary.Holdings) == 0 || !summary.TotalValue.IsPositive() {
		return out, nil
	}

	weights := make([]float64, 0, len(summary.Holdings))
	for _, holding := range summary.Holdings {
		weight := holding.CurrentValue.Div(summary.TotalValue).InexactFloat64()
		weights = append(weights, weight)
		if weight > out.LargestPositionWeight {
			out.LargestPositionWeight = weight
		}
	}

	mean, err := stats.Mean(weights)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate mean position weight: %w", err)
	}
	out.MeanPositionWeight = mean

	if len(weights) > 1 {
		stdev, err := stats.StandardDeviationSample(weights)
		if err != nil {
			return nil, fmt.Errorf("failed to calculate position weight stdev: %w", err)
		}
		out.PositionWeightStdev = stdev
	}

	return out, nil
}
