package domain

import "github.com/shopspring/decimal"

// EnrichedHolding is a holding joined with its current quote. CurrentPrice is
// zero when no quote was available, which understates CurrentValue rather than
// failing the whole summary.
type EnrichedHolding struct {
	Holding
	CurrentPrice    decimal.Decimal `json:"currentPrice"`
	CurrentValue    decimal.Decimal `json:"currentValue"`
	GainLoss        decimal.Decimal `json:"gainLoss"`
	GainLossPercent decimal.Decimal `json:"gainLossPercent"`
}

// PortfolioSummary is derived on every request and never cached. Holdings keep
// the input ordering.
type PortfolioSummary struct {
	TotalValue           decimal.Decimal   `json:"totalValue"`
	TotalCost            decimal.Decimal   `json:"totalCost"`
	TotalGainLoss        decimal.Decimal   `json:"totalGainLoss"`
	TotalGainLossPercent decimal.Decimal   `json:"totalGainLossPercent"`
	Holdings             []EnrichedHolding `json:"holdings"`
}

// PortfolioStats describes how the portfolio's value is spread across
// positions. Weights are fractions of total value.
type PortfolioStats struct {
	NumPositions          int     `json:"numPositions"`
	LargestPositionWeight float64 `json:"largestPositionWeight"`
	MeanPositionWeight    float64 `json:"meanPositionWeight"`
	PositionWeightStdev   float64 `json:"positionWeightStdev"`
}
