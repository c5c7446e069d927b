package calculator

import (
	"testing"
	"time"

	"papertrade/internal/domain"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func holding(symbol string, quantity, avgPrice, totalCost int64) domain.Holding {
	return domain.Holding{
		Symbol:       symbol,
		Quantity:     decimal.NewFromInt(quantity),
		AveragePrice: decimal.NewFromInt(avgPrice),
		TotalCost:    decimal.NewFromInt(totalCost),
		PurchaseDate: time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
	}
}

func quote(symbol string, price int64) domain.Quote {
	return domain.Quote{
		Symbol:    symbol,
		Price:     decimal.NewFromInt(price),
		FetchedAt: time.Date(2025, 6, 2, 14, 30, 0, 0, time.UTC),
	}
}

func Test_CalculatePortfolioSummary(t *testing.T) {
	t.Run("full valuation", func(t *testing.T) {
		holdings := []domain.Holding{holding("AAPL", 2, 150, 300)}
		quotes := map[string]domain.Quote{"AAPL": quote("AAPL", 180)}

		summary := CalculatePortfolioSummary(holdings, quotes)

		require.True(t, decimal.NewFromInt(360).Equal(summary.TotalValue), "totalValue %s", summary.TotalValue)
		require.True(t, decimal.NewFromInt(300).Equal(summary.TotalCost))
		require.True(t, decimal.NewFromInt(60).Equal(summary.TotalGainLoss))
		require.True(t, decimal.NewFromInt(20).Equal(summary.TotalGainLossPercent), "totalGainLossPercent %s", summary.TotalGainLossPercent)

		require.Len(t, summary.Holdings, 1)
		enriched := summary.Holdings[0]
		require.True(t, decimal.NewFromInt(180).Equal(enriched.CurrentPrice))
		require.True(t, decimal.NewFromInt(360).Equal(enriched.CurrentValue))
		require.True(t, decimal.NewFromInt(60).Equal(enriched.GainLoss))
		require.True(t, decimal.NewFromInt(20).Equal(enriched.GainLossPercent))
	})

	t.Run("missing quote degrades to zero value", func(t *testing.T) {
		holdings := []domain.Holding{holding("X", 5, 100, 500)}

		summary := CalculatePortfolioSummary(holdings, map[string]domain.Quote{})

		enriched := summary.Holdings[0]
		require.True(t, enriched.CurrentValue.IsZero())
		require.True(t, decimal.NewFromInt(-500).Equal(enriched.GainLoss))
		require.True(t, decimal.NewFromInt(-100).Equal(enriched.GainLossPercent), "gainLossPercent %s", enriched.GainLossPercent)
	})

	t.Run("zero cost holding yields zero gain loss percent", func(t *testing.T) {
		holdings := []domain.Holding{holding("FREE", 10, 0, 0)}
		quotes := map[string]domain.Quote{"FREE": quote("FREE", 3)}

		summary := CalculatePortfolioSummary(holdings, quotes)

		require.True(t, summary.Holdings[0].GainLossPercent.IsZero())
		require.True(t, decimal.NewFromInt(30).Equal(summary.TotalValue))
		// aggregate percent guarded too, since total cost is zero
		require.True(t, summary.TotalGainLossPercent.IsZero())
	})

	t.Run("output preserves input ordering", func(t *testing.T) {
		holdings := []domain.Holding{
			holding("ZZZ", 1, 10, 10),
			holding("AAA", 1, 10, 10),
			holding("MMM", 1, 10, 10),
		}

		summary := CalculatePortfolioSummary(holdings, map[string]domain.Quote{})

		symbols := []string{}
		for _, h := range summary.Holdings {
			symbols = append(symbols, h.Symbol)
		}
		require.Equal(t, []string{"ZZZ", "AAA", "MMM"}, symbols)
	})

	t.Run("idempotent for identical inputs", func(t *testing.T) {
		holdings := []domain.Holding{
			holding("AAPL", 2, 150, 300),
			holding("MSFT", 1, 400, 400),
		}
		quotes := map[string]domain.Quote{
			"AAPL": quote("AAPL", 180),
			"MSFT": quote("MSFT", 410),
		}

		first := CalculatePortfolioSummary(holdings, quotes)
		second := CalculatePortfolioSummary(holdings, quotes)

		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("summaries differ (-first +second):\n%s", diff)
		}
	})

	t.Run("empty holdings", func(t *testing.T) {
		summary := CalculatePortfolioSummary(nil, map[string]domain.Quote{})

		require.True(t, summary.TotalValue.IsZero())
		require.True(t, summary.TotalCost.IsZero())
		require.Empty(t, summary.Holdings)
	})
}

func Test_CalculatePortfolioStats(t *testing.T) {
	t.Run("two positions", func(t *testing.T) {
		holdings := []domain.Holding{
			holding("AAPL", 3, 100, 300),
			holding("MSFT", 1, 100, 100),
		}
		quotes := map[string]domain.Quote{
			"AAPL": quote("AAPL", 100),
			"MSFT": quote("MSFT", 100),
		}
		summary := CalculatePortfolioSummary(holdings, quotes)

		statsOut, err := CalculatePortfolioStats(summary)
		require.NoError(t, err)

		require.Equal(t, 2, statsOut.NumPositions)
		require.InDelta(t, 0.75, statsOut.LargestPositionWeight, 1e-9)
		require.InDelta(t, 0.5, statsOut.MeanPositionWeight, 1e-9)
		require.Greater(t, statsOut.PositionWeightStdev, 0.0)
	})

	t.Run("zero value portfolio yields zero stats", func(t *testing.T) {
		holdings := []domain.Holding{holding("X", 5, 100, 500)}
		summary := CalculatePortfolioSummary(holdings, map[string]domain.Quote{})

		statsOut, err := CalculatePortfolioStats(summary)
		require.NoError(t, err)

		require.Equal(t, 1, statsOut.NumPositions)
		require.Zero(t, statsOut.LargestPositionWeight)
		require.Zero(t, statsOut.MeanPositionWeight)
	})

	t.Run("empty portfolio", func(t *testing.T) {
		statsOut, err := CalculatePortfolioStats(domain.PortfolioSummary{})
		require.NoError(t, err)
		require.Zero(t, statsOut.NumPositions)
	})
}
