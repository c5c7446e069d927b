package service

import (
	"context"
	"fmt"

	"papertrade/internal/calculator"
	"papertrade/internal/domain"
	"papertrade/internal/logger"
	"papertrade/internal/quotecache"
	"papertrade/internal/repository"

	"github.com/gocarina/gocsv"
	"github.com/google/uuid"
)

type PortfolioService interface {
	// GetPortfolio loads the user's holdings, quotes the distinct symbols
	// through the cache, and values the result. Recomputed on every call.
	GetPortfolio(ctx context.Context, userID uuid.UUID) (*PortfolioView, error)
	ExportCSV(ctx context.Context, userID uuid.UUID) ([]byte, error)
}

type PortfolioView struct {
	Summary domain.PortfolioSummary `json:"summary"`
	Stats   *domain.PortfolioStats  `json:"stats"`
}

type portfolioServiceHandler struct {
	QuoteCache        quotecache.QuoteCache
	HoldingRepository repository.HoldingRepository
}

func NewPortfolioService(
	quoteCache quotecache.QuoteCache,
	holdingRepository repository.HoldingRepository,
) PortfolioService {
	return portfolioServiceHandler{
		QuoteCache:        quoteCache,
		HoldingRepository: holdingRepository,
	}
}

func (h portfolioServiceHandler) GetPortfolio(ctx context.Context, userID uuid.UUID) (*PortfolioView, error) {
	log := logger.FromContext(ctx)

	rows, err := h.HoldingRepository.List(userID)
	if err != nil {
		return nil, err
	}

	holdings := make([]domain.Holding, 0, len(rows))
	symbols := make([]string, 0, len(rows))
	for _, row := range rows {
		holding, err := holdingFromModel(row)
		if err != nil {
			// a corrupt row should not take the whole portfolio down
			log.Errorw("skipping invalid holding", "error", err)
			continue
		}
		holdings = append(holdings, holding)
		symbols = append(symbols, holding.Symbol)
	}

	quotes := h.QuoteCache.GetMany(ctx, symbols)
	summary := calculator.CalculatePortfolioSummary(holdings, quotes)

	stats, err := calculator.CalculatePortfolioStats(summary)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate portfolio stats: %w", err)
	}

	return &PortfolioView{
		Summary: summary,
		Stats:   stats,
	}, nil
}

type portfolioCsvRow struct {
	Symbol          string `csv:"symbol"`
	Quantity        string `csv:"quantity"`
	AveragePrice    string `csv:"average_price"`
	TotalCost       string `csv:"total_cost"`
	CurrentPrice    string `csv:"current_price"`
	CurrentValue    string `csv:"current_value"`
	GainLoss        string `csv:"gain_loss"`
	GainLossPercent string `csv:"gain_loss_percent"`
	PurchaseDate    string `csv:"purchase_date"`
}

func (h portfolioServiceHandler) ExportCSV(ctx context.Context, userID uuid.UUID) ([]byte, error) {
	view, err := h.GetPortfolio(ctx, userID)
	if err != nil {
		return nil, err
	}

	rows := make([]portfolioCsvRow, 0, len(view.Summary.Holdings))
	for _, holding := range view.Summary.Holdings {
		rows = append(rows, portfolioCsvRow{
			Symbol:          holding.Symbol,
			Quantity:        holding.Quantity.String(),
			AveragePrice:    holding.AveragePrice.StringFixed(2),
			TotalCost:       holding.TotalCost.StringFixed(2),
			CurrentPrice:    holding.CurrentPrice.StringFixed(2),
			CurrentValue:    holding.CurrentValue.StringFixed(2),
			GainLoss:        holding.GainLoss.StringFixed(2),
			GainLossPercent: holding.GainLossPercent.StringFixed(2),
			PurchaseDate:    holding.PurchaseDate.Format("2006-01-02"),
		})
	}

	out, err := gocsv.MarshalBytes(&rows)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal portfolio csv: %w", err)
	}

	return out, nil
}
