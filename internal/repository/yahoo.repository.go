package repository

import (
	"context"
	"fmt"
	"papertrade/internal/domain"

	"github.com/piquette/finance-go/quote"
	"github.com/shopspring/decimal"
)

// NewYahooRepository returns a QuoteProvider backed by Yahoo Finance. It needs
// no API key, so it is the default provider when no finnhub key is configured.
func NewYahooRepository() QuoteProvider {
	return &yahooRepositoryHandler{}
}

type yahooRepositoryHandler struct{}

func (h yahooRepositoryHandler) FetchQuote(ctx context.Context, symbol string) (*domain.Quote, error) {
	// the finance-go client does not take a context
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	q, err := quote.Get(symbol)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch quote for %s: %w", symbol, err)
	}
	if q == nil || q.RegularMarketPrice == 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSymbol, symbol)
	}

	return &domain.Quote{
		Symbol:        symbol,
		Price:         decimal.NewFromFloat(q.RegularMarketPrice),
		Change:        decimal.NewFromFloat(q.RegularMarketChange),
		ChangePercent: decimal.NewFromFloat(q.RegularMarketChangePercent),
	}, nil
}
