package service

import (
	"errors"
	"fmt"
	"strings"

	"papertrade/internal/db/models/postgres/public/model"
	"papertrade/internal/domain"

	"github.com/shopspring/decimal"
)

// ErrInvalidHolding marks a stored holding row that fails validation. Rows
// are validated at the storage boundary instead of trusting their shape.
var ErrInvalidHolding = errors.New("invalid holding record")

func holdingFromModel(m model.PortfolioHolding) (domain.Holding, error) {
	symbol := strings.ToUpper(strings.TrimSpace(m.Symbol))
	if symbol == "" {
		return domain.Holding{}, fmt.Errorf("%w %s: empty symbol", ErrInvalidHolding, m.PortfolioHoldingID)
	}
	if m.Quantity.LessThanOrEqual(decimal.Zero) {
		return domain.Holding{}, fmt.Errorf("%w %s: quantity %s must be > 0", ErrInvalidHolding, m.PortfolioHoldingID, m.Quantity)
	}
	if m.AveragePrice.IsNegative() || m.TotalCost.IsNegative() {
		return domain.Holding{}, fmt.Errorf("%w %s: negative cost basis", ErrInvalidHolding, m.PortfolioHoldingID)
	}

	return domain.Holding{
		Symbol:            symbol,
		Quantity:          m.Quantity,
		AveragePrice:      m.AveragePrice,
		TotalCost:         m.TotalCost,
		PurchaseDate:      m.PurchaseDate,
		LastPurchaseDate:  m.LastPurchaseDate,
		LastPurchasePrice: m.LastPurchasePrice,
	}, nil
}
