package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Holding is a user's aggregated position in one ticker symbol. The invariant
// TotalCost = AveragePrice * Quantity holds after every merge.
type Holding struct {
	Symbol            string           `json:"symbol"`
	Quantity          decimal.Decimal  `json:"quantity"`
	AveragePrice      decimal.Decimal  `json:"averagePrice"`
	TotalCost         decimal.Decimal  `json:"totalCost"`
	PurchaseDate      time.Time        `json:"purchaseDate"`
	LastPurchaseDate  *time.Time       `json:"lastPurchaseDate,omitempty"`
	LastPurchasePrice *decimal.Decimal `json:"lastPurchasePrice,omitempty"`
}

type Purchase struct {
	Symbol   string
	Quantity decimal.Decimal
	Price    decimal.Decimal
	Date     time.Time
}

func (p Purchase) Cost() decimal.Decimal {
	return p.Price.Mul(p.Quantity)
}

// MergePurchase folds a purchase into an existing holding, recomputing the
// average price from the new totals. A nil existing holding starts a fresh
// position. The caller applies the result transactionally.
func MergePurchase(existing *Holding, p Purchase) Holding {
	if existing == nil {
		return Holding{
			Symbol:            p.Symbol,
			Quantity:          p.Quantity,
			AveragePrice:      p.Price,
			TotalCost:         p.Cost(),
			PurchaseDate:      p.Date,
			LastPurchaseDate:  &p.Date,
			LastPurchasePrice: &p.Price,
		}
	}

	newQuantity := existing.Quantity.Add(p.Quantity)
	newTotalCost := existing.TotalCost.Add(p.Cost())

	return Holding{
		Symbol:            existing.Symbol,
		Quantity:          newQuantity,
		AveragePrice:      newTotalCost.Div(newQuantity),
		TotalCost:         newTotalCost,
		PurchaseDate:      existing.PurchaseDate,
		LastPurchaseDate:  &p.Date,
		LastPurchasePrice: &p.Price,
	}
}
