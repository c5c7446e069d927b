package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Quote is a point-in-time price snapshot for a ticker symbol. Quotes are
// replaced wholesale on refresh and never persisted.
type Quote struct {
	Symbol        string          `json:"symbol"`
	Price         decimal.Decimal `json:"price"`
	Change        decimal.Decimal `json:"change"`
	ChangePercent decimal.Decimal `json:"changePercent"`
	FetchedAt     time.Time       `json:"fetchedAt"`
}

func (q Quote) AgeAt(now time.Time) time.Duration {
	return now.Sub(q.FetchedAt)
}
