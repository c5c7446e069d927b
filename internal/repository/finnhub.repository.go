package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"papertrade/internal/domain"
	"time"

	"github.com/shopspring/decimal"
)

// ErrUnknownSymbol is returned when the provider has no usable price for a
// symbol. The quote endpoint signals this with a missing or zero last price.
var ErrUnknownSymbol = errors.New("unknown symbol")

//go:generate mockgen -destination=mocks/quote_provider.mock.go -package=mock_repository . QuoteProvider

// QuoteProvider fetches a live quote for one symbol. FetchedAt is left unset;
// the caller stamps it when it stores the quote.
type QuoteProvider interface {
	FetchQuote(ctx context.Context, symbol string) (*domain.Quote, error)
}

const finnhubEndpoint = "https://finnhub.io/api/v1"

func NewFinnhubRepository(apiKey string, endpoint string) QuoteProvider {
	if endpoint == "" {
		endpoint = finnhubEndpoint
	}
	return &finnhubRepositoryHandler{
		Client: &http.Client{
			Timeout: 10 * time.Second,
		},
		ApiKey:   apiKey,
		Endpoint: endpoint,
	}
}

type finnhubRepositoryHandler struct {
	Client   *http.Client
	ApiKey   string
	Endpoint string
}

type finnhubQuoteResponse struct {
	CurrentPrice   *float64 `json:"c"`
	Change         *float64 `json:"d"`
	ChangePercent  *float64 `json:"dp"`
	HighPriceOfDay *float64 `json:"h"`
	LowPriceOfDay  *float64 `json:"l"`
	OpenPriceOfDay *float64 `json:"o"`
	PreviousClose  *float64 `json:"pc"`
}

func (h finnhubRepositoryHandler) FetchQuote(ctx context.Context, symbol string) (*domain.Quote, error) {
	requestUrl := fmt.Sprintf("%s/quote?symbol=%s&token=%s",
		h.Endpoint, url.QueryEscape(symbol), url.QueryEscape(h.ApiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestUrl, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build quote request for %s: %w", symbol, err)
	}

	resp, err := h.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch quote for %s: %w", symbol, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("failed to fetch quote for %s: http %d", symbol, resp.StatusCode)
	}

	var body finnhubQuoteResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode quote for %s: %w", symbol, err)
	}

	// finnhub reports unknown symbols as a 200 with a zero price
	if body.CurrentPrice == nil || *body.CurrentPrice == 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSymbol, symbol)
	}

	change := 0.0
	if body.Change != nil {
		change = *body.Change
	}
	changePercent := 0.0
	if body.ChangePercent != nil {
		changePercent = *body.ChangePercent
	}

	return &domain.Quote{
		Symbol:        symbol,
		Price:         decimal.NewFromFloat(*body.CurrentPrice),
		Change:        decimal.NewFromFloat(change),
		ChangePercent: decimal.NewFromFloat(changePercent),
	}, nil
}
