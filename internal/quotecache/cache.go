package quotecache

import (
	"context"
	"strings"
	"sync"
	"time"

	"papertrade/internal/domain"
	"papertrade/internal/logger"
	"papertrade/internal/repository"
)

// DefaultTTL bounds quote staleness. Matches the 5 minute window the
// aggregated price feeds refresh on.
const DefaultTTL = 5 * time.Minute

//go:generate mockgen -destination=mocks/quote_cache.mock.go -package=mock_quotecache . QuoteCache

// QuoteCache memoizes quotes per symbol with a TTL. It is the sole holder of
// quote state; entries are replaced wholesale and never persisted.
type QuoteCache interface {
	// Get returns a quote no older than the TTL, fetching from the provider
	// on a miss. Unknown symbols surface repository.ErrUnknownSymbol; the
	// cache entry is left untouched on any failure.
	Get(ctx context.Context, symbol string) (*domain.Quote, error)
	// GetMany fetches distinct symbols concurrently and returns whatever
	// succeeded. Failed symbols are omitted, never propagated.
	GetMany(ctx context.Context, symbols []string) map[string]domain.Quote
	// Refresh evicts the entry first, so it always costs a provider round trip.
	Refresh(ctx context.Context, symbol string) (*domain.Quote, error)
	InvalidateAll()
	Size() int
	CachedSymbols() []string
}

type Option func(*quoteCacheHandler)

// WithClock injects the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(c *quoteCacheHandler) {
		c.now = now
	}
}

func New(provider repository.QuoteProvider, ttl time.Duration, opts ...Option) QuoteCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	c := &quoteCacheHandler{
		provider: provider,
		ttl:      ttl,
		now:      time.Now,
		items:    map[string]domain.Quote{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type quoteCacheHandler struct {
	provider repository.QuoteProvider
	ttl      time.Duration
	now      func() time.Time

	mu    sync.RWMutex
	items map[string]domain.Quote
}

func normalizeSymbol(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}

func (c *quoteCacheHandler) Get(ctx context.Context, symbol string) (*domain.Quote, error) {
	symbol = normalizeSymbol(symbol)

	c.mu.RLock()
	cached, ok := c.items[symbol]
	c.mu.RUnlock()
	if ok && cached.AgeAt(c.now()) < c.ttl {
		return &cached, nil
	}

	// Two concurrent misses for the same symbol both fetch. Accepted: the
	// writes are idempotent and last writer wins with equivalent data.
	quote, err := c.provider.FetchQuote(ctx, symbol)
	if err != nil {
		return nil, err
	}

	quote.Symbol = symbol
	quote.FetchedAt = c.now().UTC()

	c.mu.Lock()
	c.items[symbol] = *quote
	c.mu.Unlock()

	return quote, nil
}

func (c *quoteCacheHandler) GetMany(ctx context.Context, symbols []string) map[string]domain.Quote {
	log := logger.FromContext(ctx)

	distinct := make([]string, 0, len(symbols))
	seen := map[string]struct{}{}
	for _, s := range symbols {
		s = normalizeSymbol(s)
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		distinct = append(distinct, s)
	}

	results := make(map[string]domain.Quote, len(distinct))
	var (
		resultsMu sync.Mutex
		wg        sync.WaitGroup
	)
	for _, symbol := range distinct {
		wg.Add(1)
		go func(symbol string) {
			defer wg.Done()
			quote, err := c.Get(ctx, symbol)
			if err != nil {
				log.Warnw("failed to get quote", "symbol", symbol, "error", err)
				return
			}
			resultsMu.Lock()
			results[symbol] = *quote
			resultsMu.Unlock()
		}(symbol)
	}
	wg.Wait()

	return results
}

func (c *quoteCacheHandler) Refresh(ctx context.Context, symbol string) (*domain.Quote, error) {
	symbol = normalizeSymbol(symbol)

	c.mu.Lock()
	delete(c.items, symbol)
	c.mu.Unlock()

	return c.Get(ctx, symbol)
}

func (c *quoteCacheHandler) InvalidateAll() {
	c.mu.Lock()
	c.items = map[string]domain.Quote{}
	c.mu.Unlock()
}

func (c *quoteCacheHandler) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

func (c *quoteCacheHandler) CachedSymbols() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	symbols := make([]string, 0, len(c.items))
	for symbol := range c.items {
		symbols = append(symbols, symbol)
	}
	return symbols
}
