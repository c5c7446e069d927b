package quotecache

import (
	"context"
	"fmt"
	"testing"
	"time"

	"papertrade/internal/domain"
	"papertrade/internal/repository"
	mock_repository "papertrade/internal/repository/mocks"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeClock struct {
	current time.Time
}

func (f *fakeClock) Now() time.Time {
	return f.current
}

func (f *fakeClock) Advance(d time.Duration) {
	f.current = f.current.Add(d)
}

func newTestQuote(symbol string, price float64) *domain.Quote {
	return &domain.Quote{
		Symbol:        symbol,
		Price:         decimal.NewFromFloat(price),
		Change:        decimal.NewFromFloat(1.5),
		ChangePercent: decimal.NewFromFloat(0.8),
	}
}

func Test_quoteCacheHandler_Get(t *testing.T) {
	t.Run("second get within ttl hits the cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		provider := mock_repository.NewMockQuoteProvider(ctrl)
		clock := &fakeClock{current: time.Date(2025, 6, 2, 14, 30, 0, 0, time.UTC)}
		cache := New(provider, 5*time.Minute, WithClock(clock.Now))

		provider.EXPECT().
			FetchQuote(gomock.Any(), "AAPL").
			Return(newTestQuote("AAPL", 180), nil).
			Times(1)

		first, err := cache.Get(context.Background(), "AAPL")
		require.NoError(t, err)

		clock.Advance(4 * time.Minute)
		second, err := cache.Get(context.Background(), "AAPL")
		require.NoError(t, err)

		require.Equal(t, first.FetchedAt, second.FetchedAt)
	})

	t.Run("expired entry triggers exactly one new fetch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		provider := mock_repository.NewMockQuoteProvider(ctrl)
		clock := &fakeClock{current: time.Date(2025, 6, 2, 14, 30, 0, 0, time.UTC)}
		cache := New(provider, 5*time.Minute, WithClock(clock.Now))

		provider.EXPECT().
			FetchQuote(gomock.Any(), "AAPL").
			DoAndReturn(func(_ context.Context, symbol string) (*domain.Quote, error) {
				return newTestQuote(symbol, 180), nil
			}).
			Times(2)

		first, err := cache.Get(context.Background(), "AAPL")
		require.NoError(t, err)

		clock.Advance(5 * time.Minute)
		second, err := cache.Get(context.Background(), "AAPL")
		require.NoError(t, err)

		require.True(t, second.FetchedAt.After(first.FetchedAt))
	})

	t.Run("symbol is normalized to uppercase", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		provider := mock_repository.NewMockQuoteProvider(ctrl)
		cache := New(provider, 5*time.Minute)

		provider.EXPECT().
			FetchQuote(gomock.Any(), "AAPL").
			Return(newTestQuote("AAPL", 180), nil).
			Times(1)

		quote, err := cache.Get(context.Background(), " aapl ")
		require.NoError(t, err)
		require.Equal(t, "AAPL", quote.Symbol)

		// cached under the normalized key
		_, err = cache.Get(context.Background(), "AAPL")
		require.NoError(t, err)
	})

	t.Run("failed fetch does not populate the cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		provider := mock_repository.NewMockQuoteProvider(ctrl)
		cache := New(provider, 5*time.Minute)

		provider.EXPECT().
			FetchQuote(gomock.Any(), "NOPE").
			Return(nil, fmt.Errorf("%w: NOPE", repository.ErrUnknownSymbol)).
			Times(1)

		_, err := cache.Get(context.Background(), "NOPE")
		require.ErrorIs(t, err, repository.ErrUnknownSymbol)
		require.Equal(t, 0, cache.Size())
	})

	t.Run("failed refetch keeps prior entry intact", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		provider := mock_repository.NewMockQuoteProvider(ctrl)
		clock := &fakeClock{current: time.Date(2025, 6, 2, 14, 30, 0, 0, time.UTC)}
		cache := New(provider, 5*time.Minute, WithClock(clock.Now))

		gomock.InOrder(
			provider.EXPECT().
				FetchQuote(gomock.Any(), "AAPL").
				Return(newTestQuote("AAPL", 180), nil),
			provider.EXPECT().
				FetchQuote(gomock.Any(), "AAPL").
				Return(nil, fmt.Errorf("provider down")),
		)

		_, err := cache.Get(context.Background(), "AAPL")
		require.NoError(t, err)

		clock.Advance(6 * time.Minute)
		_, err = cache.Get(context.Background(), "AAPL")
		require.Error(t, err)
		require.Equal(t, 1, cache.Size())
		require.Equal(t, []string{"AAPL"}, cache.CachedSymbols())
	})
}

func Test_quoteCacheHandler_GetMany(t *testing.T) {
	t.Run("partial failure returns the valid symbols only", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		provider := mock_repository.NewMockQuoteProvider(ctrl)
		cache := New(provider, 5*time.Minute)

		provider.EXPECT().
			FetchQuote(gomock.Any(), "AAPL").
			Return(newTestQuote("AAPL", 180), nil)
		provider.EXPECT().
			FetchQuote(gomock.Any(), "NOPE").
			Return(nil, fmt.Errorf("%w: NOPE", repository.ErrUnknownSymbol))

		quotes := cache.GetMany(context.Background(), []string{"AAPL", "NOPE"})

		require.Len(t, quotes, 1)
		require.Contains(t, quotes, "AAPL")
	})

	t.Run("duplicate symbols are fetched once", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		provider := mock_repository.NewMockQuoteProvider(ctrl)
		cache := New(provider, 5*time.Minute)

		provider.EXPECT().
			FetchQuote(gomock.Any(), "AAPL").
			Return(newTestQuote("AAPL", 180), nil).
			Times(1)

		quotes := cache.GetMany(context.Background(), []string{"AAPL", "aapl", "AAPL"})
		require.Len(t, quotes, 1)
	})

	t.Run("empty input yields empty map", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		provider := mock_repository.NewMockQuoteProvider(ctrl)
		cache := New(provider, 5*time.Minute)

		quotes := cache.GetMany(context.Background(), nil)
		require.Empty(t, quotes)
	})
}

func Test_quoteCacheHandler_Refresh(t *testing.T) {
	t.Run("refresh always round-trips", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		provider := mock_repository.NewMockQuoteProvider(ctrl)
		clock := &fakeClock{current: time.Date(2025, 6, 2, 14, 30, 0, 0, time.UTC)}
		cache := New(provider, 5*time.Minute, WithClock(clock.Now))

		provider.EXPECT().
			FetchQuote(gomock.Any(), "AAPL").
			DoAndReturn(func(_ context.Context, symbol string) (*domain.Quote, error) {
				return newTestQuote(symbol, 180), nil
			}).
			Times(2)

		first, err := cache.Get(context.Background(), "AAPL")
		require.NoError(t, err)

		// still well within the TTL
		clock.Advance(time.Minute)
		refreshed, err := cache.Refresh(context.Background(), "AAPL")
		require.NoError(t, err)

		require.True(t, refreshed.FetchedAt.After(first.FetchedAt))
	})
}

func Test_quoteCacheHandler_InvalidateAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mock_repository.NewMockQuoteProvider(ctrl)
	cache := New(provider, 5*time.Minute)

	provider.EXPECT().
		FetchQuote(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, symbol string) (*domain.Quote, error) {
			return newTestQuote(symbol, 100), nil
		}).
		Times(2)

	cache.GetMany(context.Background(), []string{"AAPL", "MSFT"})
	require.Equal(t, 2, cache.Size())
	require.ElementsMatch(t, []string{"AAPL", "MSFT"}, cache.CachedSymbols())

	cache.InvalidateAll()
	require.Equal(t, 0, cache.Size())
	require.Empty(t, cache.CachedSymbols())
}
