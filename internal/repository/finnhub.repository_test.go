package repository

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func Test_finnhubRepositoryHandler_FetchQuote(t *testing.T) {
	t.Run("valid quote", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/quote", r.URL.Path)
			require.Equal(t, "AAPL", r.URL.Query().Get("symbol"))
			require.Equal(t, "test-key", r.URL.Query().Get("token"))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"c":180.5,"d":2.5,"dp":1.4,"h":181,"l":178,"o":179,"pc":178}`))
		}))
		defer srv.Close()

		provider := NewFinnhubRepository("test-key", srv.URL)
		quote, err := provider.FetchQuote(context.Background(), "AAPL")
		require.NoError(t, err)

		require.Equal(t, "AAPL", quote.Symbol)
		require.True(t, decimal.NewFromFloat(180.5).Equal(quote.Price), "price %s", quote.Price)
		require.True(t, decimal.NewFromFloat(2.5).Equal(quote.Change))
		require.True(t, decimal.NewFromFloat(1.4).Equal(quote.ChangePercent))
		require.True(t, quote.FetchedAt.IsZero())
	})

	t.Run("zero price means unknown symbol", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"c":0,"d":null,"dp":null}`))
		}))
		defer srv.Close()

		provider := NewFinnhubRepository("test-key", srv.URL)
		_, err := provider.FetchQuote(context.Background(), "NOPE")
		require.ErrorIs(t, err, ErrUnknownSymbol)
	})

	t.Run("missing price means unknown symbol", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{}`))
		}))
		defer srv.Close()

		provider := NewFinnhubRepository("test-key", srv.URL)
		_, err := provider.FetchQuote(context.Background(), "NOPE")
		require.ErrorIs(t, err, ErrUnknownSymbol)
	})

	t.Run("http error is not ErrUnknownSymbol", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer srv.Close()

		provider := NewFinnhubRepository("test-key", srv.URL)
		_, err := provider.FetchQuote(context.Background(), "AAPL")
		require.Error(t, err)
		require.NotErrorIs(t, err, ErrUnknownSymbol)
	})

	t.Run("malformed body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`not json`))
		}))
		defer srv.Close()

		provider := NewFinnhubRepository("test-key", srv.URL)
		_, err := provider.FetchQuote(context.Background(), "AAPL")
		require.Error(t, err)
		require.NotErrorIs(t, err, ErrUnknownSymbol)
	})
}
